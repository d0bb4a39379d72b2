// Package driverrepo implements the repository pattern for driver
// aggregates, handling the conversion between domain entities and their
// database representation.
package driverrepo

import (
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/driver"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DriverDTO represents the database structure for persisting drivers.
// The balance column is the source of truth; ledger transactions carry
// snapshots of it.
type DriverDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FirstName     string          `gorm:"type:varchar(255);not null"`
	LastName      string          `gorm:"type:varchar(255);not null"`
	LicenseNumber string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	PhoneNumber   string          `gorm:"type:varchar(64);not null"`
	Email         string          `gorm:"type:varchar(255)"`
	VehicleType   string          `gorm:"type:varchar(64)"`
	VehicleNumber string          `gorm:"type:varchar(64)"`
	Status        int             `gorm:"type:int;not null;index"`
	Balance       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	IsActive      bool            `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:            d.ID().Bytes(),
		FirstName:     d.FirstName(),
		LastName:      d.LastName(),
		LicenseNumber: d.LicenseNumber(),
		PhoneNumber:   d.PhoneNumber(),
		Email:         d.Email(),
		VehicleType:   d.VehicleType(),
		VehicleNumber: d.VehicleNumber(),
		Status:        int(d.Status()),
		Balance:       d.Balance(),
		IsActive:      d.IsActive(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.FirstName,
		dto.LastName,
		dto.LicenseNumber,
		dto.PhoneNumber,
		dto.Email,
		dto.VehicleType,
		dto.VehicleNumber,
		driver.Status(dto.Status),
		dto.Balance,
		dto.IsActive,
	)
}

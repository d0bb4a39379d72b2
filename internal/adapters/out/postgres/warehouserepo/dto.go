// Package warehouserepo implements the repository pattern for warehouse
// aggregates.
package warehouserepo

import (
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WarehouseDTO represents the database structure for persisting warehouses.
type WarehouseDTO struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Code      string           `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name      string           `gorm:"type:varchar(255);not null"`
	Address   string           `gorm:"type:varchar(512)"`
	Location  string           `gorm:"type:varchar(255)"`
	Latitude  *decimal.Decimal `gorm:"type:decimal(9,6)"`
	Longitude *decimal.Decimal `gorm:"type:decimal(9,6)"`
	Capacity  int              `gorm:"type:int;not null"`
	IsActive  bool             `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "warehouses".
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func fromDomain(w *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:        w.ID().Bytes(),
		Code:      w.Code(),
		Name:      w.Name(),
		Address:   w.Address(),
		Location:  w.Location(),
		Latitude:  w.Latitude(),
		Longitude: w.Longitude(),
		Capacity:  w.Capacity(),
		IsActive:  w.IsActive(),
	}
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(
		id,
		dto.Code,
		dto.Name,
		dto.Address,
		dto.Location,
		dto.Latitude,
		dto.Longitude,
		dto.Capacity,
		dto.IsActive,
	)
}

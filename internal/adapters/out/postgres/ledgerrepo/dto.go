// Package ledgerrepo implements the repository pattern for driver ledger
// transactions. Transactions are append-only; the package exposes no update
// path.
package ledgerrepo

import (
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionDTO represents the database structure for persisting ledger
// transactions. Amounts are signed; balance snapshots are captured at
// posting time.
type TransactionDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DriverID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ShipmentID      *uuid.UUID      `gorm:"type:uuid;index"`
	TransactionType int             `gorm:"type:int;not null;index"`
	Status          int             `gorm:"type:int;not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	BalanceBefore   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	BalanceAfter    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Description     string          `gorm:"type:varchar(512)"`
	Reference       string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	CreatedAt       time.Time       `gorm:"type:timestamptz;not null"`
}

// TableName overrides GORM's default naming to use "transactions".
func (TransactionDTO) TableName() string {
	return "transactions"
}

func fromDomain(txn *ledger.Transaction) TransactionDTO {
	var shipmentID *uuid.UUID
	if txn.ShipmentID() != nil {
		raw := txn.ShipmentID().Bytes()
		shipmentID = &raw
	}

	return TransactionDTO{
		ID:              txn.ID().Bytes(),
		DriverID:        txn.DriverID().Bytes(),
		ShipmentID:      shipmentID,
		TransactionType: int(txn.Type()),
		Status:          int(txn.Status()),
		Amount:          txn.Amount(),
		BalanceBefore:   txn.BalanceBefore(),
		BalanceAfter:    txn.BalanceAfter(),
		Description:     txn.Description(),
		Reference:       txn.Reference(),
		CreatedAt:       txn.CreatedAt(),
	}
}

func toDomain(dto TransactionDTO) (*ledger.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	var shipmentID *kernel.UUID
	if dto.ShipmentID != nil {
		sID, shipErr := kernel.UUIDFromBytes((*dto.ShipmentID)[:])
		if shipErr != nil {
			return nil, shipErr
		}
		shipmentID = &sID
	}

	return ledger.RestoreTransaction(
		id,
		driverID,
		shipmentID,
		ledger.TransactionType(dto.TransactionType),
		ledger.TransactionStatus(dto.Status),
		dto.Amount,
		dto.BalanceBefore,
		dto.BalanceAfter,
		dto.Description,
		dto.Reference,
		dto.CreatedAt,
	)
}

// Package stockrepo implements the repository pattern for stock record
// aggregates, handling the conversion between domain entities and their
// database representation.
package stockrepo

import (
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/stock"

	"github.com/google/uuid"
)

// StockRecordDTO represents the database structure for persisting stock
// records. Each record is the single source of truth for one (product,
// warehouse) pair.
type StockRecordDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_product_warehouse"`
	WarehouseID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_product_warehouse"`
	Quantity         int       `gorm:"type:int;not null"`
	ReservedQuantity int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "stock_records".
func (StockRecordDTO) TableName() string {
	return "stock_records"
}

func fromDomain(record *stock.StockRecord) StockRecordDTO {
	return StockRecordDTO{
		ID:               record.ID().Bytes(),
		ProductID:        record.ProductID().Bytes(),
		WarehouseID:      record.WarehouseID().Bytes(),
		Quantity:         record.Quantity(),
		ReservedQuantity: record.Reserved(),
	}
}

func toDomain(dto StockRecordDTO) (*stock.StockRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	return stock.RestoreStockRecord(id, productID, warehouseID, dto.Quantity, dto.ReservedQuantity)
}

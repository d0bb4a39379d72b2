package ports

import (
	"context"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for stock records.
// A record is keyed by its (product, warehouse) pair; lookups by that pair
// are the hot path for reservation and transfer flows.
type StockRepository interface {
	// Add persists a new stock record.
	Add(ctx context.Context, aggregate *stock.StockRecord) error

	// Update persists changes to an existing stock record.
	Update(ctx context.Context, aggregate *stock.StockRecord) error

	// Get retrieves a stock record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*stock.StockRecord, error)

	// GetByProductAndWarehouse retrieves the record for a (product, warehouse)
	// pair. Returns ObjectNotFound when no stock has ever arrived there.
	GetByProductAndWarehouse(ctx context.Context, productID, warehouseID kernel.UUID) (*stock.StockRecord, error)

	// GetAllByWarehouse retrieves every stock record held at a warehouse.
	GetAllByWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*stock.StockRecord, error)

	// GetAllByProduct retrieves a product's stock records across warehouses.
	GetAllByProduct(ctx context.Context, productID kernel.UUID) ([]*stock.StockRecord, error)
}

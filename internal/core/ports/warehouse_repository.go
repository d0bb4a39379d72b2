package ports

import (
	"context"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouses.
type WarehouseRepository interface {
	// Add persists a new warehouse.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update persists changes to an existing warehouse.
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get retrieves a warehouse by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetByCode retrieves a warehouse by the unique business code.
	GetByCode(ctx context.Context, code string) (*warehouse.Warehouse, error)

	// GetAllActive retrieves every warehouse that is not soft-deleted.
	GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error)
}

package queries

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var ErrGetLowStockQueryIsNotConstructed = errors.New(
	"GetLowStockQuery must be created via NewGetLowStockQuery constructor",
)

// GetLowStockQuery finds stock records whose available quantity has fallen
// to or below the product's reorder threshold, across the whole network or
// narrowed to one warehouse.
type GetLowStockQuery struct {
	warehouseID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLowStockQuery creates a low stock report query. A nil warehouse
// covers the whole network.
func NewGetLowStockQuery(warehouseID *kernel.UUID) (GetLowStockQuery, error) {
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return GetLowStockQuery{}, err
		}
	}

	return GetLowStockQuery{
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockQueryIsNotConstructed)
}

// WarehouseID returns the optional warehouse filter.
func (q GetLowStockQuery) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

// LowStockResponse is one record under its reorder threshold.
type LowStockResponse struct {
	ProductID   kernel.UUID
	ProductName string
	SKU         string
	WarehouseID kernel.UUID
	Available   int
	Threshold   int
}

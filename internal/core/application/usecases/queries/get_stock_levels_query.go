package queries

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var (
	ErrGetStockLevelsQueryIsNotConstructed = errors.New(
		"GetStockLevelsQuery must be created via NewGetStockLevelsQuery constructor",
	)
	ErrStockFilterIsRequired = errors.New("either a warehouse or a product filter is required")
)

// GetStockLevelsQuery retrieves stock records narrowed to one warehouse, one
// product, or both. At least one filter is required; an unfiltered dump of
// every record in the network is never useful.
type GetStockLevelsQuery struct {
	warehouseID *kernel.UUID
	productID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStockLevelsQuery creates a query for stock levels.
func NewGetStockLevelsQuery(warehouseID, productID *kernel.UUID) (GetStockLevelsQuery, error) {
	if warehouseID == nil && productID == nil {
		return GetStockLevelsQuery{}, ErrStockFilterIsRequired
	}
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return GetStockLevelsQuery{}, err
		}
	}
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return GetStockLevelsQuery{}, err
		}
	}

	return GetStockLevelsQuery{
		warehouseID: warehouseID,
		productID:   productID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockLevelsQuery) Validate() error {
	if err := q.guard.Validate(ErrGetStockLevelsQueryIsNotConstructed); err != nil {
		return err
	}
	if q.warehouseID == nil && q.productID == nil {
		return errs.NewValueIsRequiredError("warehouseID or productID")
	}
	return nil
}

// WarehouseID returns the optional warehouse filter.
func (q GetStockLevelsQuery) WarehouseID() *kernel.UUID {
	return q.warehouseID
}

// ProductID returns the optional product filter.
func (q GetStockLevelsQuery) ProductID() *kernel.UUID {
	return q.productID
}

// StockLevelResponse is one stock record row enriched with the product's
// catalog details.
type StockLevelResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	SKU         string
	WarehouseID kernel.UUID
	Quantity    int
	Reserved    int
	Available   int
}

package queries

import (
	"context"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockQueryHandler reports records at or below their reorder
// threshold.
type GetLowStockQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockQueryHandler creates a handler for low stock queries.
func NewGetLowStockQueryHandler(db *gorm.DB) GetLowStockQueryHandler {
	return GetLowStockQueryHandler{db: db}
}

// Handle lists every active product whose available quantity is at or below
// the product's threshold, most depleted first.
func (h GetLowStockQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockQuery,
) ([]LowStockResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			s.product_id,
			p.name,
			p.sku,
			s.warehouse_id,
			s.quantity - s.reserved_quantity,
			p.low_stock_threshold
		FROM stock_records s
		JOIN products p ON p.id = s.product_id
		WHERE p.is_active = true
		  AND s.quantity - s.reserved_quantity <= p.low_stock_threshold`
	args := make([]any, 0, 1)

	if warehouseID := query.WarehouseID(); warehouseID != nil {
		sqlText += ` AND s.warehouse_id = ?`
		args = append(args, warehouseID.String())
	}
	sqlText += ` ORDER BY s.quantity - s.reserved_quantity ASC, p.name`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := make([]LowStockResponse, 0)
	for rows.Next() {
		var resp LowStockResponse
		var productID, warehouseID uuid.UUID

		err = rows.Scan(
			&productID,
			&resp.ProductName,
			&resp.SKU,
			&warehouseID,
			&resp.Available,
			&resp.Threshold,
		)
		if err != nil {
			return nil, err
		}

		resp.ProductID, err = kernel.UUIDFromBytes(productID[:])
		if err != nil {
			return nil, err
		}
		resp.WarehouseID, err = kernel.UUIDFromBytes(warehouseID[:])
		if err != nil {
			return nil, err
		}

		alerts = append(alerts, resp)
	}

	return alerts, rows.Err()
}

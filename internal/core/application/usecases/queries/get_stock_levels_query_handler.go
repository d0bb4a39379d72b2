package queries

import (
	"context"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStockLevelsQueryHandler lists stock records joined with the product
// catalog.
type GetStockLevelsQueryHandler struct {
	db *gorm.DB
}

// NewGetStockLevelsQueryHandler creates a handler for stock level queries.
func NewGetStockLevelsQueryHandler(db *gorm.DB) GetStockLevelsQueryHandler {
	return GetStockLevelsQueryHandler{db: db}
}

// Handle executes the listing ordered by product name.
func (h GetStockLevelsQueryHandler) Handle(
	ctx context.Context,
	query GetStockLevelsQuery,
) ([]StockLevelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			s.id,
			s.product_id,
			p.name,
			p.sku,
			s.warehouse_id,
			s.quantity,
			s.reserved_quantity
		FROM stock_records s
		JOIN products p ON p.id = s.product_id
		WHERE 1=1`
	args := make([]any, 0, 2)

	if warehouseID := query.WarehouseID(); warehouseID != nil {
		sqlText += ` AND s.warehouse_id = ?`
		args = append(args, warehouseID.String())
	}
	if productID := query.ProductID(); productID != nil {
		sqlText += ` AND s.product_id = ?`
		args = append(args, productID.String())
	}
	sqlText += ` ORDER BY p.name`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	levels := make([]StockLevelResponse, 0)
	for rows.Next() {
		var resp StockLevelResponse
		var id, productID, warehouseID uuid.UUID

		err = rows.Scan(
			&id,
			&productID,
			&resp.ProductName,
			&resp.SKU,
			&warehouseID,
			&resp.Quantity,
			&resp.Reserved,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
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

		resp.Available = resp.Quantity - resp.Reserved
		levels = append(levels, resp)
	}

	return levels, rows.Err()
}

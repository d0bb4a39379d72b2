package queries

import (
	"context"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverTransactionsQueryHandler lists a driver's ledger entries.
type GetDriverTransactionsQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverTransactionsQueryHandler creates a handler for ledger
// listings.
func NewGetDriverTransactionsQueryHandler(db *gorm.DB) GetDriverTransactionsQueryHandler {
	return GetDriverTransactionsQueryHandler{db: db}
}

// Handle executes the listing newest first.
func (h GetDriverTransactionsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverTransactionsQuery,
) ([]TransactionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			driver_id,
			shipment_id,
			transaction_type,
			status,
			amount,
			balance_before,
			balance_after,
			description,
			reference,
			created_at
		FROM transactions
		WHERE driver_id = ?`
	args := []any{query.DriverID().String()}

	if transactionType := query.TransactionType(); transactionType != nil {
		sqlText += ` AND transaction_type = ?`
		args = append(args, *transactionType)
	}
	sqlText += ` ORDER BY created_at DESC`
	if limit := query.Limit(); limit > 0 {
		sqlText += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]TransactionResponse, 0)
	for rows.Next() {
		var resp TransactionResponse
		var id, driverID uuid.UUID
		var shipmentID uuid.NullUUID
		var transactionType, status int

		err = rows.Scan(
			&id,
			&driverID,
			&shipmentID,
			&transactionType,
			&status,
			&resp.Amount,
			&resp.BalanceBefore,
			&resp.BalanceAfter,
			&resp.Description,
			&resp.Reference,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.DriverID, err = kernel.UUIDFromBytes(driverID[:])
		if err != nil {
			return nil, err
		}
		resp.ShipmentID, err = optionalUUID(shipmentID)
		if err != nil {
			return nil, err
		}

		resp.Type = ledger.TransactionType(transactionType)
		resp.Status = ledger.TransactionStatus(status)
		transactions = append(transactions, resp)
	}

	return transactions, rows.Err()
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/ledger"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDriverBalanceQueryHandler retrieves a driver's balance and lifetime
// ledger totals.
type GetDriverBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverBalanceQueryHandler creates a handler for balance lookups.
func NewGetDriverBalanceQueryHandler(db *gorm.DB) GetDriverBalanceQueryHandler {
	return GetDriverBalanceQueryHandler{db: db}
}

// Handle executes the lookup. The balance comes from the driver row; the
// earnings and expense totals are summed from the completed ledger history.
// Earnings count positive payments and refunds, expenses count negative
// expense entries reported as a positive figure. Adjustments move the
// balance but belong to neither total.
func (h GetDriverBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetDriverBalanceQuery,
) (GetDriverBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverBalanceQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			d.balance,
			COALESCE(SUM(t.amount) FILTER (
				WHERE t.amount > 0 AND t.transaction_type IN (?, ?) AND t.status = ?), 0) AS total_earnings,
			COALESCE(-SUM(t.amount) FILTER (
				WHERE t.amount < 0 AND t.transaction_type = ? AND t.status = ?), 0) AS total_expenses
		FROM drivers d
		LEFT JOIN transactions t ON t.driver_id = d.id
		WHERE d.id = ?
		GROUP BY d.id, d.balance
	`, ledger.TypePayment, ledger.TypeRefund, ledger.StatusCompleted,
		ledger.TypeExpense, ledger.StatusCompleted,
		query.DriverID().String()).Row()

	var balance, totalEarnings, totalExpenses decimal.Decimal
	err := row.Scan(&balance, &totalEarnings, &totalExpenses)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDriverBalanceQueryResponse{}, errs.NewObjectNotFoundError("driverID", query.DriverID())
	}
	if err != nil {
		return GetDriverBalanceQueryResponse{}, err
	}

	return GetDriverBalanceQueryResponse{
		DriverID:      query.DriverID(),
		Balance:       balance,
		TotalEarnings: totalEarnings,
		TotalExpenses: totalExpenses,
	}, nil
}

package queries

import (
	"context"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetFinancialReportQueryHandler aggregates revenue, payouts, expenses and
// profit over delivered shipments.
type GetFinancialReportQueryHandler struct {
	db *gorm.DB
}

// NewGetFinancialReportQueryHandler creates a handler for company reports.
func NewGetFinancialReportQueryHandler(db *gorm.DB) GetFinancialReportQueryHandler {
	return GetFinancialReportQueryHandler{db: db}
}

// Handle executes the aggregation. Unsettled delivered shipments count toward
// revenue and the shipment total but carry zero in the settlement columns.
func (h GetFinancialReportQueryHandler) Handle(
	ctx context.Context,
	query GetFinancialReportQuery,
) (GetFinancialReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFinancialReportQueryResponse{}, err
	}

	sql := `
		SELECT
			COUNT(*),
			COALESCE(SUM(total_value), 0),
			COALESCE(SUM(COALESCE(driver_payment, 0)), 0),
			COALESCE(SUM(COALESCE(fuel_cost, 0) + COALESCE(other_expenses, 0)), 0),
			COALESCE(SUM(COALESCE(company_profit, 0)), 0)
		FROM shipments
		WHERE status = ?`
	args := []any{shipment.StatusDelivered}

	if start := query.StartDate(); start != nil {
		sql += ` AND actual_delivery_date >= ?`
		args = append(args, *start)
	}
	if end := query.EndDate(); end != nil {
		sql += ` AND actual_delivery_date <= ?`
		args = append(args, *end)
	}

	row := h.db.WithContext(ctx).Raw(sql, args...).Row()

	var count int
	var revenue, payments, expenses, companyProfit decimal.Decimal
	if err := row.Scan(&count, &revenue, &payments, &expenses, &companyProfit); err != nil {
		return GetFinancialReportQueryResponse{}, err
	}

	return GetFinancialReportQueryResponse{
		TotalRevenue:        revenue,
		TotalDriverPayments: payments,
		TotalExpenses:       expenses,
		TotalProfit:         companyProfit,
		ShipmentCount:       count,
	}, nil
}

package queries

import (
	"errors"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetFinancialReportQueryIsNotConstructed = errors.New(
	"GetFinancialReportQuery must be created via NewGetFinancialReportQuery constructor",
)

// GetFinancialReportQuery aggregates the company's financials over delivered
// shipments, optionally bounded by actual delivery date.
type GetFinancialReportQuery struct {
	startDate *time.Time
	endDate   *time.Time

	guard guard.ConstructorGuard
}

// NewGetFinancialReportQuery creates a report query. Both bounds are
// optional; when both are set the start must not be after the end.
func NewGetFinancialReportQuery(startDate, endDate *time.Time) (GetFinancialReportQuery, error) {
	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return GetFinancialReportQuery{}, errs.NewValueIsInvalidError("startDate")
	}

	return GetFinancialReportQuery{
		startDate: startDate,
		endDate:   endDate,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFinancialReportQuery) Validate() error {
	return q.guard.Validate(ErrGetFinancialReportQueryIsNotConstructed)
}

// StartDate returns the inclusive lower delivery-date bound, nil for none.
func (q GetFinancialReportQuery) StartDate() *time.Time {
	return q.startDate
}

// EndDate returns the inclusive upper delivery-date bound, nil for none.
func (q GetFinancialReportQuery) EndDate() *time.Time {
	return q.endDate
}

// GetFinancialReportQueryResponse is the company financial report read model.
// Shipments delivered but never settled contribute zero to every sum except
// revenue and the shipment count.
type GetFinancialReportQueryResponse struct {
	TotalRevenue        decimal.Decimal
	TotalDriverPayments decimal.Decimal
	TotalExpenses       decimal.Decimal
	TotalProfit         decimal.Decimal
	ShipmentCount       int
}

package http

import (
	"net/http"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/queries"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type financialReportResponse struct {
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TotalDriverPayments decimal.Decimal `json:"totalDriverPayments"`
	TotalExpenses       decimal.Decimal `json:"totalExpenses"`
	TotalProfit         decimal.Decimal `json:"totalProfit"`
	ShipmentCount       int             `json:"shipmentCount"`
}

func (s *Server) handleGetFinancialReport(ctx echo.Context) error {
	startDate, err := parseOptionalDate(ctx.QueryParam("startDate"), "startDate")
	if err != nil {
		return respondError(ctx, err)
	}
	endDate, err := parseOptionalDate(ctx.QueryParam("endDate"), "endDate")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetFinancialReportQuery(startDate, endDate)
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.queries.GetFinancialReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, financialReportResponse{
		TotalRevenue:        report.TotalRevenue,
		TotalDriverPayments: report.TotalDriverPayments,
		TotalExpenses:       report.TotalExpenses,
		TotalProfit:         report.TotalProfit,
		ShipmentCount:       report.ShipmentCount,
	})
}

func parseOptionalDate(value string, name string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &parsed, nil
}

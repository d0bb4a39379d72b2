package services

import (
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DriverPaymentRate is the fixed share of a shipment's total value paid to
// the transporting driver.
var DriverPaymentRate = decimal.NewFromFloat(0.65)

// ErrNegativeExpense is returned when a settlement is attempted with a
// negative fuel cost or other-expenses figure.
var ErrNegativeExpense = errs.NewValueIsInvalidError("settlement expenses must not be negative")

// Settlement is the computed financial outcome of one delivered shipment.
type Settlement struct {
	DriverPayment decimal.Decimal
	FuelCost      decimal.Decimal
	OtherExpenses decimal.Decimal
	CompanyProfit decimal.Decimal
}

// TotalExpenses returns fuel cost plus other expenses.
func (s Settlement) TotalExpenses() decimal.Decimal {
	return s.FuelCost.Add(s.OtherExpenses)
}

// HasExpenses reports whether an expense ledger entry must be posted
// alongside the payment entry.
func (s Settlement) HasExpenses() bool {
	return s.TotalExpenses().IsPositive()
}

// SettlementCalculator is a domain service that converts a delivered
// shipment's value into the driver payment and company profit figures.
//
// Business rules:
//   - The driver is paid a fixed 65% of the shipment's total value.
//   - Company profit is whatever remains of the total value after the driver
//     payment, fuel cost, and other expenses. It may be negative when
//     expenses exceed the margin; a losing shipment still settles.
//   - Expenses must be non-negative.
type SettlementCalculator struct{}

// NewSettlementCalculator creates a new SettlementCalculator instance.
func NewSettlementCalculator() SettlementCalculator {
	return SettlementCalculator{}
}

// Calculate computes the settlement for the given shipment.
//
// The shipment is only read here; recording the figures onto it and posting
// the ledger entries is the settlement handler's job, inside one transaction.
func (c SettlementCalculator) Calculate(
	shp *shipment.Shipment,
	fuelCost, otherExpenses decimal.Decimal,
) (Settlement, error) {
	if err := shp.Validate(); err != nil {
		return Settlement{}, err
	}
	if fuelCost.IsNegative() || otherExpenses.IsNegative() {
		return Settlement{}, ErrNegativeExpense
	}
	if shp.Status() != shipment.StatusDelivered {
		return Settlement{}, errs.NewInvalidStateError("shipment", shp.ID().String(),
			shp.Status().String(), "settle")
	}
	if shp.DriverID() == nil {
		return Settlement{}, errs.ErrMissingDriver
	}

	totalValue := shp.TotalValue()
	driverPayment := totalValue.Mul(DriverPaymentRate).Round(2)
	companyProfit := totalValue.Sub(driverPayment.Add(fuelCost).Add(otherExpenses))

	return Settlement{
		DriverPayment: driverPayment,
		FuelCost:      fuelCost,
		OtherExpenses: otherExpenses,
		CompanyProfit: companyProfit,
	}, nil
}

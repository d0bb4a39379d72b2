package queries

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDriverBalanceQueryIsNotConstructed = errors.New(
	"GetDriverBalanceQuery must be created via NewGetDriverBalanceQuery constructor",
)

// GetDriverBalanceQuery retrieves a driver's current balance together with
// lifetime earnings and expenses derived from the ledger.
type GetDriverBalanceQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverBalanceQuery creates a query for one driver's balance.
func NewGetDriverBalanceQuery(driverID kernel.UUID) (GetDriverBalanceQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverBalanceQuery{}, err
	}

	return GetDriverBalanceQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverBalanceQueryIsNotConstructed)
}

// DriverID returns the driver whose balance is requested.
func (q GetDriverBalanceQuery) DriverID() kernel.UUID {
	return q.driverID
}

// GetDriverBalanceQueryResponse is the balance read model. TotalEarnings
// sums the credits posted to the driver, TotalExpenses the debits as a
// positive figure.
type GetDriverBalanceQueryResponse struct {
	DriverID      kernel.UUID
	Balance       decimal.Decimal
	TotalEarnings decimal.Decimal
	TotalExpenses decimal.Decimal
}

package queries

import (
	"errors"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/ledger"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDriverTransactionsQueryIsNotConstructed = errors.New(
	"GetDriverTransactionsQuery must be created via NewGetDriverTransactionsQuery constructor",
)

// GetDriverTransactionsQuery retrieves a driver's ledger history newest
// first, optionally filtered by transaction type and capped by a limit.
// A limit of zero means no cap.
type GetDriverTransactionsQuery struct {
	driverID        kernel.UUID
	transactionType *ledger.TransactionType
	limit           int

	guard guard.ConstructorGuard
}

// NewGetDriverTransactionsQuery creates a query for a driver's ledger.
func NewGetDriverTransactionsQuery(
	driverID kernel.UUID,
	transactionType *ledger.TransactionType,
	limit int,
) (GetDriverTransactionsQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverTransactionsQuery{}, err
	}
	if transactionType != nil {
		if err := transactionType.Validate(); err != nil {
			return GetDriverTransactionsQuery{}, err
		}
	}
	if limit < 0 {
		return GetDriverTransactionsQuery{}, errs.NewValueIsInvalidError("limit")
	}

	return GetDriverTransactionsQuery{
		driverID:        driverID,
		transactionType: transactionType,
		limit:           limit,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverTransactionsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverTransactionsQueryIsNotConstructed)
}

// DriverID returns the driver whose ledger is listed.
func (q GetDriverTransactionsQuery) DriverID() kernel.UUID {
	return q.driverID
}

// TransactionType returns the optional type filter.
func (q GetDriverTransactionsQuery) TransactionType() *ledger.TransactionType {
	return q.transactionType
}

// Limit returns the row cap, zero for unlimited.
func (q GetDriverTransactionsQuery) Limit() int {
	return q.limit
}

// TransactionResponse is one ledger row.
type TransactionResponse struct {
	ID            kernel.UUID
	DriverID      kernel.UUID
	ShipmentID    *kernel.UUID
	Type          ledger.TransactionType
	Status        ledger.TransactionStatus
	Amount        decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	Description   string
	Reference     string
	CreatedAt     time.Time
}

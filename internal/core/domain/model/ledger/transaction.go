package ledger

import (
	"errors"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrTransactionIsNotConstructed is returned when a Transaction instance
	// was not created through NewTransaction or RestoreTransaction.
	ErrTransactionIsNotConstructed = errors.New(
		"Transaction must be created via NewTransaction constructor")

	// ErrReferenceIsRequired is returned when the reference string is empty.
	ErrReferenceIsRequired = errs.NewValueIsRequiredError("transaction reference")

	// ErrBalanceMismatch is returned when the snapshotted balances do not
	// bracket the amount.
	ErrBalanceMismatch = errs.NewValueIsInvalidError(
		"balanceAfter minus balanceBefore must equal amount")
)

// Transaction is one immutable ledger entry. The amount is signed: positive
// credits the driver, negative debits. balanceBefore and balanceAfter are
// snapshotted at post time and must bracket the amount exactly.
type Transaction struct {
	id         kernel.UUID
	driverID   kernel.UUID
	shipmentID *kernel.UUID

	transactionType TransactionType
	status          TransactionStatus

	amount        decimal.Decimal
	balanceBefore decimal.Decimal
	balanceAfter  decimal.Decimal

	description string
	reference   string

	createdAt time.Time

	isConstructed bool
}

// NewTransaction posts a completed ledger entry. The balance bracket
// invariant is enforced here, not trusted from the caller.
func NewTransaction(
	id, driverID kernel.UUID,
	shipmentID *kernel.UUID,
	transactionType TransactionType,
	amount, balanceBefore, balanceAfter decimal.Decimal,
	description, reference string,
	createdAt time.Time,
) (*Transaction, error) {
	if err := errors.Join(id.Validate(), driverID.Validate(), transactionType.Validate()); err != nil {
		return nil, err
	}
	if shipmentID != nil {
		if err := shipmentID.Validate(); err != nil {
			return nil, err
		}
	}
	if reference == "" {
		return nil, ErrReferenceIsRequired
	}
	if !balanceAfter.Sub(balanceBefore).Equal(amount) {
		return nil, ErrBalanceMismatch
	}

	return &Transaction{
		id:              id,
		driverID:        driverID,
		shipmentID:      shipmentID,
		transactionType: transactionType,
		status:          StatusCompleted,
		amount:          amount,
		balanceBefore:   balanceBefore,
		balanceAfter:    balanceAfter,
		description:     description,
		reference:       reference,
		createdAt:       createdAt,
		isConstructed:   true,
	}, nil
}

// RestoreTransaction reconstructs a ledger entry from persistence.
func RestoreTransaction(
	id, driverID kernel.UUID,
	shipmentID *kernel.UUID,
	transactionType TransactionType,
	status TransactionStatus,
	amount, balanceBefore, balanceAfter decimal.Decimal,
	description, reference string,
	createdAt time.Time,
) (*Transaction, error) {
	txn, err := NewTransaction(id, driverID, shipmentID, transactionType,
		amount, balanceBefore, balanceAfter, description, reference, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	txn.status = status
	return txn, nil
}

// Validate ensures the transaction was created through a constructor.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// IsEqual compares two transactions by their unique identifiers.
func (t *Transaction) IsEqual(other *Transaction) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// DriverID returns the driver whose balance the entry moved.
func (t *Transaction) DriverID() kernel.UUID {
	return t.driverID
}

// ShipmentID returns the related shipment, or nil.
func (t *Transaction) ShipmentID() *kernel.UUID {
	return t.shipmentID
}

// Type returns the entry's classification.
func (t *Transaction) Type() TransactionType {
	return t.transactionType
}

// Status returns the entry's status.
func (t *Transaction) Status() TransactionStatus {
	return t.status
}

// Amount returns the signed amount.
func (t *Transaction) Amount() decimal.Decimal {
	return t.amount
}

// BalanceBefore returns the driver balance snapshotted before the entry.
func (t *Transaction) BalanceBefore() decimal.Decimal {
	return t.balanceBefore
}

// BalanceAfter returns the driver balance snapshotted after the entry.
func (t *Transaction) BalanceAfter() decimal.Decimal {
	return t.balanceAfter
}

// Description returns the free-text description, if any.
func (t *Transaction) Description() string {
	return t.description
}

// Reference returns the machine-generated reference string.
func (t *Transaction) Reference() string {
	return t.reference
}

// CreatedAt returns when the entry was posted.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

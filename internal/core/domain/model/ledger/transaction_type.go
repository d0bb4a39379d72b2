package ledger

import (
	"fmt"

	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"
)

// TransactionType classifies a ledger entry. Payment and refund are posted
// with positive amounts, expense and adjustment with negative amounts; only
// the latter two are blocked from driving a balance negative.
type TransactionType int

const (
	// TypeUnknown is the zero value and is never valid.
	TypeUnknown TransactionType = iota

	// TypePayment credits a driver for a delivered shipment.
	TypePayment

	// TypeExpense debits a driver for fuel and other costs.
	TypeExpense

	// TypeRefund credits a driver outside the settlement flow.
	TypeRefund

	// TypeAdjustment is a manual correction, usually a debit.
	TypeAdjustment
)

func getTypeStrings() map[TransactionType]string {
	return map[TransactionType]string{
		TypeUnknown:    "unknown",
		TypePayment:    "payment",
		TypeExpense:    "expense",
		TypeRefund:     "refund",
		TypeAdjustment: "adjustment",
	}
}

// ParseTransactionType converts a wire representation into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	for t, str := range getTypeStrings() {
		if str == s && t != TypeUnknown {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("transaction type",
		fmt.Errorf("%q is not a valid type", s))
}

// Validate checks if the type is one of the defined classifications.
func (t TransactionType) Validate() error {
	if t <= TypeUnknown || t > TypeAdjustment {
		return errs.NewValueIsInvalidErrorWithCause("transaction type",
			fmt.Errorf("%d is not a valid type", t))
	}
	return nil
}

// String returns the wire representation of the type.
func (t TransactionType) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// BlocksNegativeBalance reports whether posting this type may not drive the
// driver balance below zero.
func (t TransactionType) BlocksNegativeBalance() bool {
	return t == TypeExpense || t == TypeAdjustment
}

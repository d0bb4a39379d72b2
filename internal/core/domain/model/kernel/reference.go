package kernel

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	base36Chars      = "0123456789abcdefghijklmnopqrstuvwxyz"
	referenceRandLen = 9
)

// randBase36 returns n random base36 characters.
func randBase36(n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(base36Chars[rand.IntN(len(base36Chars))])
	}
	return b.String()
}

// NewTrackingNumber generates a shipment tracking number of the form
// TRK-<unix millis>-<9 random base36 chars, uppercased>.
//
// Generation is time+random with no uniqueness retry; the unique index on the
// shipments table is what turns an (astronomically unlikely) collision into a
// storage error instead of silent corruption.
func NewTrackingNumber() string {
	return fmt.Sprintf("TRK-%d-%s", time.Now().UnixMilli(), strings.ToUpper(randBase36(referenceRandLen)))
}

// NewTransactionReference generates a ledger transaction reference of the form
// TXN-<unix millis>-<9 random base36 chars>.
func NewTransactionReference() string {
	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), randBase36(referenceRandLen))
}

// PaymentReference derives the settlement payment reference for a shipment.
func PaymentReference(trackingNumber string) string {
	return "PAY-" + trackingNumber
}

// ExpenseReference derives the settlement expense reference for a shipment.
func ExpenseReference(trackingNumber string) string {
	return "EXP-" + trackingNumber
}

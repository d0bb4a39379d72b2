package kernel_test

import (
	"regexp"
	"testing"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestNewTrackingNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^TRK-\d{13,}-[0-9A-Z]{9}$`)

	a := kernel.NewTrackingNumber()
	b := kernel.NewTrackingNumber()

	assert.Regexp(t, pattern, a)
	assert.Regexp(t, pattern, b)
	assert.NotEqual(t, a, b)
}

func TestNewTransactionReference(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^TXN-\d{13,}-[0-9a-z]{9}$`), kernel.NewTransactionReference())
}

func TestSettlementReferences(t *testing.T) {
	assert.Equal(t, "PAY-TRK-1-ABC", kernel.PaymentReference("TRK-1-ABC"))
	assert.Equal(t, "EXP-TRK-1-ABC", kernel.ExpenseReference("TRK-1-ABC"))
}

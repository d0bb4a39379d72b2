package errs_test

import (
	"errors"
	"testing"

	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("driverId", "123")

		assert.Equal(t, "driverId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("driverId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: driverId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("queue entry", "abc", "completed", "cancel")

	assert.Equal(t,
		"operation is not allowed in current state: queue entry abc is completed, cannot cancel",
		err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestDuplicateEntryError(t *testing.T) {
	err := errs.NewDuplicateEntryError("queue entry", "warehouse-1/shipment-2")

	assert.Equal(t,
		"duplicate entry: queue entry with key warehouse-1/shipment-2 already exists",
		err.Error())
	require.ErrorIs(t, err, errs.ErrDuplicateEntry)
}

func TestInsufficientStockError(t *testing.T) {
	err := errs.NewInsufficientStockError("p1", "w1", 3, 5)

	assert.Equal(t, 3, err.Available)
	assert.Equal(t, 5, err.Requested)
	assert.Equal(t,
		"insufficient stock: product p1 at warehouse w1, available: 3, requested: 5",
		err.Error())
	require.ErrorIs(t, err, errs.ErrInsufficientStock)
}

func TestInsufficientBalanceError(t *testing.T) {
	err := errs.NewInsufficientBalanceError("d1",
		decimal.NewFromInt(10), decimal.NewFromInt(70))

	assert.Equal(t, "insufficient balance: driver d1, current: 10, required: 70", err.Error())
	require.ErrorIs(t, err, errs.ErrInsufficientBalance)
}

func TestDriverUnavailableError(t *testing.T) {
	err := errs.NewDriverUnavailableError("d1", "on_route")

	assert.Equal(t, "driver is not available: driver d1 is on_route", err.Error())
	require.ErrorIs(t, err, errs.ErrDriverUnavailable)
}

func TestValidationErrors(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("trackingNumber")
		assert.Equal(t, "value is required: trackingNumber", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid", func(t *testing.T) {
		cause := errors.New("must be positive")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)
		assert.Equal(t, "value is invalid: quantity (cause: must be positive)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("sanitize strips newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("hello\nworld")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "duplicate entry", errs.ErrDuplicateEntry.Error())
	assert.Equal(t, "insufficient stock", errs.ErrInsufficientStock.Error())
	assert.Equal(t, "insufficient balance", errs.ErrInsufficientBalance.Error())
	assert.Equal(t, "driver is not available", errs.ErrDriverUnavailable.Error())
	assert.Equal(t, "shipment has no assigned driver", errs.ErrMissingDriver.Error())
}

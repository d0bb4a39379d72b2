package driver_test

import (
	"testing"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/driver"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/ledger"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), "Alex", "Morgan", "DL-123456", "+15550100")
	require.NoError(t, err)
	return d
}

func TestNewDriver(t *testing.T) {
	t.Run("should create available active driver with zero balance", func(t *testing.T) {
		d := mustDriver(t)

		require.NoError(t, d.Validate())
		assert.Equal(t, driver.StatusAvailable, d.Status())
		assert.True(t, d.Balance().IsZero())
		assert.True(t, d.IsActive())
		assert.Equal(t, "Alex Morgan", d.FullName())
	})

	t.Run("should fail without license number", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "Alex", "Morgan", "", "+15550100")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without names", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "", "Morgan", "DL-1", "")
		require.Error(t, err)

		_, err = driver.NewDriver(kernel.NewUUID(), "Alex", "", "DL-1", "")
		require.Error(t, err)
	})
}

func TestDriverPost(t *testing.T) {
	d := decimal.RequireFromString

	t.Run("should credit and return the balance bracket", func(t *testing.T) {
		drv := mustDriver(t)

		before, after, err := drv.Post(ledger.TypePayment, d("65"))

		require.NoError(t, err)
		assert.True(t, before.IsZero())
		assert.True(t, after.Equal(d("65")))
		assert.True(t, drv.Balance().Equal(d("65")))
	})

	t.Run("should chain brackets across postings", func(t *testing.T) {
		drv := mustDriver(t)
		_, _, err := drv.Post(ledger.TypePayment, d("65"))
		require.NoError(t, err)

		before, after, err := drv.Post(ledger.TypeExpense, d("-20"))

		require.NoError(t, err)
		assert.True(t, before.Equal(d("65")))
		assert.True(t, after.Equal(d("45")))
	})

	t.Run("should block expense that would go negative", func(t *testing.T) {
		drv := mustDriver(t)
		_, _, err := drv.Post(ledger.TypePayment, d("10"))
		require.NoError(t, err)

		_, _, err = drv.Post(ledger.TypeExpense, d("-15"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.True(t, drv.Balance().Equal(d("10")))
	})

	t.Run("should block adjustment that would go negative", func(t *testing.T) {
		drv := mustDriver(t)

		_, _, err := drv.Post(ledger.TypeAdjustment, d("-1"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	})

	t.Run("should never block payment or refund", func(t *testing.T) {
		drv := mustDriver(t)

		// A negative payment is unusual but allowed by type policy.
		before, after, err := drv.Post(ledger.TypeRefund, d("-5"))

		require.NoError(t, err)
		assert.True(t, before.IsZero())
		assert.True(t, after.Equal(d("-5")))
	})
}

func TestDriverPostUnchecked(t *testing.T) {
	d := decimal.RequireFromString

	t.Run("should debit past zero", func(t *testing.T) {
		drv := mustDriver(t)
		_, _, err := drv.Post(ledger.TypePayment, d("65"))
		require.NoError(t, err)

		before, after := drv.PostUnchecked(d("-100"))

		assert.True(t, before.Equal(d("65")))
		assert.True(t, after.Equal(d("-35")))
		assert.True(t, drv.Balance().Equal(d("-35")))
	})

	t.Run("should chain with guarded postings", func(t *testing.T) {
		drv := mustDriver(t)
		drv.PostUnchecked(d("-35"))

		before, after, err := drv.Post(ledger.TypePayment, d("50"))

		require.NoError(t, err)
		assert.True(t, before.Equal(d("-35")))
		assert.True(t, after.Equal(d("15")))
	})
}

func TestDriverAvailability(t *testing.T) {
	t.Run("should be assignable when available and active", func(t *testing.T) {
		drv := mustDriver(t)

		require.NoError(t, drv.EnsureAvailable())
	})

	t.Run("should reject assignment when on route", func(t *testing.T) {
		drv := mustDriver(t)
		require.NoError(t, drv.SetStatus(driver.StatusOnRoute))

		err := drv.EnsureAvailable()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDriverUnavailable)
	})

	t.Run("should reject assignment when deactivated", func(t *testing.T) {
		drv := mustDriver(t)
		drv.Deactivate()

		err := drv.EnsureAvailable()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDriverUnavailable)
	})

	t.Run("should set any valid status unconditionally", func(t *testing.T) {
		drv := mustDriver(t)

		require.NoError(t, drv.SetStatus(driver.StatusUnloading))
		require.NoError(t, drv.SetStatus(driver.StatusOffDuty))
		require.NoError(t, drv.SetStatus(driver.StatusAvailable))
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		drv := mustDriver(t)

		err := drv.SetStatus(driver.Status(42))

		require.Error(t, err)
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("should restore persisted state verbatim", func(t *testing.T) {
		id := kernel.NewUUID()
		balance := decimal.RequireFromString("120.50")

		drv, err := driver.RestoreDriver(id, "Alex", "Morgan", "DL-123456",
			"+15550100", "alex@example.com", "truck", "AA-1234-BB",
			driver.StatusOnRoute, balance, false)

		require.NoError(t, err)
		assert.True(t, drv.ID().IsEqual(id))
		assert.Equal(t, driver.StatusOnRoute, drv.Status())
		assert.True(t, drv.Balance().Equal(balance))
		assert.False(t, drv.IsActive())
		assert.Equal(t, "truck", drv.VehicleType())
	})
}

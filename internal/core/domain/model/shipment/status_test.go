package shipment_test

import (
	"testing"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should parse all known statuses", func(t *testing.T) {
		for _, name := range []string{
			"pending", "queued", "loading", "in_transit",
			"at_warehouse", "delivered", "cancelled",
		} {
			s, err := shipment.ParseStatus(name)

			require.NoError(t, err)
			assert.Equal(t, name, s.String())
		}
	})

	t.Run("should fail with unknown status", func(t *testing.T) {
		_, err := shipment.ParseStatus("teleported")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "teleported")
	})

	t.Run("should fail with empty string", func(t *testing.T) {
		_, err := shipment.ParseStatus("")

		require.Error(t, err)
	})
}

func TestStatusCanTransitionTo(t *testing.T) {
	allowed := []struct {
		from, to shipment.Status
	}{
		{shipment.StatusPending, shipment.StatusQueued},
		{shipment.StatusQueued, shipment.StatusLoading},
		{shipment.StatusQueued, shipment.StatusPending},
		{shipment.StatusLoading, shipment.StatusInTransit},
		{shipment.StatusInTransit, shipment.StatusAtWarehouse},
		{shipment.StatusAtWarehouse, shipment.StatusInTransit},
		{shipment.StatusInTransit, shipment.StatusDelivered},
		{shipment.StatusAtWarehouse, shipment.StatusDelivered},
		{shipment.StatusPending, shipment.StatusCancelled},
		{shipment.StatusQueued, shipment.StatusCancelled},
		{shipment.StatusLoading, shipment.StatusCancelled},
		{shipment.StatusInTransit, shipment.StatusCancelled},
		{shipment.StatusAtWarehouse, shipment.StatusCancelled},
	}

	forbidden := []struct {
		from, to shipment.Status
	}{
		{shipment.StatusPending, shipment.StatusLoading},
		{shipment.StatusPending, shipment.StatusInTransit},
		{shipment.StatusPending, shipment.StatusDelivered},
		{shipment.StatusLoading, shipment.StatusQueued},
		{shipment.StatusLoading, shipment.StatusDelivered},
		{shipment.StatusInTransit, shipment.StatusLoading},
		{shipment.StatusDelivered, shipment.StatusInTransit},
		{shipment.StatusDelivered, shipment.StatusCancelled},
		{shipment.StatusCancelled, shipment.StatusPending},
		{shipment.StatusCancelled, shipment.StatusDelivered},
	}

	t.Run("should allow transitions from the lifecycle table", func(t *testing.T) {
		for _, tc := range allowed {
			assert.True(t, tc.from.CanTransitionTo(tc.to),
				"%s -> %s should be allowed", tc.from, tc.to)
		}
	})

	t.Run("should forbid everything else", func(t *testing.T) {
		for _, tc := range forbidden {
			assert.False(t, tc.from.CanTransitionTo(tc.to),
				"%s -> %s should be forbidden", tc.from, tc.to)
		}
	})

	t.Run("should always allow same-state transition", func(t *testing.T) {
		for _, s := range []shipment.Status{
			shipment.StatusPending, shipment.StatusQueued, shipment.StatusLoading,
			shipment.StatusInTransit, shipment.StatusAtWarehouse,
			shipment.StatusDelivered, shipment.StatusCancelled,
		} {
			assert.True(t, s.CanTransitionTo(s))
		}
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, shipment.StatusDelivered.IsTerminal())
	assert.True(t, shipment.StatusCancelled.IsTerminal())
	assert.False(t, shipment.StatusPending.IsTerminal())
	assert.False(t, shipment.StatusInTransit.IsTerminal())
}

func TestLegStatusCanTransitionTo(t *testing.T) {
	t.Run("should allow only the next step in the chain", func(t *testing.T) {
		assert.True(t, shipment.LegPending.CanTransitionTo(shipment.LegInTransit))
		assert.True(t, shipment.LegInTransit.CanTransitionTo(shipment.LegArrived))
		assert.True(t, shipment.LegArrived.CanTransitionTo(shipment.LegUnloaded))
		assert.True(t, shipment.LegUnloaded.CanTransitionTo(shipment.LegCompleted))
	})

	t.Run("should forbid skipping steps", func(t *testing.T) {
		assert.False(t, shipment.LegPending.CanTransitionTo(shipment.LegArrived))
		assert.False(t, shipment.LegPending.CanTransitionTo(shipment.LegCompleted))
		assert.False(t, shipment.LegInTransit.CanTransitionTo(shipment.LegCompleted))
	})

	t.Run("should forbid moving backwards", func(t *testing.T) {
		assert.False(t, shipment.LegArrived.CanTransitionTo(shipment.LegInTransit))
		assert.False(t, shipment.LegCompleted.CanTransitionTo(shipment.LegUnloaded))
	})

	t.Run("should allow same-state transition", func(t *testing.T) {
		assert.True(t, shipment.LegInTransit.CanTransitionTo(shipment.LegInTransit))
		assert.True(t, shipment.LegCompleted.CanTransitionTo(shipment.LegCompleted))
	})

	t.Run("should parse wire names", func(t *testing.T) {
		s, err := shipment.ParseLegStatus("in_transit")

		require.NoError(t, err)
		assert.Equal(t, shipment.LegInTransit, s)
	})
}

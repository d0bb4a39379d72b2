package queue_test

import (
	"testing"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/queue"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEntry(t *testing.T, priority int) *queue.QueueEntry {
	t.Helper()
	entry, err := queue.NewQueueEntry(kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID(), priority, 45,
		time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return entry
}

func TestNewQueueEntry(t *testing.T) {
	t.Run("should create waiting entry", func(t *testing.T) {
		entry := mustEntry(t, 5)

		require.NoError(t, entry.Validate())
		assert.Equal(t, queue.StatusWaiting, entry.Status())
		assert.Equal(t, 5, entry.Priority())
		assert.Equal(t, 45, entry.EstimatedLoadingMinutes())
		assert.Nil(t, entry.StartLoadingTime())
		assert.Nil(t, entry.FinishLoadingTime())
	})

	t.Run("should default the loading estimate", func(t *testing.T) {
		entry, err := queue.NewQueueEntry(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), 0, 0, time.Now())

		require.NoError(t, err)
		assert.Equal(t, queue.DefaultEstimatedLoadingMinutes, entry.EstimatedLoadingMinutes())
	})

	t.Run("should fail with negative priority", func(t *testing.T) {
		_, err := queue.NewQueueEntry(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), -1, 45, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with invalid ids", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := queue.NewQueueEntry(invalidID, kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), 0, 45, time.Now())

		require.Error(t, err)
	})
}

func TestQueueEntryWorkflow(t *testing.T) {
	started := time.Date(2025, 3, 14, 9, 15, 0, 0, time.UTC)
	finished := started.Add(40 * time.Minute)

	t.Run("should walk waiting to completed with timestamps", func(t *testing.T) {
		entry := mustEntry(t, 0)

		require.NoError(t, entry.StartLoading(started))
		assert.Equal(t, queue.StatusLoading, entry.Status())
		require.NotNil(t, entry.StartLoadingTime())
		assert.Equal(t, started, *entry.StartLoadingTime())

		require.NoError(t, entry.FinishLoading(finished))
		assert.Equal(t, queue.StatusCompleted, entry.Status())
		require.NotNil(t, entry.FinishLoadingTime())
		assert.Equal(t, finished, *entry.FinishLoadingTime())
	})

	t.Run("should reject starting twice", func(t *testing.T) {
		entry := mustEntry(t, 0)
		require.NoError(t, entry.StartLoading(started))

		err := entry.StartLoading(started)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject finishing while waiting", func(t *testing.T) {
		entry := mustEntry(t, 0)

		err := entry.FinishLoading(finished)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should cancel from waiting or loading", func(t *testing.T) {
		waiting := mustEntry(t, 0)
		require.NoError(t, waiting.Cancel())
		assert.Equal(t, queue.StatusCancelled, waiting.Status())

		loading := mustEntry(t, 0)
		require.NoError(t, loading.StartLoading(started))
		require.NoError(t, loading.Cancel())
		assert.Equal(t, queue.StatusCancelled, loading.Status())
	})

	t.Run("should reject cancelling a terminal entry", func(t *testing.T) {
		entry := mustEntry(t, 0)
		require.NoError(t, entry.StartLoading(started))
		require.NoError(t, entry.FinishLoading(finished))

		err := entry.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reprioritize in any state", func(t *testing.T) {
		entry := mustEntry(t, 0)
		require.NoError(t, entry.StartLoading(started))
		require.NoError(t, entry.FinishLoading(finished))

		require.NoError(t, entry.Reprioritize(9))

		assert.Equal(t, 9, entry.Priority())
	})

	t.Run("should reject negative reprioritization", func(t *testing.T) {
		entry := mustEntry(t, 3)

		err := entry.Reprioritize(-2)

		require.Error(t, err)
		assert.Equal(t, 3, entry.Priority())
	})
}

func TestRestoreQueueEntry(t *testing.T) {
	t.Run("should restore persisted state verbatim", func(t *testing.T) {
		arrived := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
		started := arrived.Add(10 * time.Minute)

		entry, err := queue.RestoreQueueEntry(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), queue.StatusLoading, 7,
			arrived, &started, nil, 30)

		require.NoError(t, err)
		assert.Equal(t, queue.StatusLoading, entry.Status())
		assert.Equal(t, 7, entry.Priority())
		assert.Equal(t, started, *entry.StartLoadingTime())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := queue.RestoreQueueEntry(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), queue.Status(42), 0,
			time.Now(), nil, nil, 30)

		require.Error(t, err)
	})
}

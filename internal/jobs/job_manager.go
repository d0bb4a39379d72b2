package jobs

import (
	"fmt"
	"log/slog"

	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/commands"
	"github.com/young8Programmer/NexusLogistics/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dockLoadingJob *DockLoadingJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory ports.UnitOfWorkFactory,
	startLoadingHandler commands.StartLoadingCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dockLoadingJob: NewDockLoadingJob(uowFactory, startLoadingHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dockLoadingJob.Start(); err != nil {
		return fmt.Errorf("failed to start dock loading job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dockLoadingJob.Stop()
}

package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/commands"
	"github.com/young8Programmer/NexusLogistics/internal/core/ports"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DockLoadingJob automates dock admission. Every tick it scans the active
// warehouses and, wherever the single dock is idle, admits the next waiting
// queue entry through the same command the API uses.
type DockLoadingJob struct {
	uowFactory ports.UnitOfWorkFactory
	handler    commands.StartLoadingCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDockLoadingJob creates a job that admits waiting entries to idle docks.
func NewDockLoadingJob(
	uowFactory ports.UnitOfWorkFactory,
	handler commands.StartLoadingCommandHandler,
	logger *slog.Logger,
) *DockLoadingJob {
	return &DockLoadingJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "dock_loading_job"),
	}
}

// Start begins the dock loading job, ticking every ten seconds.
func (j *DockLoadingJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		if err := j.admitIdleDocks(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Dock loading job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dock loading job started (running every ten seconds)")
	return nil
}

// Stop stops the dock loading job.
func (j *DockLoadingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dock loading job stopped")
}

func (j *DockLoadingJob) admitIdleDocks(ctx context.Context) error {
	uow := j.uowFactory.Create()

	warehouses, err := uow.WarehouseRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	queueRepo := uow.QueueRepository()
	for _, wh := range warehouses {
		loading, loadErr := queueRepo.GetLoadingByWarehouse(ctx, wh.ID())
		if loadErr != nil {
			return loadErr
		}
		if len(loading) > 0 {
			continue
		}

		next, nextErr := queueRepo.GetNextWaiting(ctx, wh.ID())
		if nextErr != nil {
			if errors.Is(nextErr, errs.ErrObjectNotFound) {
				continue
			}
			return nextErr
		}

		cmd, cmdErr := commands.NewStartLoadingCommand(next.ID())
		if cmdErr != nil {
			return cmdErr
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// Another admission may have raced this tick; the next tick
			// will retry, so an invalid state is not worth aborting over.
			if errors.Is(handleErr, errs.ErrInvalidState) {
				continue
			}
			return handleErr
		}

		j.logger.InfoContext(ctx, "Admitted queue entry to dock",
			"warehouse_id", wh.ID().String(), "entry_id", next.ID().String())
	}

	return nil
}

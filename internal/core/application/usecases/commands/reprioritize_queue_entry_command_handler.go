package commands

import (
	"context"
)

// ReprioritizeQueueEntryCommandHandler overwrites a queue entry's priority.
type ReprioritizeQueueEntryCommandHandler struct {
	uowFactory QueueUoWFactory
}

// NewReprioritizeQueueEntryCommandHandler creates a handler for priority changes.
func NewReprioritizeQueueEntryCommandHandler(uowFactory QueueUoWFactory) ReprioritizeQueueEntryCommandHandler {
	return ReprioritizeQueueEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the priority change.
func (h *ReprioritizeQueueEntryCommandHandler) Handle(ctx context.Context, cmd ReprioritizeQueueEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	queueRepo := uow.QueueRepository()
	entry, err := queueRepo.Get(ctx, cmd.EntryID())
	if err != nil {
		return err
	}

	if err = entry.Reprioritize(cmd.Priority()); err != nil {
		return err
	}
	if err = queueRepo.Update(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var ErrCancelQueueEntryCommandIsNotConstructed = errors.New(
	"CancelQueueEntryCommand must be created via NewCancelQueueEntryCommand constructor",
)

// CancelQueueEntryCommand represents a request to take an entry out of the
// dock queue.
type CancelQueueEntryCommand struct { //nolint:recvcheck //using for validation
	entryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelQueueEntryCommand creates a command to cancel a queue entry.
func NewCancelQueueEntryCommand(entryID kernel.UUID) (CancelQueueEntryCommand, error) {
	command := CancelQueueEntryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setEntryID(entryID); err != nil {
		return CancelQueueEntryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelQueueEntryCommand) Validate() error {
	return c.guard.Validate(ErrCancelQueueEntryCommandIsNotConstructed)
}

// EntryID returns the queue entry being cancelled.
func (c CancelQueueEntryCommand) EntryID() kernel.UUID {
	return c.entryID
}

func (c *CancelQueueEntryCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}

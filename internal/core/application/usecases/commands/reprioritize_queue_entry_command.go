package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var ErrReprioritizeQueueEntryCommandIsNotConstructed = errors.New(
	"ReprioritizeQueueEntryCommand must be created via NewReprioritizeQueueEntryCommand constructor",
)

// ReprioritizeQueueEntryCommand represents a request to overwrite a queue
// entry's priority. No state restriction applies.
type ReprioritizeQueueEntryCommand struct { //nolint:recvcheck //using for validation
	entryID  kernel.UUID
	priority int

	guard guard.ConstructorGuard
}

// NewReprioritizeQueueEntryCommand creates a command to change an entry's priority.
func NewReprioritizeQueueEntryCommand(entryID kernel.UUID, priority int) (ReprioritizeQueueEntryCommand, error) {
	command := ReprioritizeQueueEntryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEntryID(entryID),
		command.setPriority(priority),
	); err != nil {
		return ReprioritizeQueueEntryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReprioritizeQueueEntryCommand) Validate() error {
	return c.guard.Validate(ErrReprioritizeQueueEntryCommandIsNotConstructed)
}

// EntryID returns the queue entry being reprioritized.
func (c ReprioritizeQueueEntryCommand) EntryID() kernel.UUID {
	return c.entryID
}

// Priority returns the new priority.
func (c ReprioritizeQueueEntryCommand) Priority() int {
	return c.priority
}

func (c *ReprioritizeQueueEntryCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}

func (c *ReprioritizeQueueEntryCommand) setPriority(priority int) error {
	if priority < 0 {
		return ErrPriorityIsInvalid
	}

	c.priority = priority
	return nil
}

package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var ErrFinishLoadingCommandIsNotConstructed = errors.New(
	"FinishLoadingCommand must be created via NewFinishLoadingCommand constructor",
)

// FinishLoadingCommand represents a request to release the dock: loading of
// a queue entry is done and the truck departs.
type FinishLoadingCommand struct { //nolint:recvcheck //using for validation
	entryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinishLoadingCommand creates a command to finish loading an entry.
func NewFinishLoadingCommand(entryID kernel.UUID) (FinishLoadingCommand, error) {
	command := FinishLoadingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setEntryID(entryID); err != nil {
		return FinishLoadingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishLoadingCommand) Validate() error {
	return c.guard.Validate(ErrFinishLoadingCommandIsNotConstructed)
}

// EntryID returns the queue entry being completed.
func (c FinishLoadingCommand) EntryID() kernel.UUID {
	return c.entryID
}

func (c *FinishLoadingCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}

package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var ErrStartLoadingCommandIsNotConstructed = errors.New(
	"StartLoadingCommand must be created via NewStartLoadingCommand constructor",
)

// StartLoadingCommand represents a request to admit a waiting queue entry to
// the dock.
type StartLoadingCommand struct { //nolint:recvcheck //using for validation
	entryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartLoadingCommand creates a command to start loading an entry.
func NewStartLoadingCommand(entryID kernel.UUID) (StartLoadingCommand, error) {
	command := StartLoadingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setEntryID(entryID); err != nil {
		return StartLoadingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartLoadingCommand) Validate() error {
	return c.guard.Validate(ErrStartLoadingCommandIsNotConstructed)
}

// EntryID returns the queue entry being admitted.
func (c StartLoadingCommand) EntryID() kernel.UUID {
	return c.entryID
}

func (c *StartLoadingCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}

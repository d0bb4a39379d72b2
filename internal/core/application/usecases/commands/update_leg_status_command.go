package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var ErrUpdateLegStatusCommandIsNotConstructed = errors.New(
	"UpdateLegStatusCommand must be created via NewUpdateLegStatusCommand constructor",
)

// UpdateLegStatusCommand represents a request to advance one route leg of a
// multi-leg shipment, identified by its 1-based sequence.
type UpdateLegStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	sequence   int
	status     shipment.LegStatus

	guard guard.ConstructorGuard
}

// NewUpdateLegStatusCommand creates a command for a leg transition.
func NewUpdateLegStatusCommand(
	shipmentID kernel.UUID,
	sequence int,
	status shipment.LegStatus,
) (UpdateLegStatusCommand, error) {
	command := UpdateLegStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setSequence(sequence),
		command.setStatus(status),
	); err != nil {
		return UpdateLegStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLegStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLegStatusCommandIsNotConstructed)
}

// ShipmentID returns the shipment owning the leg.
func (c UpdateLegStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Sequence returns the 1-based leg ordinal.
func (c UpdateLegStatusCommand) Sequence() int {
	return c.sequence
}

// Status returns the target leg state.
func (c UpdateLegStatusCommand) Status() shipment.LegStatus {
	return c.status
}

func (c *UpdateLegStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateLegStatusCommand) setSequence(sequence int) error {
	if sequence <= 0 {
		return ErrLegSequenceInvalid
	}

	c.sequence = sequence
	return nil
}

func (c *UpdateLegStatusCommand) setStatus(status shipment.LegStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

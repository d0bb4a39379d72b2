package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand represents a request to move a shipment to a
// new lifecycle state. With force set, the transition table is bypassed;
// per-state timestamps are still stamped once either way.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	status     shipment.Status
	force      bool

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command for a status transition.
func NewUpdateShipmentStatusCommand(
	shipmentID kernel.UUID,
	status shipment.Status,
	force bool,
) (UpdateShipmentStatusCommand, error) {
	command := UpdateShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setStatus(status),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	command.force = force
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the shipment to transition.
func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Status returns the target lifecycle state.
func (c UpdateShipmentStatusCommand) Status() shipment.Status {
	return c.status
}

// Force reports whether the transition table is bypassed.
func (c UpdateShipmentStatusCommand) Force() bool {
	return c.force
}

func (c *UpdateShipmentStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentStatusCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

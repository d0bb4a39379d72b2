package commands

import (
	"errors"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrItemsAreRequired   = errors.New("at least one item is required")
	ErrLegSequenceInvalid = errors.New("leg sequence must be greater than 0")
)

// ShipmentItemInput is one requested order line. The unit price is not taken
// from the caller; it is snapshotted from the product at creation time.
type ShipmentItemInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// ShipmentLegInput is one requested route leg for a multi-leg shipment.
type ShipmentLegInput struct {
	Sequence           int
	FromWarehouseID    kernel.UUID
	ToWarehouseID      kernel.UUID
	ScheduledDeparture *time.Time
	ScheduledArrival   *time.Time
	Distance           *decimal.Decimal
}

// CreateShipmentCommand represents a request to create a shipment with its
// order lines and optional route legs, reserving origin stock per line.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID             kernel.UUID
	originWarehouseID      kernel.UUID
	destinationWarehouseID *kernel.UUID
	driverID               *kernel.UUID

	items []ShipmentItemInput
	legs  []ShipmentLegInput

	destinationAddress string
	recipientName      string
	recipientPhone     string

	scheduledPickupDate   *time.Time
	scheduledDeliveryDate *time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Requires a valid shipment id and origin warehouse, at least one item with a
// positive quantity, and positive leg sequences.
func NewCreateShipmentCommand(
	shipmentID, originWarehouseID kernel.UUID,
	destinationWarehouseID, driverID *kernel.UUID,
	items []ShipmentItemInput,
	legs []ShipmentLegInput,
) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setOriginWarehouseID(originWarehouseID),
		command.setDestinationWarehouseID(destinationWarehouseID),
		command.setDriverID(driverID),
		command.setItems(items),
		command.setLegs(legs),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// SetRecipient attaches the optional delivery address and contact details.
func (c *CreateShipmentCommand) SetRecipient(address, name, phone string) {
	c.destinationAddress = address
	c.recipientName = name
	c.recipientPhone = phone
}

// SetSchedule attaches the optional planned pickup and delivery dates.
func (c *CreateShipmentCommand) SetSchedule(pickup, delivery *time.Time) {
	c.scheduledPickupDate = pickup
	c.scheduledDeliveryDate = delivery
}

// ShipmentID returns the unique identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OriginWarehouseID returns the warehouse stock is reserved at.
func (c CreateShipmentCommand) OriginWarehouseID() kernel.UUID {
	return c.originWarehouseID
}

// DestinationWarehouseID returns the optional final warehouse.
func (c CreateShipmentCommand) DestinationWarehouseID() *kernel.UUID {
	return c.destinationWarehouseID
}

// DriverID returns the optional driver assigned at creation.
func (c CreateShipmentCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// Items returns the requested order lines.
func (c CreateShipmentCommand) Items() []ShipmentItemInput {
	return c.items
}

// Legs returns the requested route legs, empty for single-leg shipments.
func (c CreateShipmentCommand) Legs() []ShipmentLegInput {
	return c.legs
}

// DestinationAddress returns the optional delivery address.
func (c CreateShipmentCommand) DestinationAddress() string {
	return c.destinationAddress
}

// RecipientName returns the optional recipient name.
func (c CreateShipmentCommand) RecipientName() string {
	return c.recipientName
}

// RecipientPhone returns the optional recipient phone.
func (c CreateShipmentCommand) RecipientPhone() string {
	return c.recipientPhone
}

// ScheduledPickupDate returns the optional planned pickup date.
func (c CreateShipmentCommand) ScheduledPickupDate() *time.Time {
	return c.scheduledPickupDate
}

// ScheduledDeliveryDate returns the optional planned delivery date.
func (c CreateShipmentCommand) ScheduledDeliveryDate() *time.Time {
	return c.scheduledDeliveryDate
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOriginWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.originWarehouseID = warehouseID
	return nil
}

func (c *CreateShipmentCommand) setDestinationWarehouseID(warehouseID *kernel.UUID) error {
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return err
		}
	}

	c.destinationWarehouseID = warehouseID
	return nil
}

func (c *CreateShipmentCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	c.driverID = driverID
	return nil
}

func (c *CreateShipmentCommand) setItems(items []ShipmentItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.items = items
	return nil
}

func (c *CreateShipmentCommand) setLegs(legs []ShipmentLegInput) error {
	for _, leg := range legs {
		if err := errors.Join(leg.FromWarehouseID.Validate(), leg.ToWarehouseID.Validate()); err != nil {
			return err
		}
		if leg.Sequence <= 0 {
			return ErrLegSequenceInvalid
		}
	}

	c.legs = legs
	return nil
}

package commands

import (
	"errors"

	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/guard"
)

var (
	ErrCreateWarehouseCommandIsNotConstructed = errors.New(
		"CreateWarehouseCommand must be created via NewCreateWarehouseCommand constructor",
	)
	ErrWarehouseCodeIsRequired = errors.New("warehouse code is required")
	ErrWarehouseNameIsRequired = errors.New("warehouse name is required")
)

// CreateWarehouseCommand represents a request to register a new warehouse.
type CreateWarehouseCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID
	code        string
	name        string
	address     string
	location    string
	capacity    int

	guard guard.ConstructorGuard
}

// NewCreateWarehouseCommand creates a command to register a warehouse.
func NewCreateWarehouseCommand(
	warehouseID kernel.UUID,
	code, name, address, location string,
	capacity int,
) (CreateWarehouseCommand, error) {
	command := CreateWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWarehouseID(warehouseID),
		command.setCode(code),
		command.setName(name),
	); err != nil {
		return CreateWarehouseCommand{}, err
	}

	command.address = address
	command.location = location
	command.capacity = capacity
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseCommandIsNotConstructed)
}

// WarehouseID returns the unique identifier for the new warehouse.
func (c CreateWarehouseCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// Code returns the unique business code.
func (c CreateWarehouseCommand) Code() string {
	return c.code
}

// Name returns the display name.
func (c CreateWarehouseCommand) Name() string {
	return c.name
}

// Address returns the street address.
func (c CreateWarehouseCommand) Address() string {
	return c.address
}

// Location returns the city or region label.
func (c CreateWarehouseCommand) Location() string {
	return c.location
}

// Capacity returns the storage capacity.
func (c CreateWarehouseCommand) Capacity() int {
	return c.capacity
}

func (c *CreateWarehouseCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *CreateWarehouseCommand) setCode(code string) error {
	if code == "" {
		return ErrWarehouseCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *CreateWarehouseCommand) setName(name string) error {
	if name == "" {
		return ErrWarehouseNameIsRequired
	}

	c.name = name
	return nil
}

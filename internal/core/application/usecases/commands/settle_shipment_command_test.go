package commands_test

import (
	"testing"

	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/commands"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettleShipmentCommand_Success(t *testing.T) {
	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewSettleShipmentCommand(shipmentID,
		decimal.NewFromFloat(45.30), decimal.NewFromFloat(12.00))

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, shipmentID, cmd.ShipmentID())
	assert.True(t, cmd.FuelCost().Equal(decimal.NewFromFloat(45.30)))
	assert.True(t, cmd.OtherExpenses().Equal(decimal.NewFromFloat(12.00)))
}

func TestNewSettleShipmentCommand_ZeroExpensesAllowed(t *testing.T) {
	cmd, err := commands.NewSettleShipmentCommand(kernel.NewUUID(), decimal.Zero, decimal.Zero)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
}

func TestNewSettleShipmentCommand_NegativeExpense(t *testing.T) {
	_, err := commands.NewSettleShipmentCommand(kernel.NewUUID(),
		decimal.NewFromInt(-1), decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrExpenseIsNegative)

	_, err = commands.NewSettleShipmentCommand(kernel.NewUUID(),
		decimal.Zero, decimal.NewFromInt(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrExpenseIsNegative)
}

func TestNewSettleShipmentCommand_EmptyShipmentID(t *testing.T) {
	_, err := commands.NewSettleShipmentCommand(kernel.UUID{}, decimal.Zero, decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestSettleShipmentCommand_Validate_Unconstructed(t *testing.T) {
	cmd := commands.SettleShipmentCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrSettleShipmentCommandIsNotConstructed)
}

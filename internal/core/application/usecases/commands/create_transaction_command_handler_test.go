package commands_test

import (
	"strings"
	"testing"

	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/commands"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/ledger"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTransactionCommandHandler_Handle_Bonus(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	amount := decimal.NewFromFloat(75.50)
	cmd, err := commands.NewCreateTransactionCommand(driverID, nil, ledger.TypePayment, amount, "Weekend bonus")
	require.NoError(t, err)

	testDriver := newTestDriver(t, driverID)

	driverRepo := new(MockDriverRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("Add", ctx, mock.AnythingOfType("*ledger.Transaction")).Return(nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTransactionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, testDriver.Balance().Equal(amount))

	txn := ledgerRepo.Calls[0].Arguments[1].(*ledger.Transaction)
	assert.Equal(t, ledger.TypePayment, txn.Type())
	assert.Equal(t, "Weekend bonus", txn.Description())
	assert.True(t, txn.BalanceBefore().Equal(decimal.Zero))
	assert.True(t, txn.BalanceAfter().Equal(amount))
	assert.True(t, strings.HasPrefix(txn.Reference(), "TXN-"))
	assert.Nil(t, txn.ShipmentID())

	ledgerRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateTransactionCommandHandler_Handle_ExpenseBlockedByBalance(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateTransactionCommand(driverID, nil, ledger.TypeExpense,
		decimal.NewFromInt(-100), "Toll charge")
	require.NoError(t, err)

	testDriver := newTestDriver(t, driverID) // zero balance

	driverRepo := new(MockDriverRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTransactionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInsufficientBalance)
	assert.True(t, testDriver.Balance().Equal(decimal.Zero))
	driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCreateTransactionCommandHandler_Handle_RefundMayGoNegative(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateTransactionCommand(driverID, nil, ledger.TypeRefund,
		decimal.NewFromInt(-40), "Overpayment clawback")
	require.NoError(t, err)

	testDriver := newTestDriver(t, driverID)

	driverRepo := new(MockDriverRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("Add", ctx, mock.AnythingOfType("*ledger.Transaction")).Return(nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTransactionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, testDriver.Balance().Equal(decimal.NewFromInt(-40)))
}

func TestCreateTransactionCommandHandler_Handle_UnknownShipment(t *testing.T) {
	ctx := t.Context()

	driverID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateTransactionCommand(driverID, &shipmentID, ledger.TypePayment,
		decimal.NewFromInt(10), "")
	require.NoError(t, err)

	testDriver := newTestDriver(t, driverID)

	driverRepo := new(MockDriverRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTransactionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateTransactionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateTransactionCommand{} // not constructed properly

	factory := new(MockLedgerUoWFactory)
	handler := commands.NewCreateTransactionCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateTransactionCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

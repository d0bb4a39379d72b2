package commands_test

import (
	"testing"

	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/commands"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/stock"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func unloadTestShipment(t *testing.T, shipmentID, originID, productID kernel.UUID, quantity int) *shipment.Shipment {
	t.Helper()
	item, err := shipment.NewShipmentItem(kernel.NewUUID(), productID, quantity, decimal.NewFromInt(10))
	require.NoError(t, err)
	shp, err := shipment.NewShipment(shipmentID, kernel.NewTrackingNumber(), originID, nil,
		[]*shipment.ShipmentItem{item}, nil)
	require.NoError(t, err)
	return shp
}

func TestUnloadShipmentCommandHandler_Handle_MovesStock(t *testing.T) {
	ctx := t.Context()

	shipmentID := kernel.NewUUID()
	originID := kernel.NewUUID()
	destinationID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewUnloadShipmentCommand(shipmentID, destinationID)
	require.NoError(t, err)

	shp := unloadTestShipment(t, shipmentID, originID, productID, 8)
	origin := newTestStockRecord(t, productID, originID, 20, 8)
	destination := newTestStockRecord(t, productID, destinationID, 5, 0)

	shipmentRepo := new(MockShipmentRepository)
	warehouseRepo := new(MockWarehouseRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).Return(shp, nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", ctx, destinationID).Return(newTestWarehouse(t, destinationID), nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("GetByProductAndWarehouse", ctx, productID, originID).Return(origin, nil).Once(),
		stockRepo.On("Update", ctx, origin).Return(nil).Once(),
		stockRepo.On("GetByProductAndWarehouse", ctx, productID, destinationID).Return(destination, nil).Once(),
		stockRepo.On("Update", ctx, destination).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnloadShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 12, origin.Quantity())
	assert.Equal(t, 0, origin.Reserved())
	assert.Equal(t, 13, destination.Quantity())
	stockRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUnloadShipmentCommandHandler_Handle_CreatesDestinationRecord(t *testing.T) {
	ctx := t.Context()

	shipmentID := kernel.NewUUID()
	originID := kernel.NewUUID()
	destinationID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewUnloadShipmentCommand(shipmentID, destinationID)
	require.NoError(t, err)

	shp := unloadTestShipment(t, shipmentID, originID, productID, 3)
	origin := newTestStockRecord(t, productID, originID, 10, 3)

	shipmentRepo := new(MockShipmentRepository)
	warehouseRepo := new(MockWarehouseRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).Return(shp, nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", ctx, destinationID).Return(newTestWarehouse(t, destinationID), nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("GetByProductAndWarehouse", ctx, productID, originID).Return(origin, nil).Once(),
		stockRepo.On("Update", ctx, origin).Return(nil).Once(),
		stockRepo.On("GetByProductAndWarehouse", ctx, productID, destinationID).
			Return(nil, errs.ErrObjectNotFound).
			Once(),
		stockRepo.On("Add", ctx, mock.AnythingOfType("*stock.StockRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnloadShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := stockRepo.Calls[3].Arguments[1].(*stock.StockRecord)
	assert.Equal(t, productID, added.ProductID())
	assert.Equal(t, destinationID, added.WarehouseID())
	assert.Equal(t, 3, added.Quantity())
}

func TestUnloadShipmentCommandHandler_Handle_SkipsMissingOriginRecord(t *testing.T) {
	ctx := t.Context()

	shipmentID := kernel.NewUUID()
	originID := kernel.NewUUID()
	destinationID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewUnloadShipmentCommand(shipmentID, destinationID)
	require.NoError(t, err)

	shp := unloadTestShipment(t, shipmentID, originID, productID, 5)
	destination := newTestStockRecord(t, productID, destinationID, 2, 0)

	shipmentRepo := new(MockShipmentRepository)
	warehouseRepo := new(MockWarehouseRepository)
	stockRepo := new(MockStockRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).Return(shp, nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", ctx, destinationID).Return(newTestWarehouse(t, destinationID), nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("GetByProductAndWarehouse", ctx, productID, originID).
			Return(nil, errs.ErrObjectNotFound).
			Once(),
		stockRepo.On("GetByProductAndWarehouse", ctx, productID, destinationID).Return(destination, nil).Once(),
		stockRepo.On("Update", ctx, destination).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnloadShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 7, destination.Quantity())
}

func TestUnloadShipmentCommandHandler_Handle_UnknownWarehouse(t *testing.T) {
	ctx := t.Context()

	shipmentID := kernel.NewUUID()
	destinationID := kernel.NewUUID()
	cmd, err := commands.NewUnloadShipmentCommand(shipmentID, destinationID)
	require.NoError(t, err)

	shp := unloadTestShipment(t, shipmentID, kernel.NewUUID(), kernel.NewUUID(), 1)

	shipmentRepo := new(MockShipmentRepository)
	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, shipmentID).Return(shp, nil).Once(),
		uow.On("WarehouseRepository").Return(warehouseRepo).Once(),
		warehouseRepo.On("Get", ctx, destinationID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnloadShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

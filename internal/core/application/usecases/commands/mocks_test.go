package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/commands"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/driver"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/ledger"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/product"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/queue"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/stock"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/warehouse"
	"github.com/young8Programmer/NexusLogistics/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared mocks for the repository ports and unit of work composites. Every
// handler test wires the subset it needs and pins the call order with
// mock.InOrder.

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) Add(ctx context.Context, r *stock.StockRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockStockRepository) Update(ctx context.Context, r *stock.StockRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockStockRepository) Get(ctx context.Context, id kernel.UUID) (*stock.StockRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.StockRecord), args.Error(1)
}

func (m *MockStockRepository) GetByProductAndWarehouse(
	ctx context.Context, productID, warehouseID kernel.UUID,
) (*stock.StockRecord, error) {
	args := m.Called(ctx, productID, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.StockRecord), args.Error(1)
}

func (m *MockStockRepository) GetAllByWarehouse(
	ctx context.Context, warehouseID kernel.UUID,
) ([]*stock.StockRecord, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stock.StockRecord), args.Error(1)
}

func (m *MockStockRepository) GetAllByProduct(
	ctx context.Context, productID kernel.UUID,
) ([]*stock.StockRecord, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stock.StockRecord), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByTrackingNumber(
	ctx context.Context, trackingNumber string,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllByStatus(
	ctx context.Context, status shipment.Status,
) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllByDriver(
	ctx context.Context, driverID kernel.UUID,
) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockQueueRepository struct{ mock.Mock }

func (m *MockQueueRepository) Add(ctx context.Context, e *queue.QueueEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockQueueRepository) Update(ctx context.Context, e *queue.QueueEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockQueueRepository) Get(ctx context.Context, id kernel.UUID) (*queue.QueueEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queue.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) GetNextWaiting(
	ctx context.Context, warehouseID kernel.UUID,
) (*queue.QueueEntry, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queue.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) GetWaitingByShipment(
	ctx context.Context, warehouseID, shipmentID kernel.UUID,
) (*queue.QueueEntry, error) {
	args := m.Called(ctx, warehouseID, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queue.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) GetAllByWarehouse(
	ctx context.Context, warehouseID kernel.UUID, status *queue.Status,
) ([]*queue.QueueEntry, error) {
	args := m.Called(ctx, warehouseID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queue.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) GetLoadingByWarehouse(
	ctx context.Context, warehouseID kernel.UUID,
) ([]*queue.QueueEntry, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queue.QueueEntry), args.Error(1)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Add(ctx context.Context, t *ledger.Transaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockLedgerRepository) Get(ctx context.Context, id kernel.UUID) (*ledger.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) GetAllByDriver(
	ctx context.Context, driverID kernel.UUID, transactionType *ledger.TransactionType, limit int,
) ([]*ledger.Transaction, error) {
	args := m.Called(ctx, driverID, transactionType, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) GetAllByShipment(
	ctx context.Context, shipmentID kernel.UUID,
) ([]*ledger.Transaction, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.Transaction), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetByLicenseNumber(
	ctx context.Context, licenseNumber string,
) (*driver.Driver, error) {
	args := m.Called(ctx, licenseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllByStatus(
	ctx context.Context, status driver.Status,
) ([]*driver.Driver, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, w *warehouse.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) GetByCode(ctx context.Context, code string) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*warehouse.Warehouse), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySKU(ctx context.Context, sku string) (*product.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllActive(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

// MockUnitOfWork implements every UoW composite; each test registers only
// the repository getters its handler touches.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

func (m *MockUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUnitOfWork) QueueRepository() ports.QueueRepository {
	args := m.Called()
	return args.Get(0).(ports.QueueRepository)
}

func (m *MockUnitOfWork) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

func (m *MockUnitOfWork) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

func (m *MockUnitOfWork) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockShipmentStatusUoWFactory struct{ mock.Mock }

func (m *MockShipmentStatusUoWFactory) Create() commands.ShipmentStatusUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentStatusUoW)
}

type MockAssignDriverUoWFactory struct{ mock.Mock }

func (m *MockAssignDriverUoWFactory) Create() commands.AssignDriverUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignDriverUoW)
}

type MockQueueUoWFactory struct{ mock.Mock }

func (m *MockQueueUoWFactory) Create() commands.QueueUoW {
	args := m.Called()
	return args.Get(0).(commands.QueueUoW)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockWarehouseUoWFactory struct{ mock.Mock }

func (m *MockWarehouseUoWFactory) Create() commands.WarehouseUoW {
	args := m.Called()
	return args.Get(0).(commands.WarehouseUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

// Fixtures.

func newTestWarehouse(t *testing.T, id kernel.UUID) *warehouse.Warehouse {
	t.Helper()
	wh, err := warehouse.NewWarehouse(id, "WH-TEST", "Test Warehouse", "1 Dock Rd", "Riga")
	require.NoError(t, err)
	return wh
}

func newTestProduct(t *testing.T, id kernel.UUID, unitPrice decimal.Decimal) *product.Product {
	t.Helper()
	prd, err := product.NewProduct(id, "SKU-TEST", "Test Product", unitPrice)
	require.NoError(t, err)
	return prd
}

func newTestDriver(t *testing.T, id kernel.UUID) *driver.Driver {
	t.Helper()
	drv, err := driver.NewDriver(id, "Janis", "Ozols", "LV-123456", "+371 20000000")
	require.NoError(t, err)
	return drv
}

func newTestStockRecord(t *testing.T, productID, warehouseID kernel.UUID, quantity, reserved int) *stock.StockRecord {
	t.Helper()
	record, err := stock.RestoreStockRecord(kernel.NewUUID(), productID, warehouseID, quantity, reserved)
	require.NoError(t, err)
	return record
}

func newTestShipment(t *testing.T, id, originID kernel.UUID, quantity int, unitPrice decimal.Decimal) *shipment.Shipment {
	t.Helper()
	item, err := shipment.NewShipmentItem(kernel.NewUUID(), kernel.NewUUID(), quantity, unitPrice)
	require.NoError(t, err)
	shp, err := shipment.NewShipment(id, kernel.NewTrackingNumber(), originID, nil,
		[]*shipment.ShipmentItem{item}, nil)
	require.NoError(t, err)
	return shp
}

func newDeliveredShipment(t *testing.T, id, originID, driverID kernel.UUID, quantity int, unitPrice decimal.Decimal) *shipment.Shipment {
	t.Helper()
	shp := newTestShipment(t, id, originID, quantity, unitPrice)
	require.NoError(t, shp.AssignDriver(driverID))
	now := time.Now().UTC()
	for _, status := range []shipment.Status{
		shipment.StatusQueued, shipment.StatusLoading,
		shipment.StatusInTransit, shipment.StatusDelivered,
	} {
		require.NoError(t, shp.ChangeStatus(status, now))
	}
	return shp
}

func newWaitingEntry(t *testing.T, entryID, warehouseID, shipmentID, driverID kernel.UUID) *queue.QueueEntry {
	t.Helper()
	entry, err := queue.NewQueueEntry(entryID, warehouseID, shipmentID, driverID, 0, 30, time.Now().UTC())
	require.NoError(t, err)
	return entry
}

package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/driverrepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/ledgerrepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/productrepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/queuerepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/shipmentrepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/stockrepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/warehouserepo"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/driver"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/ledger"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/stock"
	"github.com/young8Programmer/NexusLogistics/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and runs migrations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&stockrepo.StockRecordDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ShipmentItemDTO{},
		&shipmentrepo.ShipmentLegDTO{},
		&queuerepo.QueueEntryDTO{},
		&ledgerrepo.TransactionDTO{},
		&driverrepo.DriverDTO{},
		&warehouserepo.WarehouseDTO{},
		&productrepo.ProductDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE stock_records, shipment_items, shipment_legs,
		shipments, queue_entries, transactions, drivers, warehouses, products`).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory hands out isolated
// instances that each expose the full repository set.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.StockRepository())
	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow1.QueueRepository())
	suite.NotNil(uow1.LedgerRepository())
	suite.NotNil(uow1.DriverRepository())
	suite.NotNil(uow1.WarehouseRepository())
	suite.NotNil(uow1.ProductRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit, and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_CommitWithoutBegin verifies commit fails without a transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)

	err = uow.Rollback(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

// TestUnitOfWork_CommitPersistsAcrossRepositories verifies a driver payout
// and its ledger entry land atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testDriver := suite.createTestDriver()
	payment, err := ledger.NewTransaction(
		kernel.NewUUID(),
		testDriver.ID(),
		nil,
		ledger.TypePayment,
		decimal.NewFromInt(650),
		decimal.Zero,
		decimal.NewFromInt(650),
		"Delivery payment",
		kernel.NewTransactionReference(),
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DriverRepository().Add(ctx, testDriver))
	suite.Require().NoError(uow.LedgerRepository().Add(ctx, payment))
	suite.Require().NoError(uow.Commit(ctx))

	var driverCount, txnCount int64
	suite.Require().NoError(suite.db.Model(&driverrepo.DriverDTO{}).Count(&driverCount).Error)
	suite.Require().NoError(suite.db.Model(&ledgerrepo.TransactionDTO{}).Count(&txnCount).Error)
	suite.Equal(int64(1), driverCount)
	suite.Equal(int64(1), txnCount)
}

// TestUnitOfWork_RollbackDiscardsAllChanges verifies nothing leaks out of a
// rolled back transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	record, err := stock.NewStockRecord(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.StockRepository().Add(ctx, record))
	suite.Require().NoError(uow.DriverRepository().Add(ctx, suite.createTestDriver()))
	suite.Require().NoError(uow.Rollback(ctx))

	var stockCount, driverCount int64
	suite.Require().NoError(suite.db.Model(&stockrepo.StockRecordDTO{}).Count(&stockCount).Error)
	suite.Require().NoError(suite.db.Model(&driverrepo.DriverDTO{}).Count(&driverCount).Error)
	suite.Equal(int64(0), stockCount)
	suite.Equal(int64(0), driverCount)
}

// TestUnitOfWork_RepositoriesShareTransaction verifies a write is visible to
// a read through the same unit of work before commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoriesShareTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	record, err := stock.NewStockRecord(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.StockRepository().Add(ctx, record))

	inside, err := uow.StockRepository().Get(ctx, record.ID())
	suite.Require().NoError(err)
	suite.Equal(record.ID(), inside.ID())

	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestDriver() *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), "Janis", "Ozols", kernel.NewUUID().String(), "+371 20000000")
	suite.Require().NoError(err)
	return d
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

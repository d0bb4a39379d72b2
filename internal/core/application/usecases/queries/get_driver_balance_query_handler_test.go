package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/driverrepo"
	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/ledgerrepo"
	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/queries"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/driver"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/ledger"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDriverBalanceQueryHandlerTestSuite struct {
	suite.Suite
	container           *postgres.PostgresContainer
	db                  *gorm.DB
	balanceHandler      queries.GetDriverBalanceQueryHandler
	transactionsHandler queries.GetDriverTransactionsQueryHandler
}

func (suite *GetDriverBalanceQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&driverrepo.DriverDTO{}, &ledgerrepo.TransactionDTO{})
	suite.Require().NoError(err)

	suite.balanceHandler = queries.NewGetDriverBalanceQueryHandler(db)
	suite.transactionsHandler = queries.NewGetDriverTransactionsQueryHandler(db)
}

func (suite *GetDriverBalanceQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDriverBalanceQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE drivers, transactions CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetDriverBalanceQueryHandlerTestSuite) TestBalance_SumsEarningsAndExpenses() {
	ctx := context.Background()
	testDriver := suite.saveTestDriver(decimal.NewFromInt(590))

	// 650 payment followed by a 60 fuel expense.
	suite.saveTransaction(testDriver.ID(), ledger.TypePayment, decimal.NewFromInt(650),
		decimal.Zero, decimal.NewFromInt(650), time.Now().UTC().Add(-time.Hour))
	suite.saveTransaction(testDriver.ID(), ledger.TypeExpense, decimal.NewFromInt(-60),
		decimal.NewFromInt(650), decimal.NewFromInt(590), time.Now().UTC())

	query, err := queries.NewGetDriverBalanceQuery(testDriver.ID())
	suite.Require().NoError(err)

	result, err := suite.balanceHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(testDriver.ID(), result.DriverID)
	suite.True(decimal.NewFromInt(590).Equal(result.Balance), "balance %s", result.Balance)
	suite.True(decimal.NewFromInt(650).Equal(result.TotalEarnings), "earnings %s", result.TotalEarnings)
	suite.True(decimal.NewFromInt(60).Equal(result.TotalExpenses), "expenses %s", result.TotalExpenses)
}

func (suite *GetDriverBalanceQueryHandlerTestSuite) TestBalance_AdjustmentsAndPendingExcluded() {
	ctx := context.Background()
	testDriver := suite.saveTestDriver(decimal.NewFromInt(615))
	base := time.Now().UTC().Truncate(time.Second)

	suite.saveTransaction(testDriver.ID(), ledger.TypePayment, decimal.NewFromInt(650),
		decimal.Zero, decimal.NewFromInt(650), base.Add(-4*time.Hour))
	suite.saveTransaction(testDriver.ID(), ledger.TypeExpense, decimal.NewFromInt(-60),
		decimal.NewFromInt(650), decimal.NewFromInt(590), base.Add(-3*time.Hour))

	// Manual corrections move the balance but count as neither earnings nor
	// expenses.
	suite.saveTransaction(testDriver.ID(), ledger.TypeAdjustment, decimal.NewFromInt(50),
		decimal.NewFromInt(590), decimal.NewFromInt(640), base.Add(-2*time.Hour))
	suite.saveTransaction(testDriver.ID(), ledger.TypeAdjustment, decimal.NewFromInt(-25),
		decimal.NewFromInt(640), decimal.NewFromInt(615), base.Add(-time.Hour))

	// A pending payment is recorded but not yet effective.
	suite.savePendingTransaction(testDriver.ID(), ledger.TypePayment, decimal.NewFromInt(100),
		decimal.NewFromInt(615), decimal.NewFromInt(715), base)

	query, err := queries.NewGetDriverBalanceQuery(testDriver.ID())
	suite.Require().NoError(err)

	result, err := suite.balanceHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(615).Equal(result.Balance), "balance %s", result.Balance)
	suite.True(decimal.NewFromInt(650).Equal(result.TotalEarnings), "earnings %s", result.TotalEarnings)
	suite.True(decimal.NewFromInt(60).Equal(result.TotalExpenses), "expenses %s", result.TotalExpenses)
}

func (suite *GetDriverBalanceQueryHandlerTestSuite) TestBalance_NoTransactions_ZeroTotals() {
	ctx := context.Background()
	testDriver := suite.saveTestDriver(decimal.Zero)

	query, err := queries.NewGetDriverBalanceQuery(testDriver.ID())
	suite.Require().NoError(err)

	result, err := suite.balanceHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(result.Balance.IsZero())
	suite.True(result.TotalEarnings.IsZero())
	suite.True(result.TotalExpenses.IsZero())
}

func (suite *GetDriverBalanceQueryHandlerTestSuite) TestBalance_UnknownDriver_ReturnsNotFound() {
	query, err := queries.NewGetDriverBalanceQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.balanceHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetDriverBalanceQueryHandlerTestSuite) TestTransactions_NewestFirstWithTypeFilterAndLimit() {
	ctx := context.Background()
	testDriver := suite.saveTestDriver(decimal.NewFromInt(1000))
	base := time.Now().UTC().Truncate(time.Second)

	older := suite.saveTransaction(testDriver.ID(), ledger.TypePayment, decimal.NewFromInt(400),
		decimal.Zero, decimal.NewFromInt(400), base.Add(-2*time.Hour))
	newer := suite.saveTransaction(testDriver.ID(), ledger.TypePayment, decimal.NewFromInt(650),
		decimal.NewFromInt(400), decimal.NewFromInt(1050), base.Add(-time.Hour))
	expense := suite.saveTransaction(testDriver.ID(), ledger.TypeExpense, decimal.NewFromInt(-50),
		decimal.NewFromInt(1050), decimal.NewFromInt(1000), base)

	query, err := queries.NewGetDriverTransactionsQuery(testDriver.ID(), nil, 0)
	suite.Require().NoError(err)

	result, err := suite.transactionsHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(expense.ID(), result[0].ID)
	suite.Equal(newer.ID(), result[1].ID)
	suite.Equal(older.ID(), result[2].ID)
	suite.True(result[1].Amount.Equal(decimal.NewFromInt(650)))

	payments := ledger.TypePayment
	query, err = queries.NewGetDriverTransactionsQuery(testDriver.ID(), &payments, 1)
	suite.Require().NoError(err)

	result, err = suite.transactionsHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(newer.ID(), result[0].ID)
	suite.Equal(ledger.TypePayment, result[0].Type)
}

func (suite *GetDriverBalanceQueryHandlerTestSuite) TestTransactions_OtherDriverExcluded() {
	ctx := context.Background()
	testDriver := suite.saveTestDriver(decimal.Zero)
	otherDriver := suite.saveTestDriver(decimal.Zero)
	suite.saveTransaction(otherDriver.ID(), ledger.TypePayment, decimal.NewFromInt(100),
		decimal.Zero, decimal.NewFromInt(100), time.Now().UTC())

	query, err := queries.NewGetDriverTransactionsQuery(testDriver.ID(), nil, 0)
	suite.Require().NoError(err)

	result, err := suite.transactionsHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetDriverBalanceQueryHandlerTestSuite) saveTestDriver(balance decimal.Decimal) *driver.Driver {
	d, err := driver.RestoreDriver(
		kernel.NewUUID(), "Janis", "Ozols", kernel.NewUUID().String(), "+371 20000000",
		"", "", "", driver.StatusAvailable, balance, true)
	suite.Require().NoError(err)

	repo := driverrepo.NewGormDriverRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), d))
	return d
}

func (suite *GetDriverBalanceQueryHandlerTestSuite) saveTransaction(
	driverID kernel.UUID,
	transactionType ledger.TransactionType,
	amount, before, after decimal.Decimal,
	createdAt time.Time,
) *ledger.Transaction {
	txn, err := ledger.NewTransaction(
		kernel.NewUUID(), driverID, nil, transactionType,
		amount, before, after, "test transaction", kernel.NewTransactionReference(), createdAt)
	suite.Require().NoError(err)

	repo := ledgerrepo.NewGormLedgerRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), txn))
	return txn
}

func (suite *GetDriverBalanceQueryHandlerTestSuite) savePendingTransaction(
	driverID kernel.UUID,
	transactionType ledger.TransactionType,
	amount, before, after decimal.Decimal,
	createdAt time.Time,
) *ledger.Transaction {
	txn, err := ledger.RestoreTransaction(
		kernel.NewUUID(), driverID, nil, transactionType, ledger.StatusPending,
		amount, before, after, "test transaction", kernel.NewTransactionReference(), createdAt)
	suite.Require().NoError(err)

	repo := ledgerrepo.NewGormLedgerRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), txn))
	return txn
}

func TestGetDriverBalanceQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDriverBalanceQueryHandlerTestSuite))
}

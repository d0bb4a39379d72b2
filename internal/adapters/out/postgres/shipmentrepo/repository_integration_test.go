package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/adapters/out/postgres/shipmentrepo"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/shipment"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// ShipmentRepository using PostgreSQL containers to verify that the
// aggregate round-trips with its items and legs.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container          *postgres.PostgresContainer
	db                 *gorm.DB
	shipmentRepository *shipmentrepo.GormShipmentRepository
	tracker            *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ShipmentItemDTO{},
		&shipmentrepo.ShipmentLegDTO{},
	))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipment_items, shipment_legs, shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.shipmentRepository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ShipmentWithItems_Success() {
	ctx := context.Background()

	shp := suite.createTestShipment(nil)
	suite.tracker.On("TrackAggregate", shp.ID(), shp).Once()

	err := suite.shipmentRepository.Add(ctx, shp)
	suite.Require().NoError(err)

	suite.assertShipmentCount(1)
	suite.assertItemCount(len(shp.Items()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_ExistingShipment_RoundTripsItemsAndLegs() {
	ctx := context.Background()

	intermediate := kernel.NewUUID()
	shp := suite.createTestShipment(&intermediate)
	suite.tracker.On("TrackAggregate", shp.ID(), shp).Once()
	suite.Require().NoError(suite.shipmentRepository.Add(ctx, shp))

	retrieved, err := suite.shipmentRepository.Get(ctx, shp.ID())
	suite.Require().NoError(err)

	suite.Equal(shp.ID(), retrieved.ID())
	suite.Equal(shp.TrackingNumber(), retrieved.TrackingNumber())
	suite.Equal(shipment.StatusPending, retrieved.Status())
	suite.Equal(shp.OriginWarehouseID(), retrieved.OriginWarehouseID())
	suite.True(shp.TotalValue().Equal(retrieved.TotalValue()))
	suite.True(shp.TotalWeight().Equal(retrieved.TotalWeight()))
	suite.True(retrieved.IsMultiLeg())

	suite.Require().Len(retrieved.Items(), len(shp.Items()))
	for i, original := range shp.Items() {
		item := retrieved.Items()[i]
		suite.Equal(original.ID(), item.ID())
		suite.Equal(original.ProductID(), item.ProductID())
		suite.Equal(original.Quantity(), item.Quantity())
		suite.True(original.UnitPrice().Equal(item.UnitPrice()))
		suite.True(original.TotalPrice().Equal(item.TotalPrice()))
	}

	suite.Require().Len(retrieved.Legs(), len(shp.Legs()))
	for i, original := range shp.Legs() {
		leg := retrieved.Legs()[i]
		suite.Equal(original.ID(), leg.ID())
		suite.Equal(original.Sequence(), leg.Sequence())
		suite.Equal(original.FromWarehouseID(), leg.FromWarehouseID())
		suite.Equal(original.ToWarehouseID(), leg.ToWarehouseID())
		suite.Equal(shipment.LegPending, leg.Status())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.shipmentRepository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByTrackingNumber_FindsShipment() {
	ctx := context.Background()

	shp := suite.createTestShipment(nil)
	suite.tracker.On("TrackAggregate", shp.ID(), shp).Once()
	suite.Require().NoError(suite.shipmentRepository.Add(ctx, shp))

	retrieved, err := suite.shipmentRepository.GetByTrackingNumber(ctx, shp.TrackingNumber())
	suite.Require().NoError(err)
	suite.Equal(shp.ID(), retrieved.ID())

	_, err = suite.shipmentRepository.GetByTrackingNumber(ctx, "TRK-UNKNOWN")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_LifecycleProgress_Persisted() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	shp := suite.createTestShipment(nil)
	suite.tracker.On("TrackAggregate", shp.ID(), shp).Once()
	suite.Require().NoError(suite.shipmentRepository.Add(ctx, shp))

	driverID := kernel.NewUUID()
	suite.Require().NoError(shp.AssignDriver(driverID))
	suite.Require().NoError(shp.ChangeStatus(shipment.StatusQueued, now))
	suite.Require().NoError(shp.ChangeStatus(shipment.StatusLoading, now.Add(10*time.Minute)))
	suite.Require().NoError(shp.ChangeStatus(shipment.StatusInTransit, now.Add(30*time.Minute)))

	suite.tracker.On("TrackAggregate", shp.ID(), shp).Once()
	suite.Require().NoError(suite.shipmentRepository.Update(ctx, shp))

	retrieved, err := suite.shipmentRepository.Get(ctx, shp.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusInTransit, retrieved.Status())
	suite.Require().NotNil(retrieved.DriverID())
	suite.Equal(driverID, *retrieved.DriverID())
	suite.Require().NotNil(retrieved.ActualPickupDate())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetAllByStatus_And_ByDriver() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	pending := suite.createTestShipment(nil)
	queued := suite.createTestShipment(nil)
	driverID := kernel.NewUUID()
	suite.Require().NoError(queued.AssignDriver(driverID))
	suite.Require().NoError(queued.ChangeStatus(shipment.StatusQueued, now))

	for _, shp := range []*shipment.Shipment{pending, queued} {
		suite.tracker.On("TrackAggregate", shp.ID(), shp).Once()
		suite.Require().NoError(suite.shipmentRepository.Add(ctx, shp))
	}

	pendingShipments, err := suite.shipmentRepository.GetAllByStatus(ctx, shipment.StatusPending)
	suite.Require().NoError(err)
	suite.Require().Len(pendingShipments, 1)
	suite.Equal(pending.ID(), pendingShipments[0].ID())

	driverShipments, err := suite.shipmentRepository.GetAllByDriver(ctx, driverID)
	suite.Require().NoError(err)
	suite.Require().Len(driverShipments, 1)
	suite.Equal(queued.ID(), driverShipments[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestShipment builds a pending shipment with two items; when an
// intermediate warehouse is given the route gets two legs.
func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment(
	intermediateID *kernel.UUID,
) *shipment.Shipment {
	originID := kernel.NewUUID()
	destinationID := kernel.NewUUID()

	itemA, err := shipment.NewShipmentItem(kernel.NewUUID(), kernel.NewUUID(), 4, decimal.NewFromFloat(12.50))
	suite.Require().NoError(err)
	itemB, err := shipment.NewShipmentItem(kernel.NewUUID(), kernel.NewUUID(), 2, decimal.NewFromFloat(99.99))
	suite.Require().NoError(err)

	var legs []*shipment.ShipmentLeg
	if intermediateID != nil {
		legA, legErr := shipment.NewShipmentLeg(
			kernel.NewUUID(), 1, originID, *intermediateID, nil, nil, nil)
		suite.Require().NoError(legErr)
		legB, legErr := shipment.NewShipmentLeg(
			kernel.NewUUID(), 2, *intermediateID, destinationID, nil, nil, nil)
		suite.Require().NoError(legErr)
		legs = []*shipment.ShipmentLeg{legA, legB}
	}

	shp, err := shipment.NewShipment(
		kernel.NewUUID(),
		kernel.NewTrackingNumber(),
		originID,
		&destinationID,
		[]*shipment.ShipmentItem{itemA, itemB},
		legs,
	)
	suite.Require().NoError(err)
	return shp
}

// assertShipmentCount verifies the number of shipments in the database.
func (suite *ShipmentRepositoryIntegrationTestSuite) assertShipmentCount(expected int) {
	var count int64
	err := suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertItemCount verifies the number of shipment items in the database.
func (suite *ShipmentRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&shipmentrepo.ShipmentItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}

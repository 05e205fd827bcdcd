package postgres_test

import (
	"context"
	"testing"
	"time"

	"shiporders/internal/adapters/out/postgres"
	"shiporders/internal/adapters/out/postgres/orderrepo"
	"shiporders/internal/adapters/out/postgres/shipmentrepo"
	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/order"
	"shiporders/internal/core/domain/model/shipment"
	"shiporders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the coordinated multi-step
// sequences commit and roll back as a whole.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgrescontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgrescontainer.Run(ctx,
		"postgres:15-alpine",
		postgrescontainer.WithDatabase("testdb"),
		postgrescontainer.WithUsername("testuser"),
		postgrescontainer.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &shipmentrepo.ShipmentDTO{}))
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, shipments").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(number string) *order.Order {
	total, err := kernel.NewMoney(125.00)
	suite.Require().NoError(err)

	o, err := order.NewOrder(number, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		"Pedro", total, order.New)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) newShipment() *shipment.Shipment {
	cost, err := kernel.NewMoney(9.90)
	suite.Require().NoError(err)

	s, err := shipment.NewShipment("TRK-"+uuid.NewString()[:8], cost,
		time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		shipment.CarrierDHL, shipment.TypeStandard, shipment.StatusPending, nil)
	suite.Require().NoError(err)
	return s
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsShipmentThenOrderSequence() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	s := suite.newShipment()
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Positive(s.ID())

	o := suite.newOrder("5")
	suite.Require().NoError(o.AttachShipment(s.ID()))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.Require().NoError(uow.Commit(ctx))

	restored, err := orderrepo.NewGormOrderRepository(suite.db).GetByID(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(restored.ShipmentID())
	suite.Equal(s.ID(), *restored.ShipmentID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsBothWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	s := suite.newShipment()
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))

	o := suite.newOrder("5")
	suite.Require().NoError(o.AttachShipment(s.ID()))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.Require().NoError(uow.Rollback(ctx))

	var orderCount, shipmentCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&shipmentCount).Error)
	suite.Zero(orderCount)
	suite.Zero(shipmentCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDetachThenDelete_PostConditions() {
	ctx := context.Background()

	// Seed an order with an attached shipment.
	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	s := suite.newShipment()
	suite.Require().NoError(seed.ShipmentRepository().Add(ctx, s))
	o := suite.newOrder("5")
	suite.Require().NoError(o.AttachShipment(s.ID()))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, o))
	suite.Require().NoError(seed.Commit(ctx))

	// Detach the reference and delete the shipment in one transaction.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().GetByID(ctx, o.ID())
	suite.Require().NoError(err)
	loaded.DetachShipment()
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.ShipmentRepository().SoftDelete(ctx, s.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	// The order survives without a reference; the shipment is gone from reads.
	restored, err := orderrepo.NewGormOrderRepository(suite.db).GetByID(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Nil(restored.ShipmentID())

	_, err = shipmentrepo.NewGormShipmentRepository(suite.db).GetByID(ctx, s.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSharedShipment_UpdateIsVisibleToAllReferencingOrders() {
	ctx := context.Background()
	shipmentRepo := shipmentrepo.NewGormShipmentRepository(suite.db)
	orderRepo := orderrepo.NewGormOrderRepository(suite.db)

	s := suite.newShipment()
	suite.Require().NoError(shipmentRepo.Add(ctx, s))

	first := suite.newOrder("1")
	second := suite.newOrder("2")
	suite.Require().NoError(first.AttachShipment(s.ID()))
	suite.Require().NoError(second.AttachShipment(s.ID()))
	suite.Require().NoError(orderRepo.Add(ctx, first))
	suite.Require().NoError(orderRepo.Add(ctx, second))

	cost, err := kernel.NewMoney(20.00)
	suite.Require().NoError(err)
	updated, err := shipment.RestoreShipment(s.ID(), s.TrackingCode(), cost,
		s.DispatchedAt(), s.EstimatedArrivalAt(),
		shipment.CarrierFedEx, shipment.TypePriority, shipment.StatusInTransit, false, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(shipmentRepo.Update(ctx, updated))

	// Both orders still reference the same shipment row, so both observe the change.
	for _, orderID := range []int64{first.ID(), second.ID()} {
		restored, getErr := orderRepo.GetByID(ctx, orderID)
		suite.Require().NoError(getErr)
		suite.Require().NotNil(restored.ShipmentID())

		shared, shipErr := shipmentRepo.GetByID(ctx, *restored.ShipmentID())
		suite.Require().NoError(shipErr)
		suite.Equal(shipment.CarrierFedEx, shared.Carrier())
		suite.InDelta(20.00, shared.Cost().Amount(), 0.001)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderSoftDelete_LeavesShipmentUntouched() {
	ctx := context.Background()
	shipmentRepo := shipmentrepo.NewGormShipmentRepository(suite.db)
	orderRepo := orderrepo.NewGormOrderRepository(suite.db)

	s := suite.newShipment()
	suite.Require().NoError(shipmentRepo.Add(ctx, s))

	o := suite.newOrder("5")
	suite.Require().NoError(o.AttachShipment(s.ID()))
	suite.Require().NoError(orderRepo.Add(ctx, o))

	suite.Require().NoError(orderRepo.SoftDelete(ctx, o.ID()))

	// The shipment stays active after the order disappears.
	restored, err := shipmentRepo.GetByID(ctx, s.ID())
	suite.Require().NoError(err)
	suite.False(restored.IsDeleted())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
	suite.Require().Error(uow.Rollback(context.Background()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"shiporders/internal/adapters/out/postgres/orderrepo"
	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/order"
	"shiporders/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
	suite.Require().NoError(db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_number_active ON orders (number) WHERE NOT deleted",
	).Error)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(number string) *order.Order {
	total, err := kernel.NewMoney(125.00)
	suite.Require().NoError(err)

	o, err := order.NewOrder(number, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		"Pedro", total, order.New)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) uniqueNumber() string {
	return uuid.NewString()[:8]
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsGeneratedID() {
	o := suite.newOrder("5")

	err := suite.repository.Add(context.Background(), o)

	suite.Require().NoError(err)
	suite.Positive(o.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGetByID_RoundTrip() {
	o := suite.newOrder("5")
	suite.Require().NoError(suite.repository.Add(context.Background(), o))

	restored, err := suite.repository.GetByID(context.Background(), o.ID())

	suite.Require().NoError(err)
	suite.Equal(o.ID(), restored.ID())
	suite.Equal("5", restored.Number())
	suite.Equal("Pedro", restored.CustomerName())
	suite.InDelta(125.00, restored.Total().Amount(), 0.001)
	suite.Equal(order.New, restored.Status())
	suite.False(restored.IsDeleted())
	suite.Nil(restored.ShipmentID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsDuplicateKeyError() {
	suite.Require().NoError(suite.repository.Add(context.Background(), suite.newOrder("10")))

	err := suite.repository.Add(context.Background(), suite.newOrder("10"))

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrDuplicateKey)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NumberFreedBySoftDelete_CanBeReused() {
	first := suite.newOrder("10")
	suite.Require().NoError(suite.repository.Add(context.Background(), first))
	suite.Require().NoError(suite.repository.SoftDelete(context.Background(), first.ID()))

	err := suite.repository.Add(context.Background(), suite.newOrder("10"))

	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByID_NotFound() {
	_, err := suite.repository.GetByID(context.Background(), 424242)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_FindsActiveOrder() {
	number := suite.uniqueNumber()
	o := suite.newOrder(number)
	suite.Require().NoError(suite.repository.Add(context.Background(), o))

	restored, err := suite.repository.GetByNumber(context.Background(), number)

	suite.Require().NoError(err)
	suite.Equal(o.ID(), restored.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_IgnoresDeletedOrder() {
	number := suite.uniqueNumber()
	o := suite.newOrder(number)
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	suite.Require().NoError(suite.repository.SoftDelete(context.Background(), o.ID()))

	_, err := suite.repository.GetByNumber(context.Background(), number)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsMutableFields() {
	o := suite.newOrder("5")
	suite.Require().NoError(suite.repository.Add(context.Background(), o))

	total, err := kernel.NewMoney(200.50)
	suite.Require().NoError(err)
	updated, err := order.RestoreOrder(o.ID(), "6", o.PlacedAt(), "Pedro Alonso",
		total, order.Shipped, false, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(context.Background(), updated))

	restored, err := suite.repository.GetByID(context.Background(), o.ID())
	suite.Require().NoError(err)
	suite.Equal("6", restored.Number())
	suite.Equal("Pedro Alonso", restored.CustomerName())
	suite.InDelta(200.50, restored.Total().Amount(), 0.001)
	suite.Equal(order.Shipped, restored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ClearsShipmentReference() {
	shipmentID := int64(7)
	total, err := kernel.NewMoney(125.00)
	suite.Require().NoError(err)

	o, err := order.NewOrder("5", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		"Pedro", total, order.New)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AttachShipment(shipmentID))
	suite.Require().NoError(suite.repository.Add(context.Background(), o))

	o.DetachShipment()
	suite.Require().NoError(suite.repository.Update(context.Background(), o))

	restored, err := suite.repository.GetByID(context.Background(), o.ID())
	suite.Require().NoError(err)
	suite.Nil(restored.ShipmentID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DeletedOrder_ReturnsNotFound() {
	o := suite.newOrder("5")
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	suite.Require().NoError(suite.repository.SoftDelete(context.Background(), o.ID()))

	total, err := kernel.NewMoney(1.00)
	suite.Require().NoError(err)
	updated, err := order.RestoreOrder(o.ID(), "5", o.PlacedAt(), "Pedro",
		total, order.New, false, nil)
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), updated)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSoftDelete_HidesRowButKeepsIt() {
	shipmentID := int64(7)
	total, err := kernel.NewMoney(125.00)
	suite.Require().NoError(err)

	o, err := order.NewOrder("5", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		"Pedro", total, order.New)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AttachShipment(shipmentID))
	suite.Require().NoError(suite.repository.Add(context.Background(), o))

	suite.Require().NoError(suite.repository.SoftDelete(context.Background(), o.ID()))

	_, err = suite.repository.GetByID(context.Background(), o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// The row survives with its shipment reference untouched.
	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", o.ID()).Error)
	suite.True(dto.Deleted)
	suite.Require().NotNil(dto.ShipmentID)
	suite.Equal(shipmentID, *dto.ShipmentID)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSoftDelete_AlreadyDeleted_ReturnsNotFound() {
	o := suite.newOrder("5")
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	suite.Require().NoError(suite.repository.SoftDelete(context.Background(), o.ID()))

	err := suite.repository.SoftDelete(context.Background(), o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ExcludesDeletedOrders() {
	kept := suite.newOrder("1")
	deleted := suite.newOrder("2")
	suite.Require().NoError(suite.repository.Add(context.Background(), kept))
	suite.Require().NoError(suite.repository.Add(context.Background(), deleted))
	suite.Require().NoError(suite.repository.SoftDelete(context.Background(), deleted.ID()))

	orders, err := suite.repository.GetAll(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(kept.ID(), orders[0].ID())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

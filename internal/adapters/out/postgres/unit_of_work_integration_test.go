package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises transaction boundaries of the
// GORM unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

// SetupSuite starts PostgreSQL and applies the goose migrations.
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

	suite.Require().NoError(postgres_adapter.Migrate(dsn))
	// migrations are idempotent
	suite.Require().NoError(postgres_adapter.Migrate(dsn))

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := context.Background()
	uow := suite.factory.Create()
	o := createTestOrder(suite, 1)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(1, loaded.NumberOfItems())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, createTestOrder(suite, 2)))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, 2)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	writer := suite.factory.Create()
	reader := suite.factory.Create()

	suite.Require().NoError(writer.Begin(ctx))
	suite.Require().NoError(writer.OrderRepository().Add(ctx, createTestOrder(suite, 3)))

	all, err := reader.OrderRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Empty(all)

	suite.Require().NoError(writer.Commit(ctx))

	all, err = reader.OrderRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipmentWorkflow() {
	ctx := context.Background()
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, createTestOrder(suite, 4)))

	shipmentID := kernel.NewUUID()
	steps := []func(o *order.Order){
		func(o *order.Order) {
			s, err := shipment.NewShipment(shipmentID)
			suite.Require().NoError(err)
			_, err = o.AddShipment(s)
			suite.Require().NoError(err)
		},
		func(o *order.Order) {
			suite.Require().NoError(o.ChangeShipmentStatus(shipmentID, shipment.InTreatment))
		},
		func(o *order.Order) {
			c, err := packing.NewContainer("C1", kernel.Green(), kernel.Black())
			suite.Require().NoError(err)
			item, _ := o.FindItem("ITEM1")
			_, err = c.AddItem(item, kernel.MustNewPosition(0, 0, 0), kernel.Blue())
			suite.Require().NoError(err)
			suite.Require().NoError(c.Close())
			_, err = o.AddContainerToShipment(shipmentID, c)
			suite.Require().NoError(err)
		},
		func(o *order.Order) {
			for _, next := range []shipment.Status{shipment.Closed, shipment.Shipped, shipment.Received} {
				suite.Require().NoError(o.ChangeShipmentStatus(shipmentID, next))
			}
		},
	}

	for _, step := range steps {
		uow := suite.factory.Create()
		suite.Require().NoError(uow.Begin(ctx))
		o, err := uow.OrderRepository().Get(ctx, 4)
		suite.Require().NoError(err)
		step(o)
		suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
		suite.Require().NoError(uow.Commit(ctx))
	}

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, 4)
	suite.Require().NoError(err)
	suite.True(loaded.IsClosed())
	suite.Equal(0, loaded.NumberOfRemainingItemsToSend())
	suite.InDelta(shipment.CostPerContainer, loaded.Cost(), 1e-9)
}

func createTestOrder(suite *UnitOfWorkIntegrationTestSuite, id int) *order.Order {
	o := order.NewOrder()
	suite.Require().NoError(o.SetID(id))
	item, err := packing.NewItem("ITEM1", "lamp", 1, 1, 1)
	suite.Require().NoError(err)
	_, err = o.Add(item)
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

func (suite *GetOrderQueryHandlerTestSuite) money(s string) kernel.Money {
	m, err := kernel.NewMoneyFromString(s)
	suite.Require().NoError(err)
	return m
}

func (suite *GetOrderQueryHandlerTestSuite) seedOrder(method order.PaymentMethod) *order.Order {
	location, err := kernel.NewGeoPoint(48.85, 2.35)
	suite.Require().NoError(err)
	info, err := order.NewDeliveryInfo("Jane Doe", "12 Elm St", "+15550123", location)
	suite.Require().NoError(err)

	line, err := order.NewLine(kernel.NewUUID(), "Wireless Mouse", suite.money("600.00"), 2)
	suite.Require().NoError(err)

	pricing := order.Pricing{
		Subtotal: suite.money("1200.00"),
		Tax:      suite.money("216.00"),
		Shipping: suite.money("0.00"),
		Total:    suite.money("1416.00"),
	}

	seeded, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []order.Line{line}, pricing, method, info, "4821",
	)
	suite.Require().NoError(err)
	return seeded
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_CreatedOrder_ReturnsView() {
	ctx := context.Background()
	seeded := suite.seedOrder(order.PaymentMethodCashOnDelivery)
	suite.Require().NoError(suite.orderRepo.Add(ctx, seeded))

	query, err := queries.NewGetOrderQuery(seeded.ID())
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(view.ID.IsEqual(seeded.ID()))
	suite.Equal(order.StatusCreated.String(), view.Status)
	suite.Equal("12 Elm St", view.Address)
	suite.True(view.Total.IsEqual(suite.money("1416.00")))
	suite.True(view.CodAmount.IsEqual(suite.money("1416.00")))
	suite.Nil(view.CashCollected)
	suite.Nil(view.DeliveredAt)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_DeliveredOrder_IncludesCashAndStamp() {
	ctx := context.Background()
	seeded := suite.seedOrder(order.PaymentMethodCashOnDelivery)
	suite.Require().NoError(seeded.Assign(kernel.NewUUID()))
	suite.Require().NoError(seeded.Accept())
	suite.Require().NoError(seeded.Advance())
	suite.Require().NoError(seeded.Complete(suite.money("1416.00"), time.Now().UTC()))
	suite.Require().NoError(suite.orderRepo.Add(ctx, seeded))

	query, err := queries.NewGetOrderQuery(seeded.ID())
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(order.StatusDelivered.String(), view.Status)
	suite.Require().NotNil(view.CashCollected)
	suite.True(view.CashCollected.IsEqual(suite.money("1416.00")))
	suite.NotNil(view.DeliveredAt)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistent_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOrderQuery{})
	suite.Require().Error(err)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}

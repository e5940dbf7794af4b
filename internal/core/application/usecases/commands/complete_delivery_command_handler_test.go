package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetFirstInCreatedStatus(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func expectOrderFlow(ctx context.Context, uow *MockOrderUoW, repo *MockOrderRepository, o *order.Order, commits bool) {
	calls := []*mock.Call{
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
	}
	if commits {
		calls = append(calls,
			repo.On("Update", mock.Anything, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
		)
	}
	calls = append(calls, uow.On("Rollback", ctx).Return(nil).Once())
	mock.InOrder(calls...)
}

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	o := testOrderInStatus(t, courierID, order.PaymentMethodCashOnDelivery, "4821", order.StatusOutForDelivery)
	cmd, err := commands.NewCompleteDeliveryCommand(o.ID(), courierID, "4821", testMoney(t, "1416.00"))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectOrderFlow(ctx, uow, repo, o, true)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusDelivered, o.Status())
	require.NotNil(t, o.CashCollected())
	require.True(t, o.CashCollected().IsEqual(testMoney(t, "1416.00")))
	require.NotNil(t, o.DeliveredAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_AlreadyDeliveredIsNoOp(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	o := testOrderInStatus(t, courierID, order.PaymentMethodCard, "4821", order.StatusOutForDelivery)
	require.NoError(t, o.Complete(kernel.ZeroMoney(), time.Now().UTC()))
	cmd, err := commands.NewCompleteDeliveryCommand(o.ID(), courierID, "4821", kernel.ZeroMoney())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectOrderFlow(ctx, uow, repo, o, false)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCompleteDeliveryCommandHandler_Handle_WrongCourierOnDeliveredOrder(t *testing.T) {
	ctx := t.Context()
	o := testOrderInStatus(t, kernel.NewUUID(), order.PaymentMethodCard, "4821", order.StatusOutForDelivery)
	require.NoError(t, o.Complete(kernel.ZeroMoney(), time.Now().UTC()))
	cmd, err := commands.NewCompleteDeliveryCommand(o.ID(), kernel.NewUUID(), "4821", kernel.ZeroMoney())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectOrderFlow(ctx, uow, repo, o, false)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOrderNotAssignedToCourier)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCompleteDeliveryCommandHandler_Handle_OtpMismatch(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	o := testOrderInStatus(t, courierID, order.PaymentMethodCard, "4821", order.StatusOutForDelivery)
	cmd, err := commands.NewCompleteDeliveryCommand(o.ID(), courierID, "4820", kernel.ZeroMoney())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectOrderFlow(ctx, uow, repo, o, false)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrOtpMismatch)
	require.Equal(t, order.StatusOutForDelivery, o.Status())
}

func TestCompleteDeliveryCommandHandler_Handle_CashMismatch(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	o := testOrderInStatus(t, courierID, order.PaymentMethodCashOnDelivery, "4821", order.StatusOutForDelivery)
	cmd, err := commands.NewCompleteDeliveryCommand(o.ID(), courierID, "4821", testMoney(t, "450.00"))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectOrderFlow(ctx, uow, repo, o, false)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrCashAmountMismatch)
	require.Equal(t, order.StatusOutForDelivery, o.Status())
}

func TestCompleteDeliveryCommandHandler_Handle_WrongCourier(t *testing.T) {
	ctx := t.Context()
	o := testOrderInStatus(t, kernel.NewUUID(), order.PaymentMethodCard, "4821", order.StatusOutForDelivery)
	cmd, err := commands.NewCompleteDeliveryCommand(o.ID(), kernel.NewUUID(), "4821", kernel.ZeroMoney())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectOrderFlow(ctx, uow, repo, o, false)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOrderNotAssignedToCourier)
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	o := testOrderInStatus(t, courierID, order.PaymentMethodCard, "4821", order.StatusAssigned)
	cmd, err := commands.NewAcceptOrderCommand(o.ID(), courierID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectOrderFlow(ctx, uow, repo, o, true)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusPickedUp, o.Status())
}

func TestDeclineOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	o := testOrderInStatus(t, courierID, order.PaymentMethodCard, "4821", order.StatusAssigned)
	cmd, err := commands.NewDeclineOrderCommand(o.ID(), courierID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectOrderFlow(ctx, uow, repo, o, true)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeclineOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusRejected, o.Status())
}

func TestStartDeliveryCommandHandler_Handle_IllegalFromAssigned(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	o := testOrderInStatus(t, courierID, order.PaymentMethodCard, "4821", order.StatusAssigned)
	cmd, err := commands.NewStartDeliveryCommand(o.ID(), courierID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectOrderFlow(ctx, uow, repo, o, false)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrIllegalTransition)
}

func TestCancelOrderCommandHandler_Handle_WrongCustomer(t *testing.T) {
	ctx := t.Context()
	o := testOrderInStatus(t, kernel.NewUUID(), order.PaymentMethodCard, "4821", order.StatusCreated)
	cmd, err := commands.NewCancelOrderCommand(o.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectOrderFlow(ctx, uow, repo, o, false)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOrderNotOwnedByCustomer)
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := testOrderInStatus(t, kernel.NewUUID(), order.PaymentMethodCard, "4821", order.StatusCreated)
	cmd, err := commands.NewCancelOrderCommand(o.ID(), o.CustomerID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectOrderFlow(ctx, uow, repo, o, true)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusCancelled, o.Status())
}

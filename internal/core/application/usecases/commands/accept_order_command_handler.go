package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ErrOrderNotAssignedToCourier is returned when a courier acts on an order
// that is assigned to someone else or to no one.
var ErrOrderNotAssignedToCourier = errors.New("order is not assigned to this courier")

// AcceptOrderCommandHandler handles courier acceptance of assigned orders.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept order command.
// Verifies the order is assigned to the acting courier before advancing it
// to PickedUp. Illegal transitions surface as order.ErrIllegalTransition.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = requireAssignedCourier(aggregate, command.CourierID()); err != nil {
		return err
	}

	if err = aggregate.Accept(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func requireAssignedCourier(aggregate *order.Order, courierID kernel.UUID) error {
	assigned := aggregate.Courier()
	if assigned == nil || !assigned.IsEqual(courierID) {
		return ErrOrderNotAssignedToCourier
	}

	return nil
}

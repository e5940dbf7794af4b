package commands

import (
	"context"
	"errors"
)

// ErrOrderNotOwnedByCustomer is returned when a customer tries to cancel an
// order that belongs to someone else.
var ErrOrderNotOwnedByCustomer = errors.New("order does not belong to this customer")

// CancelOrderCommandHandler handles customer-initiated cancellation.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel order command.
// Cancelling an order that already reached Delivered, Rejected, or
// Cancelled fails with order.ErrIllegalTransition.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
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

	if !aggregate.CustomerID().IsEqual(command.CustomerID()) {
		return ErrOrderNotOwnedByCustomer
	}

	if err = aggregate.Cancel(); err != nil {
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

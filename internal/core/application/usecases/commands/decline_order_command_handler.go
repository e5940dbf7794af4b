package commands

import (
	"context"
)

// DeclineOrderCommandHandler handles courier refusal of assigned orders.
type DeclineOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeclineOrderCommandHandler creates a handler for order refusal.
func NewDeclineOrderCommandHandler(uowFactory OrderUoWFactory) DeclineOrderCommandHandler {
	return DeclineOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decline order command.
// The order lands in Rejected, a terminal status, so a declined order never
// re-enters the assignment queue.
func (h DeclineOrderCommandHandler) Handle(ctx context.Context, command DeclineOrderCommand) error {
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

	if err = aggregate.Decline(); err != nil {
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

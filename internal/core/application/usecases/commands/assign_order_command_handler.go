package commands

import (
	"context"
	"errors"

	"fulfillment/internal/pkg/errs"
)

var (
	ErrNoActiveCouriersFound = errors.New("no active couriers found")
	ErrNoOrderFound          = errors.New("no order found")
)

// AssignOrderCommandHandler orchestrates the order assignment process.
// Matches the oldest pending order with an active courier and records the
// assignment transactionally.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	cmd := NewAssignOrderCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoActiveCouriersFound):
//	    log.Println("Nobody on shift")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
// Requires a DispatchUoWFactory spanning the order and courier repositories.
func NewAssignOrderCommandHandler(uowFactory DispatchUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order assignment command.
// Returns ErrNoOrderFound when the queue is empty and
// ErrNoActiveCouriersFound when nobody is on shift; both are expected
// outcomes on an idle system, not failures.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, command AssignOrderCommand) error {
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
	courierRepo := uow.CourierRepository()

	aggregate, err := orderRepo.GetFirstInCreatedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	assignee, err := courierRepo.GetFirstActive(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoActiveCouriersFound
	}
	if err != nil {
		return err
	}

	if err = aggregate.Assign(assignee.ID()); err != nil {
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

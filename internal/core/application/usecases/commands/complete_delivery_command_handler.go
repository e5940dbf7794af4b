package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// CompleteDeliveryCommandHandler finishes deliveries at the door.
// Verification and the status change commit together: when the OTP or the
// cash amount does not match, the order stays OutForDelivery and the
// courier can retry.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete delivery command.
// A retried completion by the assigned courier of an already delivered order
// succeeds without changing anything, so couriers on flaky connections can
// submit twice. Any other courier is rejected regardless of status.
// Returns services.ErrOtpMismatch or services.ErrCashAmountMismatch when
// verification fails.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
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

	if aggregate.Status() == order.StatusDelivered {
		return nil
	}

	gateway := services.NewVerificationGateway()
	if err = gateway.Verify(aggregate, command.Otp(), command.CashCollected()); err != nil {
		return err
	}

	if err = aggregate.Complete(command.CashCollected(), time.Now().UTC()); err != nil {
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

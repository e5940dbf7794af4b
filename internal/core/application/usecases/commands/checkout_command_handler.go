package commands

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// CheckoutCommandHandler converts a cart into an order.
// Snapshots the cart's lines and totals, issues the delivery OTP, and
// consumes the cart, all inside one transaction so a failed checkout
// leaves the cart untouched.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, cart.ErrEmptyCart) {
//	    log.Println("Nothing to check out")
//	}
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires a CheckoutUoWFactory that spans the cart and order repositories.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command.
// Returns cart.ErrEmptyCart when the customer has no cart or the cart has
// no lines. On success the order is persisted in Created status and the
// cart is deleted atomically.
func (h CheckoutCommandHandler) Handle(ctx context.Context, command CheckoutCommand) error {
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

	cartRepo := uow.CartRepository()
	orderRepo := uow.OrderRepository()

	aggregate, err := cartRepo.Get(ctx, command.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return cart.ErrEmptyCart
	}
	if err != nil {
		return err
	}
	if aggregate.IsEmpty() {
		return cart.ErrEmptyCart
	}

	lines, err := snapshotLines(aggregate)
	if err != nil {
		return err
	}

	totals := aggregate.Totals()
	pricing := order.Pricing{
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Shipping: totals.Shipping,
		Total:    totals.Total,
	}

	newOrder, err := order.NewOrder(
		command.OrderID(),
		command.CustomerID(),
		lines,
		pricing,
		command.PaymentMethod(),
		command.DeliveryInfo(),
		newDeliveryOtp(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = cartRepo.Delete(ctx, command.CustomerID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func snapshotLines(aggregate *cart.Cart) ([]order.Line, error) {
	cartLines := aggregate.Lines()
	lines := make([]order.Line, 0, len(cartLines))

	for _, l := range cartLines {
		line, err := order.NewLine(l.ItemID(), l.Name(), l.UnitPrice(), l.Quantity())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// newDeliveryOtp issues the four digit code the recipient presents at handoff.
func newDeliveryOtp() string {
	return fmt.Sprintf("%04d", rand.IntN(10000)) //nolint:gosec // it's ok
}

package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a request to convert a cart into an order.
// The caller supplies the order identifier so retried requests stay traceable.
//
// Example:
//
//	info, _ := order.NewDeliveryInfo("Jane Doe", "12 Elm St", "+15550123", location)
//	cmd, err := NewCheckoutCommand(kernel.NewUUID(), customerID, order.PaymentMethodCard, info)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout request: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	paymentMethod order.PaymentMethod
	deliveryInfo  order.DeliveryInfo

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to convert a cart into an order.
// Validates the identifiers, the payment method, and the delivery details.
func NewCheckoutCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	paymentMethod order.PaymentMethod,
	deliveryInfo order.DeliveryInfo,
) (CheckoutCommand, error) {
	command := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setPaymentMethod(paymentMethod),
		command.setDeliveryInfo(deliveryInfo),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the cart owner's identifier.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PaymentMethod returns how the order will be paid.
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// DeliveryInfo returns the recipient and destination details.
func (c CheckoutCommand) DeliveryInfo() order.DeliveryInfo {
	return c.deliveryInfo
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CheckoutCommand) setDeliveryInfo(deliveryInfo order.DeliveryInfo) error {
	if err := deliveryInfo.Validate(); err != nil {
		return err
	}

	c.deliveryInfo = deliveryInfo
	return nil
}

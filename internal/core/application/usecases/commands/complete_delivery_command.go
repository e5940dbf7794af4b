package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents the final handoff of an order.
// Carries the proof the courier gathered at the door: the recipient's
// one-time code and, for cash on delivery, the collected amount.
//
// Example:
//
//	cash, _ := kernel.NewMoneyFromString("1416.00")
//	cmd, err := NewCompleteDeliveryCommand(orderID, courierID, "4821", cash)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewCompleteDeliveryCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrOtpMismatch) {
//	    log.Println("Recipient presented the wrong code")
//	}
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	courierID     kernel.UUID
	otp           string
	cashCollected kernel.Money

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to finish a delivery.
// The OTP and cash amount are passed through as submitted; matching them
// against the order is the verification gateway's job, not the command's.
func NewCompleteDeliveryCommand(
	orderID kernel.UUID,
	courierID kernel.UUID,
	otp string,
	cashCollected kernel.Money,
) (CompleteDeliveryCommand, error) {
	command := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCourierID(courierID),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	command.otp = otp
	command.cashCollected = cashCollected
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the order being completed.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the courier acting on the order.
func (c CompleteDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Otp returns the code the recipient presented.
func (c CompleteDeliveryCommand) Otp() string {
	return c.otp
}

// CashCollected returns the amount of cash the courier took, zero when prepaid.
func (c CompleteDeliveryCommand) CashCollected() kernel.Money {
	return c.cashCollected
}

func (c *CompleteDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Domain errors for the order aggregate.
var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrPricingMismatch is returned when the frozen totals do not add up.
	ErrPricingMismatch = errors.New("total must equal subtotal + tax + shipping")
)

// Pricing is the frozen monetary breakdown copied from the cart at conversion
// time. Total must equal Subtotal + Tax + Shipping.
type Pricing struct {
	Subtotal kernel.Money
	Tax      kernel.Money
	Shipping kernel.Money
	Total    kernel.Money
}

// Validate checks the totals are internally consistent.
func (p Pricing) Validate() error {
	if !p.Total.IsEqual(p.Subtotal.Add(p.Tax).Add(p.Shipping)) {
		return fmt.Errorf("%w: %s != %s + %s + %s",
			ErrPricingMismatch, p.Total, p.Subtotal, p.Tax, p.Shipping)
	}
	return nil
}

// Order is the aggregate root for a priced, fulfillable purchase.
// It is created by converting a cart and is immutable afterwards except for
// its fulfillment status, the collected cash amount, and the delivery
// timestamp. Line items, totals, payment method, and delivery details are
// frozen at conversion; an order is never deleted, only transitioned to a
// terminal status.
//
// All status changes go through the transition methods below, which delegate
// to the Status state machine. A rejected transition returns
// ErrIllegalTransition and leaves the aggregate untouched.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID

	// courierID is the assigned courier (nil until the dispatcher binds one)
	courierID *kernel.UUID

	lines   []Line
	pricing Pricing

	paymentMethod PaymentMethod
	deliveryInfo  DeliveryInfo

	// codAmount is the cash the courier must collect; zero when prepaid
	codAmount kernel.Money
	// deliveryOtp is the one-time code the recipient presents at handoff
	deliveryOtp string

	// cashCollected is recorded on completion (nil until delivered)
	cashCollected *kernel.Money
	deliveredAt   *time.Time

	status Status
	// statusAtLoad is the status as of construction or rehydration; transition
	// methods never touch it. Repositories compare against it when writing.
	statusAtLoad Status

	isConstructed bool
}

// NewOrder converts cart contents into a new order in Created status.
//
// The lines and pricing are the cart's snapshot at the instant of conversion;
// the constructor verifies the totals add up but never re-derives them.
// For cash-on-delivery orders codAmount is fixed to the order total.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	lines []Line,
	pricing Pricing,
	paymentMethod PaymentMethod,
	deliveryInfo DeliveryInfo,
	deliveryOtp string,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		validateLines(lines),
		pricing.Validate(),
		paymentMethod.Validate(),
		deliveryInfo.Validate(),
	); err != nil {
		return nil, err
	}

	codAmount := kernel.ZeroMoney()
	if paymentMethod == PaymentMethodCashOnDelivery {
		codAmount = pricing.Total
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		lines:         copyLines(lines),
		pricing:       pricing,
		paymentMethod: paymentMethod,
		deliveryInfo:  deliveryInfo,
		codAmount:     codAmount,
		deliveryOtp:   deliveryOtp,
		status:        StatusCreated,
		statusAtLoad:  StatusCreated,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// conversion rules, preserving the stored status, assignment, and completion
// stamps exactly as written.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	courierID *kernel.UUID,
	lines []Line,
	pricing Pricing,
	paymentMethod PaymentMethod,
	deliveryInfo DeliveryInfo,
	codAmount kernel.Money,
	deliveryOtp string,
	cashCollected *kernel.Money,
	status Status,
	deliveredAt *time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		validateLines(lines),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		courierID:     courierID,
		lines:         copyLines(lines),
		pricing:       pricing,
		paymentMethod: paymentMethod,
		deliveryInfo:  deliveryInfo,
		codAmount:     codAmount,
		deliveryOtp:   deliveryOtp,
		cashCollected: cashCollected,
		status:        status,
		statusAtLoad:  status,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Courier returns the assigned courier's ID, or nil before assignment.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Lines returns a copy of the frozen line items.
func (o *Order) Lines() []Line {
	return copyLines(o.lines)
}

// Pricing returns the frozen totals.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// PaymentMethod returns how the order is paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// DeliveryInfo returns the frozen delivery details.
func (o *Order) DeliveryInfo() DeliveryInfo {
	return o.deliveryInfo
}

// CodAmount returns the cash the courier must collect; zero when prepaid.
func (o *Order) CodAmount() kernel.Money {
	return o.codAmount
}

// DeliveryOtp returns the one-time delivery code, empty if none was issued.
func (o *Order) DeliveryOtp() string {
	return o.deliveryOtp
}

// CashCollected returns the cash recorded at completion, or nil before delivery.
func (o *Order) CashCollected() *kernel.Money {
	return o.cashCollected
}

// DeliveredAt returns the delivery timestamp, or nil before delivery.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// StatusAtLoad returns the status the order carried when it was constructed
// or rehydrated, before any in-memory transitions. Writers use it as the
// optimistic concurrency guard: an update only applies while the stored
// status still matches.
func (o *Order) StatusAtLoad() Status {
	return o.statusAtLoad
}

// Assign binds a courier to the order, moving Created -> Assigned.
// Performed by the dispatcher, not the courier.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Accept records the courier accepting the pickup, moving Assigned -> PickedUp.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Decline records the courier refusing the order, moving Assigned -> Rejected.
func (o *Order) Decline() error {
	newStatus, err := o.status.Decline()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Advance records the courier heading out, moving PickedUp -> OutForDelivery.
func (o *Order) Advance() error {
	newStatus, err := o.status.Advance()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete finishes the delivery, moving OutForDelivery -> Delivered and
// stamping the collected cash and the delivery time in the same step.
// Verification of the delivery code and cash amount happens before this is
// called; a failed verification must not reach Complete.
func (o *Order) Complete(cashCollected kernel.Money, deliveredAt time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cashCollected = &cashCollected
	o.deliveredAt = &deliveredAt
	return nil
}

// Cancel moves any non-terminal status to Cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func validateLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func copyLines(lines []Line) []Line {
	copied := make([]Line, len(lines))
	copy(copied, lines)
	return copied
}

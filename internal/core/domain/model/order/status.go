package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ErrIllegalTransition is the sentinel for every rejected status transition.
// Callers match it with errors.Is; the concrete IllegalTransitionError carries
// the current status and the attempted operation.
var ErrIllegalTransition = errors.New("illegal status transition")

// IllegalTransitionError reports a fulfillment transition that is not in the
// transition table. The order's status is left unchanged.
type IllegalTransitionError struct {
	From Status
	Op   string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition: cannot %s from %s", e.Op, e.From)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

func newIllegalTransition(from Status, op string) error {
	return &IllegalTransitionError{From: from, Op: op}
}

// Status represents the fulfillment lifecycle state of an order.
// It implements a state machine with defined transitions so every caller,
// whatever the transport, goes through the same single authority.
//
// State transitions:
//
//	Created ──assign──> Assigned ──accept──> PickedUp ──advance──> OutForDelivery ──complete──> Delivered
//	                       │
//	                       └──decline──> Rejected
//
//	Created | Assigned | PickedUp | OutForDelivery ──cancel──> Cancelled
//
// Delivered, Rejected, and Cancelled are terminal. Created is the
// pre-assignment queue state: the order exists and is priced, but no courier
// is bound yet.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status of a converted order awaiting
	// courier assignment.
	StatusCreated

	// StatusAssigned indicates a courier has been bound to the order but has
	// not yet accepted the pickup.
	StatusAssigned

	// StatusPickedUp indicates the courier accepted the order and holds the goods.
	StatusPickedUp

	// StatusOutForDelivery indicates the courier is en route to the recipient.
	StatusOutForDelivery

	// StatusDelivered indicates a verified handoff. Terminal.
	StatusDelivered

	// StatusRejected indicates the courier declined the assignment. Terminal.
	StatusRejected

	// StatusCancelled indicates the order was cancelled before delivery. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusCreated:        "Created",
		StatusAssigned:       "Assigned",
		StatusPickedUp:       "PickedUp",
		StatusOutForDelivery: "OutForDelivery",
		StatusDelivered:      "Delivered",
		StatusRejected:       "Rejected",
		StatusCancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:        "Created",
		StatusAssigned:       "Assigned",
		StatusPickedUp:       "PickedUp",
		StatusOutForDelivery: "OutForDelivery",
		StatusDelivered:      "Delivered",
		StatusRejected:       "Rejected",
		StatusCancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// StatusUnknown (0) and any other values are invalid. Used to vet Status
// values arriving from external sources such as the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is permitted from s.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusRejected || s == StatusCancelled
}

// Assign transitions Created -> Assigned when a courier is bound to the order.
func (s Status) Assign() (Status, error) {
	if s != StatusCreated {
		return 0, newIllegalTransition(s, "assign")
	}
	return StatusAssigned, nil
}

// Accept transitions Assigned -> PickedUp when the courier accepts the order.
func (s Status) Accept() (Status, error) {
	if s != StatusAssigned {
		return 0, newIllegalTransition(s, "accept")
	}
	return StatusPickedUp, nil
}

// Decline transitions Assigned -> Rejected when the courier declines the order.
func (s Status) Decline() (Status, error) {
	if s != StatusAssigned {
		return 0, newIllegalTransition(s, "decline")
	}
	return StatusRejected, nil
}

// Advance transitions PickedUp -> OutForDelivery when the courier heads out.
func (s Status) Advance() (Status, error) {
	if s != StatusPickedUp {
		return 0, newIllegalTransition(s, "advance")
	}
	return StatusOutForDelivery, nil
}

// Complete transitions OutForDelivery -> Delivered.
// The aggregate only calls this after delivery verification has passed.
func (s Status) Complete() (Status, error) {
	if s != StatusOutForDelivery {
		return 0, newIllegalTransition(s, "complete")
	}
	return StatusDelivered, nil
}

// Cancel transitions any non-terminal status to Cancelled.
func (s Status) Cancel() (Status, error) {
	switch s {
	case StatusCreated, StatusAssigned, StatusPickedUp, StatusOutForDelivery:
		return StatusCancelled, nil
	default:
		return 0, newIllegalTransition(s, "cancel")
	}
}

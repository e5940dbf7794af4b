package services

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// Verification errors. Both are recoverable: the courier may correct the
// input and retry completion while the order is still out for delivery.
var (
	// ErrOtpMismatch is returned when the submitted delivery code does not
	// match the code issued for the order. The expected code is never echoed.
	ErrOtpMismatch = errors.New("delivery code mismatch")
	// ErrCashAmountMismatch is the sentinel for a cash reconciliation failure.
	ErrCashAmountMismatch = errors.New("collected cash does not match the COD amount")
)

// CashAmountMismatchError reports a cash reconciliation failure with both
// amounts, so the caller can show the courier exactly what to correct.
type CashAmountMismatchError struct {
	Expected  kernel.Money
	Submitted kernel.Money
}

func (e *CashAmountMismatchError) Error() string {
	return fmt.Sprintf("collected cash does not match the COD amount: expected %s, got %s",
		e.Expected, e.Submitted)
}

func (e *CashAmountMismatchError) Unwrap() error {
	return ErrCashAmountMismatch
}

// VerificationGateway is the domain service guarding the final handoff.
// Completing a delivery must not succeed unless both checks pass:
//
//   - if the order carries a delivery code, the submitted code must equal it
//     exactly (plain string equality, no normalization)
//   - if the order has a positive COD amount, the submitted cash must equal
//     it exactly (no tolerance band)
//
// Checks that do not apply to the order are skipped. Verification never
// mutates the order.
type VerificationGateway struct{}

// NewVerificationGateway creates a VerificationGateway.
func NewVerificationGateway() VerificationGateway {
	return VerificationGateway{}
}

// Verify runs the OTP and cash reconciliation checks for the order.
// Returns nil when every applicable check passes.
func (g VerificationGateway) Verify(o *order.Order, submittedOtp string, submittedCash kernel.Money) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if o.DeliveryOtp() != "" && submittedOtp != o.DeliveryOtp() {
		return ErrOtpMismatch
	}

	if o.CodAmount().IsPositive() && !submittedCash.IsEqual(o.CodAmount()) {
		return &CashAmountMismatchError{
			Expected:  o.CodAmount(),
			Submitted: submittedCash,
		}
	}

	return nil
}

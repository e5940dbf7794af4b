package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// PaymentMethod identifies how an order is paid.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCard means the order was paid online at checkout.
	PaymentMethodCard

	// PaymentMethodCashOnDelivery means the courier collects the order total
	// in cash at the delivery point.
	PaymentMethodCashOnDelivery
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown:        "Unknown",
		PaymentMethodCard:           "Card",
		PaymentMethodCashOnDelivery: "CashOnDelivery",
	}
}

// PaymentMethodFromString parses the wire representation ("card", "cod").
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	switch s {
	case "card":
		return PaymentMethodCard, nil
	case "cod":
		return PaymentMethodCashOnDelivery, nil
	default:
		return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a known payment method", s))
	}
}

// Validate checks the payment method is one of the defined values.
func (p PaymentMethod) Validate() error {
	if p != PaymentMethodCard && p != PaymentMethodCashOnDelivery {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}

// String returns the human-readable name of the payment method.
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

package cart

import (
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Pricing rules applied to every cart.
var (
	// taxRate is the flat tax applied to the subtotal.
	taxRate = decimal.RequireFromString("0.18")
	// freeShippingThreshold is the subtotal at which shipping becomes free.
	freeShippingThreshold = decimal.NewFromInt(1000)
	// flatShippingFee is charged below the free-shipping threshold.
	flatShippingFee = decimal.NewFromInt(50)
)

// Totals holds the computed monetary breakdown of a cart:
// Total = Subtotal + Tax + Shipping.
type Totals struct {
	Subtotal kernel.Money
	Tax      kernel.Money
	Shipping kernel.Money
	Total    kernel.Money
}

// computeTotals prices the given lines:
//
//	subtotal = sum(unitPrice * quantity)
//	tax      = subtotal * 0.18
//	shipping = 0 if subtotal >= 1000, otherwise 50
//	total    = subtotal + tax + shipping
//
// An empty cart yields all-zero totals, including shipping; the flat fee only
// applies when there is something to ship.
func computeTotals(lines []*Line) Totals {
	if len(lines) == 0 {
		return Totals{}
	}

	subtotal := kernel.ZeroMoney()
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal())
	}

	tax := subtotal.MulRate(taxRate)

	shipping := kernel.ZeroMoney()
	if !subtotal.Amount().GreaterThanOrEqual(freeShippingThreshold) {
		shipping, _ = kernel.NewMoney(flatShippingFee)
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}

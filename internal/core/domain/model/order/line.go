package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned for a Line not created via NewLine.
var ErrLineIsNotConstructed = errors.New("order Line must be created via NewLine constructor")

// Line is an immutable order position copied from the cart at conversion
// time. Unlike a cart line it never changes: the name, unit price, and
// quantity are frozen so later catalog edits cannot alter a priced order.
type Line struct {
	itemID    kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int

	guard guard.ConstructorGuard
}

// NewLine creates an order line snapshot.
func NewLine(itemID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (Line, error) {
	if err := errors.Join(
		itemID.Validate(),
		requireLineName(name),
		requireLineQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return Line{
		itemID:    itemID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line was created through the constructor.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ItemID returns the catalog item identifier captured at conversion.
func (l Line) ItemID() kernel.UUID {
	return l.itemID
}

// Name returns the item name captured at conversion.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the frozen per-unit price.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the ordered quantity, always >= 1.
func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns unit price times quantity.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}

func requireLineName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}

func requireLineQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	return nil
}

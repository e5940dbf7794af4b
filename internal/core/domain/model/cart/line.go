package cart

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not created via NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is a single purchasable position in a cart: a catalog item reference
// with a unit price snapshot and a positive quantity. The price is captured
// when the line is added and is not re-derived from the catalog afterwards.
type Line struct {
	itemID    kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int

	guard guard.ConstructorGuard
}

// NewLine creates a cart line. Quantity must be at least 1 and the unit price
// snapshot must be non-negative (enforced by kernel.Money).
func NewLine(itemID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (*Line, error) {
	line := &Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setItemID(itemID),
		line.setName(name),
		line.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	line.unitPrice = unitPrice
	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ItemID returns the referenced catalog item identifier.
func (l *Line) ItemID() kernel.UUID {
	return l.itemID
}

// Name returns the item name captured when the line was added.
func (l *Line) Name() string {
	return l.name
}

// UnitPrice returns the price snapshot for one unit.
func (l *Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the number of units, always >= 1.
func (l *Line) Quantity() int {
	return l.quantity
}

// Subtotal returns unit price times quantity.
func (l *Line) Subtotal() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}

func (l *Line) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	l.itemID = itemID
	return nil
}

func (l *Line) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return NewInvalidQuantityError(quantity)
	}
	l.quantity = quantity
	return nil
}

// NewInvalidQuantityError builds the validation error for a quantity below 1.
func NewInvalidQuantityError(quantity int) error {
	return fmt.Errorf("%w: %d is less than 1", ErrInvalidQuantity, quantity)
}

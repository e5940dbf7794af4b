package cart

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

// Domain errors for cart operations.
var (
	// ErrCartIsNotConstructed is returned when a Cart was not created via NewCart or RestoreCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")
	// ErrInvalidQuantity is returned when a quantity below 1 is supplied where one is required.
	ErrInvalidQuantity = errors.New("quantity is invalid")
	// ErrLineNotFound is returned when updating a line that is not in the cart.
	ErrLineNotFound = errors.New("cart line not found")
	// ErrEmptyCart is returned when converting a cart that has no lines.
	ErrEmptyCart = errors.New("cart is empty")
)

// Cart is the mutable set of candidate line items for one customer.
// It is the aggregate root for everything that happens before checkout:
// lines are added, updated, and removed, and monetary totals are computed
// over the current contents. A cart is ephemeral; it lives until it is
// converted into an order or abandoned.
//
// Invariants:
//   - every line has quantity >= 1; lowering a quantity below 1 removes the line
//   - line order is insertion order, stable across updates
//   - at most one line per catalog item; adding the same item again increments it
type Cart struct {
	customerID kernel.UUID
	lines      []*Line

	isConstructed bool
}

// NewCart creates an empty cart owned by the given customer (or guest token).
func NewCart(customerID kernel.UUID) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		customerID:    customerID,
		lines:         make([]*Line, 0),
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart from persistence with its stored lines.
// Lines must already be valid; their order is preserved.
func RestoreCart(customerID kernel.UUID, lines []*Line) (*Cart, error) {
	cart, err := NewCart(customerID)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err = line.Validate(); err != nil {
			return nil, err
		}
	}

	cart.lines = append(cart.lines, lines...)
	return cart, nil
}

// Validate ensures the cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// CustomerID returns the owning customer (or guest) identifier.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the cart lines in insertion order.
// The slice is a copy; the lines themselves are shared.
func (c *Cart) Lines() []*Line {
	lines := make([]*Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddLine inserts a new line or increments the quantity of an existing one.
// Fails with ErrInvalidQuantity if quantity is below 1.
func (c *Cart) AddLine(itemID kernel.UUID, name string, unitPrice kernel.Money, quantity int) error {
	if quantity < 1 {
		return NewInvalidQuantityError(quantity)
	}

	if existing := c.findLine(itemID); existing != nil {
		existing.quantity += quantity
		return nil
	}

	line, err := NewLine(itemID, name, unitPrice, quantity)
	if err != nil {
		return err
	}

	c.lines = append(c.lines, line)
	return nil
}

// UpdateLine sets the quantity of an existing line.
// A quantity below 1 removes the line. Fails with ErrLineNotFound when the
// item is not in the cart.
func (c *Cart) UpdateLine(itemID kernel.UUID, quantity int) error {
	line := c.findLine(itemID)
	if line == nil {
		return ErrLineNotFound
	}

	if quantity < 1 {
		c.RemoveLine(itemID)
		return nil
	}

	line.quantity = quantity
	return nil
}

// RemoveLine deletes the line for the given item.
// Removing an absent line is a no-op, not an error.
func (c *Cart) RemoveLine(itemID kernel.UUID) {
	for i, line := range c.lines {
		if line.itemID.IsEqual(itemID) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear removes all lines. Clearing an empty cart is a no-op.
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
}

// Totals computes the monetary totals over the current lines.
func (c *Cart) Totals() Totals {
	return computeTotals(c.lines)
}

func (c *Cart) findLine(itemID kernel.UUID) *Line {
	for _, line := range c.lines {
		if line.itemID.IsEqual(itemID) {
			return line
		}
	}
	return nil
}

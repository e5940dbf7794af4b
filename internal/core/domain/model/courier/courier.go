// Package courier implements the courier roster aggregate. The fulfillment
// core only needs courier identity and availability: the dispatcher binds
// queued orders to an active courier, and the courier then drives the
// order's status transitions.
package courier

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier in the roster.
// New couriers start active; a deactivated courier stops receiving
// assignments but keeps the orders already bound to it.
type Courier struct {
	id     kernel.UUID
	name   string
	active bool

	guard guard.ConstructorGuard
}

// NewCourier creates an active courier with the given identity.
func NewCourier(id kernel.UUID, name string) (*Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Courier{
		id:     id,
		name:   name,
		active: true,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreCourier reconstructs a courier from persistence.
func RestoreCourier(id kernel.UUID, name string, active bool) (*Courier, error) {
	courier, err := NewCourier(id, name)
	if err != nil {
		return nil, err
	}

	courier.active = active
	return courier, nil
}

// Validate ensures the courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the courier identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// IsActive reports whether the courier may receive new assignments.
func (c *Courier) IsActive() bool {
	return c.active
}

// Activate makes the courier eligible for assignments again.
func (c *Courier) Activate() {
	c.active = true
}

// Deactivate removes the courier from the assignment pool.
func (c *Courier) Deactivate() {
	c.active = false
}

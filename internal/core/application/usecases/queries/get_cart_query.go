// Package queries contains read-only operations for the CQRS architecture.
// Query handlers bypass the domain aggregates where possible and read
// straight from storage, returning plain response structs.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's cart with computed totals.
//
// Example:
//
//	query, err := NewGetCartQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	cart, err := handler.Handle(ctx, query)
//	fmt.Printf("%d lines, total %s\n", len(cart.Lines), cart.Total)
type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the given customer or guest identity.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// CartLineResponse is one priced line of the cart snapshot.
type CartLineResponse struct {
	ItemID    kernel.UUID
	Name      string
	UnitPrice kernel.Money
	Quantity  int
	Subtotal  kernel.Money
}

// GetCartQueryResponse is the cart snapshot with its derived totals.
// A customer with no cart gets an empty snapshot with all-zero totals.
type GetCartQueryResponse struct {
	CustomerID kernel.UUID
	Lines      []CartLineResponse
	Subtotal   kernel.Money
	Tax        kernel.Money
	Shipping   kernel.Money
	Total      kernel.Money
}

package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// GetCartQueryHandler reads a cart and computes its totals.
//
// Unlike the other query handlers this one goes through the repository port
// rather than raw SQL: guest carts live in process memory, not postgres, and
// the port is the only surface both stores share.
type GetCartQueryHandler struct {
	cartRepo ports.CartRepository
}

// NewGetCartQueryHandler creates a handler for cart snapshot queries.
func NewGetCartQueryHandler(cartRepo ports.CartRepository) GetCartQueryHandler {
	return GetCartQueryHandler{cartRepo: cartRepo}
}

// Handle executes the cart query.
// A missing cart is not an error: the response is an empty snapshot whose
// totals are all zero.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	aggregate, err := h.cartRepo.Get(ctx, query.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		empty := cart.Totals{}
		return GetCartQueryResponse{
			CustomerID: query.CustomerID(),
			Lines:      []CartLineResponse{},
			Subtotal:   empty.Subtotal,
			Tax:        empty.Tax,
			Shipping:   empty.Shipping,
			Total:      empty.Total,
		}, nil
	}
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	cartLines := aggregate.Lines()
	lines := make([]CartLineResponse, 0, len(cartLines))
	for _, l := range cartLines {
		lines = append(lines, CartLineResponse{
			ItemID:    l.ItemID(),
			Name:      l.Name(),
			UnitPrice: l.UnitPrice(),
			Quantity:  l.Quantity(),
			Subtotal:  l.Subtotal(),
		})
	}

	totals := aggregate.Totals()
	return GetCartQueryResponse{
		CustomerID: aggregate.CustomerID(),
		Lines:      lines,
		Subtotal:   totals.Subtotal,
		Tax:        totals.Tax,
		Shipping:   totals.Shipping,
		Total:      totals.Total,
	}, nil
}

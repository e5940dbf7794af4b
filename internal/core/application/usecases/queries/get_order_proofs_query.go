package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderProofsQueryIsNotConstructed = errors.New(
	"GetOrderProofsQuery must be created via NewGetOrderProofsQuery constructor",
)

// GetOrderProofsQuery retrieves an order's proof ledger, oldest record first.
type GetOrderProofsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderProofsQuery creates a query for the given order's proofs.
func NewGetOrderProofsQuery(orderID kernel.UUID) (GetOrderProofsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderProofsQuery{}, err
	}

	return GetOrderProofsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderProofsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderProofsQueryIsNotConstructed)
}

// OrderID returns the order whose ledger is requested.
func (q GetOrderProofsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ProofResponse is one record of an order's proof ledger.
type ProofResponse struct {
	ID        kernel.UUID
	ImageRef  string
	CreatedAt time.Time
}

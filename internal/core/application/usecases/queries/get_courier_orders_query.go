package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCourierOrdersQueryIsNotConstructed = errors.New(
	"GetCourierOrdersQuery must be created via NewGetCourierOrdersQuery constructor",
)

// GetCourierOrdersQuery retrieves a courier's work list, partitioned by
// where each order sits in its lifecycle.
//
// Example:
//
//	query, _ := NewGetCourierOrdersQuery(courierID)
//	work, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d new, %d active, %d done\n",
//	    len(work.New), len(work.Active), len(work.Completed))
type GetCourierOrdersQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierOrdersQuery creates a query for the given courier.
func NewGetCourierOrdersQuery(courierID kernel.UUID) (GetCourierOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierOrdersQuery{}, err
	}

	return GetCourierOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOrdersQueryIsNotConstructed)
}

// CourierID returns the courier whose orders are requested.
func (q GetCourierOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// CourierOrderResponse is one order on a courier's work list.
type CourierOrderResponse struct {
	ID        kernel.UUID
	Status    string
	Address   string
	Total     kernel.Money
	CodAmount kernel.Money
}

// GetCourierOrdersQueryResponse partitions a courier's orders:
// New awaits acceptance, Active is in the courier's hands, and Completed
// covers every terminal outcome.
type GetCourierOrdersQueryResponse struct {
	New       []CourierOrderResponse
	Active    []CourierOrderResponse
	Completed []CourierOrderResponse
}

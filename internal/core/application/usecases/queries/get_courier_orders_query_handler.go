package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCourierOrdersQueryHandler reads a courier's order partitions from the
// database. It is a pure projection: no aggregate is rehydrated.
type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierOrdersQueryHandler creates a handler for courier work lists.
// Requires a GORM database connection for query execution.
func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

// Handle executes the courier orders query.
// Orders are partitioned by status: Assigned into New, PickedUp and
// OutForDelivery into Active, the terminal statuses into Completed.
// Each partition is sorted by order ID for stable output.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) (GetCourierOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierOrdersQueryResponse{}, err
	}

	response := GetCourierOrdersQueryResponse{
		New:       make([]CourierOrderResponse, 0),
		Active:    make([]CourierOrderResponse, 0),
		Completed: make([]CourierOrderResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			address,
			total,
			cod_amount
		FROM orders
		WHERE courier_id = ?
		ORDER BY id
	`, query.CourierID().Bytes()).Rows()
	if err != nil {
		return GetCourierOrdersQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var status int
		var address string
		var total, codAmount decimal.Decimal

		if err = rows.Scan(&id, &status, &address, &total, &codAmount); err != nil {
			return GetCourierOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetCourierOrdersQueryResponse{}, idErr
		}

		totalMoney, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return GetCourierOrdersQueryResponse{}, moneyErr
		}
		codMoney, moneyErr := kernel.NewMoney(codAmount)
		if moneyErr != nil {
			return GetCourierOrdersQueryResponse{}, moneyErr
		}

		item := CourierOrderResponse{
			ID:        orderID,
			Status:    order.Status(status).String(),
			Address:   address,
			Total:     totalMoney,
			CodAmount: codMoney,
		}

		switch order.Status(status) {
		case order.StatusAssigned:
			response.New = append(response.New, item)
		case order.StatusPickedUp, order.StatusOutForDelivery:
			response.Active = append(response.Active, item)
		case order.StatusDelivered, order.StatusRejected, order.StatusCancelled:
			response.Completed = append(response.Completed, item)
		}
	}

	if err = rows.Err(); err != nil {
		return GetCourierOrdersQueryResponse{}, err
	}

	return response, nil
}

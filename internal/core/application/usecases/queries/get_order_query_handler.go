package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order's fulfillment view from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order views.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the order view query.
// Returns errs.ErrObjectNotFound when no order has the requested identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			address,
			total,
			cod_amount,
			cash_collected,
			delivered_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var id uuid.UUID
	var status int
	var address string
	var total, codAmount decimal.Decimal
	var cashCollected decimal.NullDecimal
	var deliveredAt sql.NullTime

	if err = rows.Scan(&id, &status, &address, &total, &codAmount, &cashCollected, &deliveredAt); err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	totalMoney, err := kernel.NewMoney(total)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	codMoney, err := kernel.NewMoney(codAmount)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{
		ID:        orderID,
		Status:    order.Status(status).String(),
		Address:   address,
		Total:     totalMoney,
		CodAmount: codMoney,
	}

	if cashCollected.Valid {
		cash, moneyErr := kernel.NewMoney(cashCollected.Decimal)
		if moneyErr != nil {
			return GetOrderQueryResponse{}, moneyErr
		}
		response.CashCollected = &cash
	}

	if deliveredAt.Valid {
		stamp := deliveredAt.Time
		response.DeliveredAt = &stamp
	}

	return response, nil
}

package http

import "time"

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddCartLineRequest is the body of POST /api/v1/cart/items.
type AddCartLineRequest struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartLineRequest is the body of PUT /api/v1/cart/items/:itemId.
type UpdateCartLineRequest struct {
	Quantity int `json:"quantity"`
}

// CartLine is one priced line in the cart snapshot.
type CartLine struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// Cart is the snapshot returned by GET /api/v1/cart.
type Cart struct {
	Lines    []CartLine `json:"lines"`
	Subtotal string     `json:"subtotal"`
	Tax      string     `json:"tax"`
	Shipping string     `json:"shipping"`
	Total    string     `json:"total"`
}

// CheckoutRequest is the body of POST /api/v1/checkout.
type CheckoutRequest struct {
	PaymentMethod string  `json:"paymentMethod"`
	Recipient     string  `json:"recipient"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// CheckoutResponse carries the identifier of the newly created order.
type CheckoutResponse struct {
	OrderID string `json:"orderId"`
}

// CompleteDeliveryRequest is the body of the complete endpoint.
// CashCollected is a decimal string; omit it (or send "0") for prepaid orders.
type CompleteDeliveryRequest struct {
	Otp           string `json:"otp"`
	CashCollected string `json:"cashCollected"`
}

// UploadProofRequest is the body of the proof upload endpoint.
type UploadProofRequest struct {
	ImageRef string `json:"imageRef"`
}

// Proof is one delivery evidence record.
type Proof struct {
	ID        string    `json:"id"`
	ImageRef  string    `json:"imageRef"`
	CreatedAt time.Time `json:"createdAt"`
}

// Order is the fulfillment view returned by the transition endpoints, so the
// caller sees the state it just changed without a second round trip.
type Order struct {
	ID            string     `json:"id"`
	Status        string     `json:"status"`
	Address       string     `json:"address"`
	Total         string     `json:"total"`
	CodAmount     string     `json:"codAmount"`
	CashCollected *string    `json:"cashCollected,omitempty"`
	DeliveredAt   *time.Time `json:"deliveredAt,omitempty"`
}

// CourierOrder is one order in a courier's work list.
type CourierOrder struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Address   string `json:"address"`
	Total     string `json:"total"`
	CodAmount string `json:"codAmount"`
}

// CourierOrders is the partitioned work list returned by GET /api/v1/courier/orders.
type CourierOrders struct {
	New       []CourierOrder `json:"new"`
	Active    []CourierOrder `json:"active"`
	Completed []CourierOrder `json:"completed"`
}

// NewCourier is the body of POST /api/v1/couriers.
type NewCourier struct {
	Name string `json:"name"`
}

// CourierCreated carries the identifier of the newly registered courier.
type CourierCreated struct {
	ID string `json:"id"`
}

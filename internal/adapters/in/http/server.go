// Package http exposes the fulfillment use cases over HTTP/JSON.
// Handlers translate transport concerns (headers, bodies, status codes) and
// delegate all business decisions to the command and query handlers.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers. Authentication happens upstream; these carry the already
// established identity. A request without a customer ID falls back to the
// guest token, whose cart lives in process memory.
const (
	headerCustomerID = "X-Customer-ID"
	headerCourierID  = "X-Courier-ID"
	headerGuestToken = "X-Guest-Token"
)

// CartHandlers bundles the cart use cases bound to one cart backend.
// The server keeps two sets: one over postgres for signed-in customers and
// one over the in-process store for guests.
type CartHandlers struct {
	AddLine    commands.AddCartLineCommandHandler
	UpdateLine commands.UpdateCartLineCommandHandler
	RemoveLine commands.RemoveCartLineCommandHandler
	Clear      commands.ClearCartCommandHandler
	GetCart    queries.GetCartQueryHandler
}

// Server routes HTTP requests to the application's use cases.
type Server struct {
	customerCarts CartHandlers
	guestCarts    CartHandlers

	checkoutHandler commands.CheckoutCommandHandler

	acceptHandler      commands.AcceptOrderCommandHandler
	declineHandler     commands.DeclineOrderCommandHandler
	startHandler       commands.StartDeliveryCommandHandler
	completeHandler    commands.CompleteDeliveryCommandHandler
	cancelHandler      commands.CancelOrderCommandHandler
	attachProofHandler commands.AttachProofCommandHandler

	createCourierHandler commands.CreateCourierCommandHandler

	getOrderHandler      queries.GetOrderQueryHandler
	courierOrdersHandler queries.GetCourierOrdersQueryHandler
	orderProofsHandler   queries.GetOrderProofsQueryHandler
}

// NewServer creates an HTTP server wired to the given use case handlers.
func NewServer(
	customerCarts CartHandlers,
	guestCarts CartHandlers,
	checkoutHandler commands.CheckoutCommandHandler,
	acceptHandler commands.AcceptOrderCommandHandler,
	declineHandler commands.DeclineOrderCommandHandler,
	startHandler commands.StartDeliveryCommandHandler,
	completeHandler commands.CompleteDeliveryCommandHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	attachProofHandler commands.AttachProofCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	courierOrdersHandler queries.GetCourierOrdersQueryHandler,
	orderProofsHandler queries.GetOrderProofsQueryHandler,
) *Server {
	return &Server{
		customerCarts:        customerCarts,
		guestCarts:           guestCarts,
		checkoutHandler:      checkoutHandler,
		acceptHandler:        acceptHandler,
		declineHandler:       declineHandler,
		startHandler:         startHandler,
		completeHandler:      completeHandler,
		cancelHandler:        cancelHandler,
		attachProofHandler:   attachProofHandler,
		createCourierHandler: createCourierHandler,
		getOrderHandler:      getOrderHandler,
		courierOrdersHandler: courierOrdersHandler,
		orderProofsHandler:   orderProofsHandler,
	}
}

// RegisterRoutes binds all endpoints on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartLine)
	api.PUT("/cart/items/:itemId", s.UpdateCartLine)
	api.DELETE("/cart/items/:itemId", s.RemoveCartLine)
	api.DELETE("/cart", s.ClearCart)
	api.POST("/checkout", s.Checkout)

	api.POST("/couriers", s.CreateCourier)
	api.GET("/courier/orders", s.ListCourierOrders)
	api.POST("/courier/orders/:orderId/accept", s.AcceptOrder)
	api.POST("/courier/orders/:orderId/decline", s.DeclineOrder)
	api.POST("/courier/orders/:orderId/start", s.StartDelivery)
	api.POST("/courier/orders/:orderId/complete", s.CompleteDelivery)
	api.POST("/courier/orders/:orderId/proofs", s.UploadProof)

	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.GET("/orders/:orderId/proofs", s.ListProofs)
}

// GetCart handles GET /api/v1/cart - returns the cart snapshot with totals.
func (s *Server) GetCart(ctx echo.Context) error {
	identity, handlers, err := s.cartIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	return s.respondCart(ctx, identity, handlers)
}

// AddCartLine handles POST /api/v1/cart/items - returns the updated cart.
func (s *Server) AddCartLine(ctx echo.Context) error {
	identity, handlers, err := s.cartIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body AddCartLineRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	itemID, err := kernel.UUIDFromString(body.ItemID)
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	unitPrice, err := kernel.NewMoneyFromString(body.UnitPrice)
	if err != nil {
		return badRequest(ctx, "invalid unit price")
	}

	cmd, err := commands.NewAddCartLineCommand(identity, itemID, body.Name, unitPrice, body.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = handlers.AddLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondCart(ctx, identity, handlers)
}

// UpdateCartLine handles PUT /api/v1/cart/items/:itemId - returns the updated cart.
// A quantity below 1 removes the line.
func (s *Server) UpdateCartLine(ctx echo.Context) error {
	identity, handlers, err := s.cartIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	var body UpdateCartLineRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCartLineCommand(identity, itemID, body.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = handlers.UpdateLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondCart(ctx, identity, handlers)
}

// RemoveCartLine handles DELETE /api/v1/cart/items/:itemId - returns the updated cart.
func (s *Server) RemoveCartLine(ctx echo.Context) error {
	identity, handlers, err := s.cartIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "invalid item id")
	}

	cmd, err := commands.NewRemoveCartLineCommand(identity, itemID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = handlers.RemoveLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondCart(ctx, identity, handlers)
}

// ClearCart handles DELETE /api/v1/cart - returns the emptied cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	identity, handlers, err := s.cartIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewClearCartCommand(identity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = handlers.Clear.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondCart(ctx, identity, handlers)
}

// Checkout handles POST /api/v1/checkout - converts the cart into an order.
// Requires a signed-in customer; guest carts must be claimed first.
func (s *Server) Checkout(ctx echo.Context) error {
	customerID, err := s.customerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body CheckoutRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	paymentMethod, err := order.PaymentMethodFromString(body.PaymentMethod)
	if err != nil {
		return badRequest(ctx, "invalid payment method")
	}

	location, err := kernel.NewGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	deliveryInfo, err := order.NewDeliveryInfo(body.Recipient, body.Address, body.Phone, location)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(orderID, customerID, paymentMethod, deliveryInfo)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.checkoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}

// CreateCourier handles POST /api/v1/couriers - registers an active courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var body NewCourier
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(courierID, body.Name)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CourierCreated{ID: courierID.String()})
}

// ListCourierOrders handles GET /api/v1/courier/orders.
func (s *Server) ListCourierOrders(ctx echo.Context) error {
	courierID, err := s.courierIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetCourierOrdersQuery(courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	partitions, err := s.courierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierOrders{
		New:       toCourierOrders(partitions.New),
		Active:    toCourierOrders(partitions.Active),
		Completed: toCourierOrders(partitions.Completed),
	})
}

// AcceptOrder handles POST /api/v1/courier/orders/:orderId/accept - returns the updated order.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, courierID, err := s.courierOrderIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.acceptHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondOrder(ctx, orderID)
}

// DeclineOrder handles POST /api/v1/courier/orders/:orderId/decline - returns the updated order.
func (s *Server) DeclineOrder(ctx echo.Context) error {
	orderID, courierID, err := s.courierOrderIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeclineOrderCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.declineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondOrder(ctx, orderID)
}

// StartDelivery handles POST /api/v1/courier/orders/:orderId/start - returns the updated order.
func (s *Server) StartDelivery(ctx echo.Context) error {
	orderID, courierID, err := s.courierOrderIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewStartDeliveryCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.startHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondOrder(ctx, orderID)
}

// CompleteDelivery handles POST /api/v1/courier/orders/:orderId/complete - returns the updated order.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, courierID, err := s.courierOrderIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var body CompleteDeliveryRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cashCollected := kernel.ZeroMoney()
	if body.CashCollected != "" {
		cashCollected, err = kernel.NewMoneyFromString(body.CashCollected)
		if err != nil {
			return badRequest(ctx, "invalid cash amount")
		}
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, courierID, body.Otp, cashCollected)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.completeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondOrder(ctx, orderID)
}

// UploadProof handles POST /api/v1/courier/orders/:orderId/proofs - returns the updated ledger.
func (s *Server) UploadProof(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var body UploadProofRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAttachProofCommand(orderID, body.ImageRef)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.attachProofHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondProofs(ctx, orderID, http.StatusCreated)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel - returns the updated order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	customerID, err := s.customerIdentity(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, customerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondOrder(ctx, orderID)
}

// ListProofs handles GET /api/v1/orders/:orderId/proofs.
func (s *Server) ListProofs(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	return s.respondProofs(ctx, orderID, http.StatusOK)
}

// cartIdentity resolves the cart owner and the matching cart backend.
// A customer ID selects the persistent cart; otherwise the guest token selects
// the in-process one.
func (s *Server) cartIdentity(ctx echo.Context) (kernel.UUID, *CartHandlers, error) {
	if raw := ctx.Request().Header.Get(headerCustomerID); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return kernel.UUID{}, nil, errors.New("invalid customer id")
		}
		return id, &s.customerCarts, nil
	}

	if raw := ctx.Request().Header.Get(headerGuestToken); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return kernel.UUID{}, nil, errors.New("invalid guest token")
		}
		return id, &s.guestCarts, nil
	}

	return kernel.UUID{}, nil, errors.New("customer id or guest token is required")
}

func (s *Server) customerIdentity(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(headerCustomerID)
	if raw == "" {
		return kernel.UUID{}, errors.New("customer id is required")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errors.New("invalid customer id")
	}
	return id, nil
}

func (s *Server) courierIdentity(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(headerCourierID)
	if raw == "" {
		return kernel.UUID{}, errors.New("courier id is required")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errors.New("invalid courier id")
	}
	return id, nil
}

func (s *Server) courierOrderIdentity(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	courierID, err := s.courierIdentity(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid order id")
	}

	return orderID, courierID, nil
}

// respondCart reads the cart back through the backend that was just mutated
// and returns the fresh snapshot, so every cart endpoint answers with the
// state the caller produced.
func (s *Server) respondCart(ctx echo.Context, identity kernel.UUID, handlers *CartHandlers) error {
	query, err := queries.NewGetCartQuery(identity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	snapshot, err := handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]CartLine, len(snapshot.Lines))
	for i, line := range snapshot.Lines {
		lines[i] = CartLine{
			ItemID:    line.ItemID.String(),
			Name:      line.Name,
			UnitPrice: line.UnitPrice.String(),
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal.String(),
		}
	}

	return ctx.JSON(http.StatusOK, Cart{
		Lines:    lines,
		Subtotal: snapshot.Subtotal.String(),
		Tax:      snapshot.Tax.String(),
		Shipping: snapshot.Shipping.String(),
		Total:    snapshot.Total.String(),
	})
}

// respondOrder returns the order's current fulfillment view, read after the
// transition committed.
func (s *Server) respondOrder(ctx echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := Order{
		ID:          view.ID.String(),
		Status:      view.Status,
		Address:     view.Address,
		Total:       view.Total.String(),
		CodAmount:   view.CodAmount.String(),
		DeliveredAt: view.DeliveredAt,
	}
	if view.CashCollected != nil {
		cash := view.CashCollected.String()
		response.CashCollected = &cash
	}

	return ctx.JSON(http.StatusOK, response)
}

// respondProofs returns the order's full proof ledger with the given status
// code (201 after an upload, 200 on a plain read).
func (s *Server) respondProofs(ctx echo.Context, orderID kernel.UUID, code int) error {
	query, err := queries.NewGetOrderProofsQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	records, err := s.orderProofsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Proof, len(records))
	for i, record := range records {
		response[i] = Proof{
			ID:        record.ID.String(),
			ImageRef:  record.ImageRef,
			CreatedAt: record.CreatedAt,
		}
	}

	return ctx.JSON(code, response)
}

func toCourierOrders(items []queries.CourierOrderResponse) []CourierOrder {
	response := make([]CourierOrder, len(items))
	for i, item := range items {
		response[i] = CourierOrder{
			ID:        item.ID.String(),
			Status:    item.Status,
			Address:   item.Address,
			Total:     item.Total.String(),
			CodAmount: item.CodAmount.String(),
		}
	}
	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps use case failures onto HTTP status codes: missing objects
// to 404, rejected transitions and lost write races to 409, failed handoff
// verification to 422, acting on someone else's order to 403.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, cart.ErrLineNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, errs.ErrConcurrentUpdate):
		code = http.StatusConflict
	case errors.Is(err, services.ErrOtpMismatch),
		errors.Is(err, services.ErrCashAmountMismatch),
		errors.Is(err, cart.ErrEmptyCart):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, commands.ErrOrderNotAssignedToCourier),
		errors.Is(err, commands.ErrOrderNotOwnedByCustomer):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

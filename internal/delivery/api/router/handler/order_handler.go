package handler

import (
	"context"
	"log/slog"
	"net/http"

	"solarjuice/internal/delivery/api/response"
	deliverycontext "solarjuice/internal/delivery/context"
	"solarjuice/internal/domain/entity"
	"solarjuice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves ordering for customers and the order queue for shopkeepers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	ShopID     string `json:"shop_id" validate:"required,uuid"`
	GlassCount int    `json:"glass_count" validate:"gt=0"`
}

// CreateOrder places an order for the customer
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateOrderRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), actor.UserID, &usecase.CreateOrderInput{
		ShopID:     uuid.MustParse(req.ShopID),
		GlassCount: req.GlassCount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListCustomerOrders lists the customer's orders, newest first
func (h *OrderHandler) ListCustomerOrders(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}

	orders, err := h.orderUC.ListCustomerOrders(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// ListShopOrders lists the orders of the shopkeeper's shop, newest first
func (h *OrderHandler) ListShopOrders(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}

	orders, err := h.orderUC.ListShopOrders(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// ProcessOrder starts preparing a pending order
func (h *OrderHandler) ProcessOrder(c echo.Context) error {
	return h.advance(c, h.orderUC.ProcessOrder)
}

// CompleteOrder finishes an order being processed
func (h *OrderHandler) CompleteOrder(c echo.Context) error {
	return h.advance(c, h.orderUC.CompleteOrder)
}

func (h *OrderHandler) advance(c echo.Context, step func(ctx context.Context, shopkeeperID, orderID uuid.UUID) (*entity.Order, error)) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return unauthenticated(c)
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "order ID")
	}

	order, err := step(c.Request().Context(), actor.UserID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

package handler

import (
	"log/slog"

	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler exposes checkout and the order history.
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

// PlaceOrder checks the cart out.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req usecase.PlaceOrderInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.orderUC.PlaceOrder(req)
	if err != nil {
		return err
	}

	return response.Created(c, order)
}

// ListOrders returns orders filtered by ?filter=all|active|completed.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	filter, ok := entity.ParseOrderFilter(c.QueryParam("filter"))
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails("filter must be all, active or completed")
	}

	return response.OK(c, h.orderUC.ListOrders(filter))
}

// UpdateStatus moves an order to a new status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req usecase.UpdateOrderStatusInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id := c.Param("id")
	state, found, err := h.orderUC.UpdateStatus(id, req.Status)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrOrderNotFound.WithDetails(id)
	}

	return response.OK(c, state)
}

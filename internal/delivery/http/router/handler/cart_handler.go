package handler

import (
	"log/slog"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler exposes the cart container.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// cartView is the cart snapshot with its derived totals.
type cartView struct {
	Items      []entity.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice string            `json:"totalPrice"`
}

func viewOf(state entity.CartState) cartView {
	return cartView{
		Items:      state.Items,
		TotalItems: state.TotalItems(),
		TotalPrice: state.TotalPrice().StringFixed(2),
	}
}

// GetCart returns the cart with its totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.OK(c, viewOf(h.cartUC.Snapshot()))
}

// AddItem adds a product. A missing or non-positive quantity adds one unit.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req usecase.AddCartItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	state := h.cartUC.AddItem(req.Product, quantity)

	return response.Created(c, viewOf(state))
}

// UpdateItem sets a line's quantity; zero or less removes the line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req usecase.UpdateCartItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid quantity input")
	}

	state := h.cartUC.UpdateQuantity(c.Param("id"), req.Quantity)

	return response.OK(c, viewOf(state))
}

// RemoveItem drops a line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	state := h.cartUC.RemoveItem(c.Param("id"))

	return response.OK(c, viewOf(state))
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	return response.OK(c, viewOf(h.cartUC.Clear()))
}

// Summary prices the cart for checkout.
func (h *CartHandler) Summary(c echo.Context) error {
	return response.OK(c, h.cartUC.Summary())
}

// ItemsByStore groups the cart lines by store.
func (h *CartHandler) ItemsByStore(c echo.Context) error {
	return response.OK(c, h.cartUC.ItemsByStore())
}

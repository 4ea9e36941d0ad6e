package usecase

import (
	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// PlaceOrderInput selects the delivery address and payment method at checkout.
// An empty AddressID uses the default address.
type PlaceOrderInput struct {
	AddressID     string `json:"addressId"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

// UpdateOrderStatusInput moves an order through fulfilment.
type UpdateOrderStatusInput struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// OrderUsecase is the order history container plus checkout.
type OrderUsecase interface {
	Container[entity.OrderState]

	// PlaceOrder takes the cart and turns what it held into a pending order.
	PlaceOrder(input PlaceOrderInput) (*entity.Order, error)
	ListOrders(filter entity.OrderFilter) []entity.Order
	// UpdateStatus returns the resulting history and reports whether an order with id existed.
	UpdateStatus(id string, status entity.OrderStatus) (entity.OrderState, bool, error)
}

package usecase

import (
	"bazaar/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// AddCartItemInput adds a product to the cart.
type AddCartItemInput struct {
	Product  entity.Product `json:"product" validate:"required"`
	Quantity int            `json:"quantity"`
}

// UpdateCartItemInput sets the quantity of a cart line. Zero or less removes it.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

// CartUsecase is the cart container.
type CartUsecase interface {
	Container[entity.CartState]

	AddItem(product entity.Product, quantity int) entity.CartState
	RemoveItem(itemID string) entity.CartState
	UpdateQuantity(itemID string, quantity int) entity.CartState
	Clear() entity.CartState
	// Take empties the cart and returns what it held, in one step.
	Take() entity.CartState

	TotalPrice() decimal.Decimal
	TotalItems() int
	// Summary prices the cart with the configured delivery fee and tax rate.
	Summary() entity.CheckoutSummary
	ItemsByStore() []entity.StoreGroup
}

package entity

import "github.com/shopspring/decimal"

// Product is the catalog shape handed to the cart when a shopper adds an item.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice"`
	Image         string           `json:"image"`
	StoreID       string           `json:"storeId"`
	StoreName     string           `json:"storeName"`
}

// CartItem is one product line in the cart. ID is cart-local and distinct from ProductID.
type CartItem struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"productId"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice"`
	Image         string           `json:"image"`
	Quantity      int              `json:"quantity"`
	StoreID       string           `json:"storeId"`
	StoreName     string           `json:"storeName"`
}

// EffectivePrice is the discount price when one is set and positive, otherwise the list price.
func (i CartItem) EffectivePrice() decimal.Decimal {
	if i.DiscountPrice != nil && i.DiscountPrice.IsPositive() {
		return *i.DiscountPrice
	}

	return i.Price
}

// LineTotal is quantity times the effective price.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.EffectivePrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i CartItem) clone() CartItem {
	c := i
	if i.DiscountPrice != nil {
		d := *i.DiscountPrice
		c.DiscountPrice = &d
	}

	return c
}

// CheckoutSummary is the price breakdown shown before an order is placed.
type CheckoutSummary struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// StoreGroup is the cart lines belonging to one store, in cart order.
type StoreGroup struct {
	StoreID   string     `json:"storeId"`
	StoreName string     `json:"storeName"`
	Items     []CartItem `json:"items"`
}

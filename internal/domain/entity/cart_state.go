package entity

import (
	"slices"

	"github.com/shopspring/decimal"
)

// CartState is the ordered list of cart lines.
//
// Invariants: at most one line per ProductID, and every line has Quantity >= 1.
// Totals are always computed from Items; nothing derived is stored.
type CartState struct {
	Items []CartItem `json:"items"`
}

// Clone returns a deep copy of the cart.
func (s CartState) Clone() CartState {
	items := make([]CartItem, len(s.Items))
	for i, item := range s.Items {
		items[i] = item.clone()
	}

	return CartState{Items: items}
}

// Find returns the line with the given cart-local id.
func (s CartState) Find(itemID string) (CartItem, bool) {
	idx := slices.IndexFunc(s.Items, func(it CartItem) bool { return it.ID == itemID })
	if idx < 0 {
		return CartItem{}, false
	}

	return s.Items[idx].clone(), true
}

// FindByProduct returns the line holding productID.
func (s CartState) FindByProduct(productID string) (CartItem, bool) {
	idx := slices.IndexFunc(s.Items, func(it CartItem) bool { return it.ProductID == productID })
	if idx < 0 {
		return CartItem{}, false
	}

	return s.Items[idx].clone(), true
}

// AddItem increments the existing line for product.ID by quantity, or appends a
// new line with id newID copied from product. A line whose quantity ends up
// below one is dropped.
func (s CartState) AddItem(product Product, quantity int, newID string) CartState {
	next := s.Clone()

	idx := slices.IndexFunc(next.Items, func(it CartItem) bool { return it.ProductID == product.ID })
	if idx >= 0 {
		next.Items[idx].Quantity += quantity
		if next.Items[idx].Quantity <= 0 {
			next.Items = slices.Delete(next.Items, idx, idx+1)
		}

		return next
	}

	if quantity <= 0 {
		return next
	}

	item := CartItem{
		ID:        newID,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  quantity,
		StoreID:   product.StoreID,
		StoreName: product.StoreName,
	}
	if product.DiscountPrice != nil {
		d := *product.DiscountPrice
		item.DiscountPrice = &d
	}
	next.Items = append(next.Items, item)

	return next
}

// RemoveItem drops the line with itemID; absent ids are ignored.
func (s CartState) RemoveItem(itemID string) CartState {
	next := s.Clone()
	next.Items = slices.DeleteFunc(next.Items, func(it CartItem) bool { return it.ID == itemID })

	return next
}

// UpdateQuantity sets the quantity of itemID; quantity <= 0 removes the line.
func (s CartState) UpdateQuantity(itemID string, quantity int) CartState {
	if quantity <= 0 {
		return s.RemoveItem(itemID)
	}

	next := s.Clone()
	for i := range next.Items {
		if next.Items[i].ID == itemID {
			next.Items[i].Quantity = quantity
		}
	}

	return next
}

// Clear empties the cart.
func (s CartState) Clear() CartState {
	return CartState{Items: []CartItem{}}
}

// TotalPrice sums quantity times effective price over all lines.
func (s CartState) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.LineTotal())
	}

	return total
}

// TotalItems sums the quantities of all lines.
func (s CartState) TotalItems() int {
	count := 0
	for _, item := range s.Items {
		count += item.Quantity
	}

	return count
}

// IsEmpty reports whether the cart has no lines.
func (s CartState) IsEmpty() bool {
	return len(s.Items) == 0
}

// Summary prices the cart for checkout: tax is charged on the subtotal and the
// delivery fee is flat.
func (s CartState) Summary(deliveryFee, taxRate decimal.Decimal) CheckoutSummary {
	subtotal := s.TotalPrice()
	tax := subtotal.Mul(taxRate).Round(2)

	return CheckoutSummary{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		Total:       subtotal.Add(deliveryFee).Add(tax),
	}
}

// ItemsByStore groups lines by store, keeping first-seen store order.
func (s CartState) ItemsByStore() []StoreGroup {
	groups := []StoreGroup{}
	index := map[string]int{}

	for _, item := range s.Items {
		i, ok := index[item.StoreID]
		if !ok {
			i = len(groups)
			index[item.StoreID] = i
			groups = append(groups, StoreGroup{StoreID: item.StoreID, StoreName: item.StoreName})
		}
		groups[i].Items = append(groups[i].Items, item.clone())
	}

	return groups
}

package entity

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment stage of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady,
		OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsCompleted reports whether the order has left the active pipeline.
func (s OrderStatus) IsCompleted() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderFilter selects orders for the order lists.
type OrderFilter string

const (
	OrderFilterAll       OrderFilter = "all"
	OrderFilterActive    OrderFilter = "active"
	OrderFilterCompleted OrderFilter = "completed"
)

// ParseOrderFilter maps a query value to a filter; empty means all.
func ParseOrderFilter(s string) (OrderFilter, bool) {
	switch OrderFilter(s) {
	case "", OrderFilterAll:
		return OrderFilterAll, true
	case OrderFilterActive:
		return OrderFilterActive, true
	case OrderFilterCompleted:
		return OrderFilterCompleted, true
	default:
		return "", false
	}
}

// Matches reports whether status passes the filter.
func (f OrderFilter) Matches(status OrderStatus) bool {
	switch f {
	case OrderFilterActive:
		return !status.IsCompleted()
	case OrderFilterCompleted:
		return status.IsCompleted()
	default:
		return true
	}
}

// OrderItem is a priced snapshot of a cart line at checkout.
type OrderItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
}

// Order is a placed order.
type Order struct {
	ID              string          `json:"id"`
	Items           []OrderItem     `json:"items"`
	Status          OrderStatus     `json:"status"`
	PlacedAt        time.Time       `json:"date"`
	DeliveryAddress Address         `json:"deliveryAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	StoreID         string          `json:"storeId"`
	StoreName       string          `json:"storeName"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"deliveryFee"`
	Tax             decimal.Decimal `json:"tax"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
}

func (o Order) clone() Order {
	c := o
	c.Items = slices.Clone(o.Items)

	return c
}

// NewOrder prices cart into an order addressed to address.
func NewOrder(id string, cart CartState, summary CheckoutSummary, address Address, paymentMethod string, placedAt time.Time) Order {
	items := make([]OrderItem, 0, len(cart.Items))
	discount := decimal.Zero
	for _, line := range cart.Items {
		items = append(items, OrderItem{
			ID:        line.ID,
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.EffectivePrice(),
			Quantity:  line.Quantity,
			Image:     line.Image,
		})
		qty := decimal.NewFromInt(int64(line.Quantity))
		discount = discount.Add(line.Price.Sub(line.EffectivePrice()).Mul(qty))
	}

	order := Order{
		ID:              id,
		Items:           items,
		Status:          OrderStatusPending,
		PlacedAt:        placedAt,
		DeliveryAddress: address,
		PaymentMethod:   paymentMethod,
		Subtotal:        summary.Subtotal,
		DeliveryFee:     summary.DeliveryFee,
		Tax:             summary.Tax,
		Discount:        discount,
		Total:           summary.Total,
	}
	if len(cart.Items) > 0 {
		order.StoreID = cart.Items[0].StoreID
		order.StoreName = cart.Items[0].StoreName
	}

	return order
}

// OrderState is the local order history, newest first.
type OrderState struct {
	Orders []Order `json:"orders"`
}

// Clone returns a deep copy of the history.
func (s OrderState) Clone() OrderState {
	orders := make([]Order, len(s.Orders))
	for i, o := range s.Orders {
		orders[i] = o.clone()
	}

	return OrderState{Orders: orders}
}

// Add prepends order.
func (s OrderState) Add(order Order) OrderState {
	next := s.Clone()
	next.Orders = append([]Order{order.clone()}, next.Orders...)

	return next
}

// UpdateStatus sets the status of order id; unknown ids are ignored.
func (s OrderState) UpdateStatus(id string, status OrderStatus) OrderState {
	next := s.Clone()
	for i := range next.Orders {
		if next.Orders[i].ID == id {
			next.Orders[i].Status = status
		}
	}

	return next
}

// Find returns the order with id.
func (s OrderState) Find(id string) (Order, bool) {
	idx := slices.IndexFunc(s.Orders, func(o Order) bool { return o.ID == id })
	if idx < 0 {
		return Order{}, false
	}

	return s.Orders[idx].clone(), true
}

// Filter returns the orders passing f, keeping history order.
func (s OrderState) Filter(f OrderFilter) []Order {
	out := []Order{}
	for _, o := range s.Orders {
		if f.Matches(o.Status) {
			out = append(out, o.clone())
		}
	}

	return out
}

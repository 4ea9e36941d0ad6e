package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	cart := CartState{}.
		AddItem(testProduct("a", "40", decPtr("35")), 2, "i-a").
		AddItem(testProduct("b", "10", nil), 1, "i-b")
	summary := cart.Summary(dec("40"), dec("0.05"))
	placedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	order := NewOrder("ORD-1", cart, summary, Address{ID: "addr"}, "cod", placedAt)

	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, "store-1", order.StoreID)
	require.Len(t, order.Items, 2)
	assert.True(t, dec("35").Equal(order.Items[0].Price))
	assert.True(t, dec("10").Equal(order.Discount))
	assert.True(t, dec("80").Equal(order.Subtotal))
	assert.True(t, dec("4").Equal(order.Tax))
	assert.True(t, dec("124").Equal(order.Total))
	assert.Equal(t, placedAt, order.PlacedAt)
}

func TestOrderState_AddAndUpdateStatus(t *testing.T) {
	s := OrderState{}.
		Add(Order{ID: "o1", Status: OrderStatusPending}).
		Add(Order{ID: "o2", Status: OrderStatusPending})

	assert.Equal(t, "o2", s.Orders[0].ID)

	s = s.UpdateStatus("o1", OrderStatusDelivered).UpdateStatus("missing", OrderStatusCancelled)
	o1, ok := s.Find("o1")
	require.True(t, ok)
	assert.Equal(t, OrderStatusDelivered, o1.Status)
}

func TestOrderState_Filter(t *testing.T) {
	s := OrderState{}
	for _, st := range []OrderStatus{OrderStatusPending, OrderStatusPreparing, OrderStatusDelivered, OrderStatusCancelled} {
		s = s.Add(Order{ID: string(st), Status: st})
	}

	assert.Len(t, s.Filter(OrderFilterAll), 4)
	assert.Len(t, s.Filter(OrderFilterActive), 2)
	completed := s.Filter(OrderFilterCompleted)
	require.Len(t, completed, 2)
	assert.Equal(t, "cancelled", completed[0].ID)
}

func TestParseOrderFilter(t *testing.T) {
	f, ok := ParseOrderFilter("")
	assert.True(t, ok)
	assert.Equal(t, OrderFilterAll, f)

	f, ok = ParseOrderFilter("active")
	assert.True(t, ok)
	assert.Equal(t, OrderFilterActive, f)

	_, ok = ParseOrderFilter("weird")
	assert.False(t, ok)
}

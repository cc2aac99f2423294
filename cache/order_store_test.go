package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineItem(id string, price float64, qty int) models.OrderItem {
	return models.OrderItem{
		ProductID:   id,
		ProductName: "Product " + id,
		Price:       price,
		Quantity:    qty,
		Subtotal:    price * float64(qty),
	}
}

func TestCreateOrderGeneratesUniqueNumbers(t *testing.T) {
	ResetOrders()
	t.Cleanup(ResetOrders)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		order := CreateOrder("sess-1", []models.OrderItem{lineItem("p1", 10, 1)}, "desktop", "Chrome")
		require.NotEmpty(t, order.ID)
		require.NotEmpty(t, order.OrderNumber)
		assert.False(t, seen[order.OrderNumber], "duplicate order number %s", order.OrderNumber)
		seen[order.OrderNumber] = true
	}
}

func TestCreateOrderNumberFormat(t *testing.T) {
	ResetOrders()
	t.Cleanup(ResetOrders)

	order := CreateOrder("sess-1", []models.OrderItem{lineItem("p1", 10, 1)}, "mobile", "Safari")

	assert.Equal(t, fmt.Sprintf("VRV-%d-000001", time.Now().Year()), order.OrderNumber)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "mobile", order.DeviceType)
}

func TestCreateOrderTotals(t *testing.T) {
	ResetOrders()
	t.Cleanup(ResetOrders)

	order := CreateOrder("sess-1", []models.OrderItem{
		lineItem("p1", 10, 2),
		lineItem("p2", 5, 1),
	}, "desktop", "Firefox")

	assert.InDelta(t, 25.0, order.Subtotal, 0.001)
	assert.InDelta(t, 2.0, order.Tax, 0.001)
	assert.InDelta(t, 27.0, order.TotalAmount, 0.001)
	assert.Equal(t, 3, order.ItemCount())
}

func TestOrdersBySessionNewestFirst(t *testing.T) {
	ResetOrders()
	t.Cleanup(ResetOrders)

	first := CreateOrder("sess-1", []models.OrderItem{lineItem("p1", 10, 1)}, "", "")
	CreateOrder("sess-2", []models.OrderItem{lineItem("p1", 10, 1)}, "", "")
	second := CreateOrder("sess-1", []models.OrderItem{lineItem("p2", 5, 1)}, "", "")

	history := OrdersBySession("sess-1")
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)

	assert.Empty(t, OrdersBySession("sess-3"))
}

func TestUpdateOrderStatus(t *testing.T) {
	ResetOrders()
	t.Cleanup(ResetOrders)

	order := CreateOrder("sess-1", []models.OrderItem{lineItem("p1", 10, 1)}, "", "")

	updated, found := UpdateOrderStatus(order.ID, "shipped")
	require.True(t, found)
	assert.Equal(t, "shipped", updated.Status)

	_, found = UpdateOrderStatus("missing", "shipped")
	assert.False(t, found)
}

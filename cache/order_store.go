package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/google/uuid"
)

// ── Order store ──────────────────────────────────────────────────────────────
// Orders live for the process lifetime. Order numbers are unique per
// invocation: a monotonically increasing sequence scoped to the year,
// VRV-2026-000001 style. The number is opaque to every other component.

var (
	orderMu  sync.RWMutex
	orders   []models.Order
	orderSeq int
)

// CreateOrder records a new order and returns it with its generated
// identifier and order number.
func CreateOrder(sessionID string, items []models.OrderItem, deviceType, browser string) models.Order {
	orderMu.Lock()
	defer orderMu.Unlock()

	now := time.Now()
	orderSeq++

	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Subtotal
	}
	tax := subtotal * 0.08

	order := models.Order{
		ID:          uuid.Must(uuid.NewV7()).String(),
		SessionID:   sessionID,
		OrderNumber: fmt.Sprintf("VRV-%d-%06d", now.Year(), orderSeq),
		Items:       items,
		Subtotal:    subtotal,
		Tax:         tax,
		TotalAmount: subtotal + tax,
		Status:      "pending",
		DeviceType:  deviceType,
		Browser:     browser,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	orders = append(orders, order)
	return order
}

// GetOrder looks an order up by id.
func GetOrder(id string) (models.Order, bool) {
	orderMu.RLock()
	defer orderMu.RUnlock()
	for _, o := range orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// OrdersBySession returns the orders placed by one visitor session,
// newest first.
func OrdersBySession(sessionID string) []models.Order {
	orderMu.RLock()
	defer orderMu.RUnlock()
	result := make([]models.Order, 0)
	for i := len(orders) - 1; i >= 0; i-- {
		if orders[i].SessionID == sessionID {
			result = append(result, orders[i])
		}
	}
	return result
}

// AllOrders returns every order, newest first (admin view).
func AllOrders() []models.Order {
	orderMu.RLock()
	defer orderMu.RUnlock()
	result := make([]models.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		result = append(result, orders[i])
	}
	return result
}

// UpdateOrderStatus sets an order's status (admin operation).
func UpdateOrderStatus(id, status string) (models.Order, bool) {
	orderMu.Lock()
	defer orderMu.Unlock()
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			orders[i].UpdatedAt = time.Now()
			return orders[i], true
		}
	}
	return models.Order{}, false
}

// ResetOrders drops all orders (tests).
func ResetOrders() {
	orderMu.Lock()
	defer orderMu.Unlock()
	orders = nil
	orderSeq = 0
}

package models

import "time"

// Order represents a complete checkout
type Order struct {
	ID          string      `json:"id"`
	SessionID   string      `json:"session_id"`
	OrderNumber string      `json:"order_number"` // VRV-2026-000001
	Items       []OrderItem `json:"items"`
	Subtotal    float64     `json:"subtotal"`
	Tax         float64     `json:"tax"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"` // pending, confirmed, shipped, delivered, cancelled
	DeviceType  string      `json:"device_type,omitempty"`
	Browser     string      `json:"browser,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderItem represents an individual product in an order
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// ItemCount is the total quantity across all line items.
func (o Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// OrderHistoryResponse for the session's order list view
type OrderHistoryResponse struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func (o Order) ToHistoryResponse() OrderHistoryResponse {
	return OrderHistoryResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		ItemCount:   o.ItemCount(),
		CreatedAt:   o.CreatedAt,
	}
}

// UpdateOrderStatusRequest for admin order management
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed shipped delivered cancelled"`
}

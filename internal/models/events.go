package models

import "time"

// OrderPlacedEvent is published when a customer checks out
type OrderPlacedEvent struct {
	OrderID      string           `json:"order_id"`
	CustomerID   int              `json:"customer_id"`
	CustomerName string           `json:"customer_name"`
	TotalAmount  float64          `json:"total_amount"`
	Items        []OrderItemEvent `json:"items"`
	PlacedAt     time.Time        `json:"placed_at"`
}

type OrderItemEvent struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

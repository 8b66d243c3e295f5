package models

import "time"

// Order is the receipt produced when a customer places an order. It is not
// stored anywhere.
type Order struct {
	ID           string      `json:"id"`
	CustomerID   int         `json:"customer_id"`
	CustomerName string      `json:"customer_name"`
	TotalAmount  float64     `json:"total_amount"`
	Items        []OrderItem `json:"items"`
	PlacedAt     time.Time   `json:"placed_at"`
}

type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

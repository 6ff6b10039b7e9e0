package models

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPaid      OrderStatus = "PAID"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Order est immuable une fois créée : le registre des commandes est
// strictement append-only.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Items     []CartItem  `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the statuses the backend understands.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

// Order is the snapshot submitted at checkout. The backend owns the order
// after submission; the client keeps no reference to it.
//
// IdempotencyKey is generated client-side per submission attempt so a
// retried submit cannot create a duplicate order.
type Order struct {
	Items          []CartLine `json:"items"`
	OrderValue     float64    `json:"orderValue"`
	Email          string     `json:"email"`
	UserID         string     `json:"userId"`
	IdempotencyKey string     `json:"idempotencyKey,omitempty"`
}

// OrderRecord is a backend-owned order as returned by the orders endpoints.
type OrderRecord struct {
	ID         string      `json:"_id"`
	Items      []CartLine  `json:"items"`
	OrderValue float64     `json:"orderValue"`
	Email      string      `json:"email"`
	UserID     string      `json:"userId"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt,omitempty"`
}

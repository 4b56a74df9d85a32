package models

import (
	"fmt"
	"time"
)

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// ParseOrderStatus validates a raw status string against the enum.
// Unlike the optional query parameters, a bad status always fails the
// whole operation.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("invalid order status %q", s)
}

// Order represents a customer order. Total is derived from the items and is
// never settable on its own; it is recomputed on every create and update.
type Order struct {
	ID            int         `db:"id" json:"id"`
	CustomerName  string      `db:"customer_name" json:"customerName"`
	CustomerEmail string      `db:"customer_email" json:"customerEmail"`
	Total         float64     `db:"total" json:"total"`
	Status        OrderStatus `db:"status" json:"status"`
	CreatedAt     *time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     *time.Time  `db:"updated_at" json:"updatedAt"`
	Items         []OrderItem `db:"-" json:"items"`
}

// OrderItem belongs to exactly one order. Product name and unit price are
// snapshots taken when the order is created or updated; later product edits
// do not flow back into existing orders.
type OrderItem struct {
	ID          int     `db:"id" json:"id"`
	OrderID     int     `db:"order_id" json:"-"`
	ProductID   int     `db:"product_id" json:"productId"`
	ProductName string  `db:"product_name" json:"productName"`
	UnitPrice   float64 `db:"unit_price" json:"unitPrice"`
	Quantity    int     `db:"quantity" json:"quantity"`
}

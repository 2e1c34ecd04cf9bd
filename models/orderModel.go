package models

import "time"

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// OrderItem is a line-item snapshot taken at checkout time. It is stored as
// part of the order's JSON items column, never as its own row.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// Order freezes cart contents and prices at checkout-session-creation time.
// Items and Total never change after creation; only PaymentStatus and
// SessionID are written later.
type Order struct {
	ID            string      `json:"id" gorm:"primaryKey;size:36"`
	UserID        string      `json:"userId" gorm:"size:36;index"`
	Items         []OrderItem `json:"items" gorm:"serializer:json"`
	Total         float64     `json:"total"`
	PaymentStatus string      `json:"paymentStatus"`
	SessionID     string      `json:"sessionId"`
	CreatedAt     time.Time   `json:"createdAt"`
}

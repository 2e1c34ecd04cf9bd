package models

import (
	"time"

	"gorm.io/datatypes"
)

const TransactionStatusInitiated = "initiated"

// PaymentTransaction links an order to its hosted-checkout session, one row
// per session id. Rows are never deleted; PaymentStatus only ever moves
// forward (once "paid" it stays "paid").
type PaymentTransaction struct {
	ID            string            `json:"id" gorm:"primaryKey;size:36"`
	SessionID     string            `json:"sessionId" gorm:"uniqueIndex;size:255"`
	UserID        string            `json:"userId" gorm:"size:36"`
	OrderID       string            `json:"orderId" gorm:"size:36"`
	Amount        float64           `json:"amount"`
	Currency      string            `json:"currency"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"paymentStatus"`
	Metadata      datatypes.JSONMap `json:"metadata"`
	CreatedAt     time.Time         `json:"createdAt"`
}

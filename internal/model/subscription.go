package model

import (
	"time"

	"gorm.io/gorm"
)

// Subscription is the payment bookkeeping row, keyed by the order reference
// we generate at checkout. PaymentRef arrives later with the gateway
// redirect.
type Subscription struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      string         `json:"user_id" gorm:"not null;index"`
	OrderRef    string         `json:"order_ref" gorm:"not null;uniqueIndex"`
	PaymentRef  string         `json:"payment_ref,omitempty" gorm:"index"`
	Status      string         `json:"status" gorm:"not null;default:'pending'"` // "pending", "paid", "failed"
	Amount      float64        `json:"amount"`
	Currency    string         `json:"currency"`
	InitiatedAt time.Time      `json:"initiated_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

package model

import (
	"time"
)

// Entitlement is the source-of-truth "has paid" flag per user. Client-side
// caches of this flag are hints only; this row decides.
type Entitlement struct {
	UserID    string     `gorm:"primarykey" json:"user_id"`
	HasPaid   bool       `json:"has_paid" gorm:"not null;default:false"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID          string         `gorm:"primarykey" json:"id"`
	Provider    string         `json:"provider" gorm:"not null;uniqueIndex:idx_provider_subject"`
	ProviderID  string         `json:"provider_id" gorm:"not null;uniqueIndex:idx_provider_subject"`
	Email       string         `json:"email" gorm:"index"`
	DisplayName string         `json:"display_name"`
	AvatarURL   string         `json:"avatar_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

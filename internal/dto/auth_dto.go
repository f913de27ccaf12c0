package dto

// OAuthExchangeDTO is the profile handed over after the provider redirect,
// plus the anonymous session id whose results should be re-owned.
type OAuthExchangeDTO struct {
	Provider    string `json:"provider" binding:"required"`
	ProviderID  string `json:"provider_id" binding:"required"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
	AnonymousID string `json:"anonymous_id"`
}

// AuthResponseDTO returns the issued session token and the resolved profile.
type AuthResponseDTO struct {
	Token        string     `json:"token"`
	User         ProfileDTO `json:"user"`
	ReownedCount int64      `json:"reowned_count"`
}

type ProfileDTO struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

package domain

import "time"

// AppToken is a client application's credential for the backend API.
// Requests authenticated by an app token act on behalf of users of that app.
type AppToken struct {
	TokenHash  string     `json:"-"`
	AppID      string     `json:"app_id"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	RevokedAt  *time.Time `json:"-"`
}

// IsActive returns true if the token has not been revoked.
func (t AppToken) IsActive() bool {
	return t.RevokedAt == nil
}

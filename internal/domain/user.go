package domain

// User is an acting identity resolved by the auth layer. Website users carry
// AppID "WEBSITE"; users of client apps carry the app's ID with a user ID
// scoped to that app.
type User struct {
	ID    string `json:"id"`
	AppID string `json:"app_id"`

	Name string `json:"name,omitempty"`

	// BlockedReason is non-empty when moderation has blocked the user;
	// feedback they file defaults to BLOCKED status.
	BlockedReason string `json:"-"`
}

// IsAuthenticated reports whether the user carries a complete identity.
func (u User) IsAuthenticated() bool {
	return u.ID != "" && u.AppID != ""
}

package datasources

import (
	"context"

	"github.com/openfact/factcheck-api/internal/domain"
)

// UserFetcher retrieves a user's stored profile, including moderation state.
// Returns domain.ErrNotFound for users with no stored profile; callers treat
// such users as unblocked.
type UserFetcher interface {
	FetchUserByID(ctx context.Context, userID string) (domain.User, error)
}

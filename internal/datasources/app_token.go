package datasources

import (
	"context"

	"github.com/openfact/factcheck-api/internal/domain"
)

// AppTokenByHashGetter retrieves a client app token by its hash.
type AppTokenByHashGetter interface {
	GetAppTokenByHash(ctx context.Context, tokenHash string) (domain.AppToken, error)
}

// AppTokenLastUsedUpdater updates the last_used_at timestamp for a token.
type AppTokenLastUsedUpdater interface {
	UpdateAppTokenLastUsed(ctx context.Context, tokenHash string) error
}

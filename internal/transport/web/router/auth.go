package router

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/openfact/factcheck-api/internal/datasources"
	"github.com/openfact/factcheck-api/internal/domain"
)

// AppIDWebsite is the application ID assigned to users authenticating
// directly through the website rather than through a client app.
const AppIDWebsite = "WEBSITE"

// appUserHeader carries the acting user's ID on requests authenticated with
// an app token; the client backend is trusted to have verified it.
const appUserHeader = "X-App-User-Id"

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	User   domain.User
	Method domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"message":"%s"}`, err.Error())
					return
				}

				ctx := domain.ContextWithUser(r.Context(), result.User)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens. Users
// authenticated this way act under the WEBSITE app ID.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer auth0|") {
			return nil, nil
		}

		token, err := jwtValidator.ValidateToken(r.Context(), authHeader[len("Bearer auth0|"):])
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		claims := token.(*validator.ValidatedClaims)
		return &AuthResult{
			User: domain.User{
				ID:    claims.RegisteredClaims.Subject,
				AppID: AppIDWebsite,
			},
			Method: domain.AuthMethodAuth0,
		}, nil
	}, nil
}

// NewAppTokenValidator creates a validator for client app tokens. The token
// identifies the app; the acting user's ID comes from the X-App-User-Id
// header, which the client backend is trusted to supply.
// It asynchronously updates the token's last_used_at timestamp on successful validation.
func NewAppTokenValidator(
	ctx context.Context,
	tokenGetter datasources.AppTokenByHashGetter,
	lastUsedUpdater datasources.AppTokenLastUsedUpdater,
) AuthValidator {
	// Asynchronous best-effort tracking of the last used time of each token.
	// If the service restarts up to the buffer size of updates here might be lost, but this is tolerable.
	// Updates are dropped rather than blocking the request once the channel is full.
	updateChan := make(chan string, 100)
	go func() {
		for tokenHash := range updateChan {
			updateErr := lastUsedUpdater.UpdateAppTokenLastUsed(context.WithoutCancel(ctx), tokenHash)
			if updateErr != nil {
				logger := domain.LoggerFromContext(ctx)
				logger.WarnContext(context.WithoutCancel(ctx),
					"failed to update last used time for app token",
					"error", updateErr)
			}
		}
	}()

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer app_") {
			return nil, nil
		}

		fullToken := authHeader[len("Bearer "):]
		hash := sha256.Sum256([]byte(fullToken))
		tokenHash := hex.EncodeToString(hash[:])

		token, err := tokenGetter.GetAppTokenByHash(r.Context(), tokenHash)
		if err != nil {
			return nil, fmt.Errorf("invalid app token")
		}

		if !token.IsActive() {
			return nil, fmt.Errorf("app token is revoked")
		}

		userID := r.Header.Get(appUserHeader)
		if userID == "" {
			return nil, fmt.Errorf("missing %s header", appUserHeader)
		}

		select {
		case updateChan <- token.TokenHash:
		default:
		}

		return &AuthResult{
			User: domain.User{
				ID:    userID,
				AppID: token.AppID,
			},
			Method: domain.AuthMethodAppToken,
		}, nil
	}
}

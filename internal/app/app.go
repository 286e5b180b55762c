package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openfact/factcheck-api/internal/command"
	"github.com/openfact/factcheck-api/internal/datasources/mysql"
	"github.com/openfact/factcheck-api/internal/transport/web/router"
	"github.com/openfact/factcheck-api/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	repository, err := setupRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up repository: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx, repository)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	projectReplyCountsCmd := command.NewProjectReplyCounts(repository)

	recordFeedbackCmd := command.NewRecordReplyFeedback(
		repository,
		repository,
		repository,
		repository,
		projectReplyCountsCmd,
	)

	httpRouter, err := router.MakeRouter(
		repository,
		repository,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "HTTP_CACHE_MAX_AGE"),
		authMiddleware,
		recordFeedbackCmd,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func setupRepository(ctx context.Context) (*mysql.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func setupAuthMiddleware(
	ctx context.Context, repository *mysql.Repository,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "app_token":
			validators = append(validators, router.NewAppTokenValidator(ctx, repository, repository))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}

package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/openfact/factcheck-api/internal/command"
	"github.com/openfact/factcheck-api/internal/datasources"
	"github.com/openfact/factcheck-api/internal/domain"
	"github.com/openfact/factcheck-api/internal/transport/web/controller"
)

func MakeRouter(
	articles datasources.ArticleRepository,
	feedback datasources.FeedbackLister,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	cacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
	recordFeedbackCmd command.Command[command.RecordReplyFeedbackRequest, domain.ArticleReply],
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/articles/{article_id}", controller.ArticleGet{
		Fetcher:     articles,
		CacheMaxAge: cacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/{article_id}/replies/{reply_id}/feedback",
		requireAuthMiddleware(controller.FeedbackSet{
			Recorder: recordFeedbackCmd,
		})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/articles/{article_id}/replies/{reply_id}/feedback",
		requireAuthMiddleware(controller.FeedbackList{
			Lister: feedback,
		})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/rss", controller.RSS{
		FeedHostname:    rssFeedBaseURL,
		FeedPath:        "/rss",
		FeedAuthorName:  rssFeedAuthorName,
		FeedAuthorEmail: rssFeedAuthorEmail,
		Replies:         articles,
		CacheMaxAge:     cacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}

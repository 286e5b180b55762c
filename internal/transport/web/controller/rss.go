package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/feeds"
	"github.com/openfact/factcheck-api/internal/datasources"
	"github.com/openfact/factcheck-api/internal/domain"
)

const rssDefaultLimit = 20
const rssLimitMax = 100

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Replies         datasources.RepliedArticleLister
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       "Latest Fact-Check Replies",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of the most recent fact-check replies attached to disputed articles",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	limit := rssDefaultLimit
	if q := r.URL.Query().Get("limit"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil || parsed < 1 || parsed > rssLimitMax {
			ctx := r.Context()
			logger := domain.LoggerFromContext(ctx)
			logger.ErrorContext(ctx, "invalid limit in query string", "limit", q)

			w.WriteHeader(http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	items, err := c.Replies.ListLatestRepliedArticles(r.Context(), limit)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch replied articles for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, item := range items {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          item.ArticleID + "/" + item.ReplyID,
			IsPermaLink: "false",
			Title:       feedItemTitle(item),
			Link:        &feeds.Link{Href: c.FeedHostname + "/v1/articles/" + item.ArticleID},
			Description: item.ReplyText,
			Created:     item.RepliedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

func feedItemTitle(item domain.RepliedArticle) string {
	title := item.ArticleText
	if runes := []rune(title); len(runes) > 80 {
		title = string(runes[:80]) + "…"
	}
	return fmt.Sprintf("[%s] %s", item.ReplyType, title)
}

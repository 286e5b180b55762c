package datasources

import (
	"context"

	"github.com/openfact/factcheck-api/internal/domain"
)

// ArticleFetcher retrieves an article together with its reply entries.
// Returns domain.ErrNotFound if no article exists for the ID.
type ArticleFetcher interface {
	FetchArticleByID(ctx context.Context, articleID string) (domain.Article, error)
}

// ReplyFetcher retrieves a reply by ID.
// Returns domain.ErrNotFound if no reply exists for the ID.
type ReplyFetcher interface {
	FetchReplyByID(ctx context.Context, replyID string) (domain.Reply, error)
}

// ReplyFeedbackCountSetter overwrites the two feedback counters on exactly
// one reply entry of one article, as a single atomic targeted update that
// leaves sibling entries and other article fields untouched.
//
// Returns the updated entry and updated=true on success. If the article
// exists but carries no entry for replyID the update is a no-op and
// updated=false is returned without error. If the article itself is absent,
// domain.ErrNotFound is returned.
type ReplyFeedbackCountSetter interface {
	SetReplyFeedbackCounts(
		ctx context.Context,
		articleID, replyID string,
		tally domain.FeedbackTally,
	) (entry domain.ArticleReply, updated bool, err error)
}

// RepliedArticleLister lists the most recently attached article replies,
// newest first, for feed output.
type RepliedArticleLister interface {
	ListLatestRepliedArticles(ctx context.Context, limit int) ([]domain.RepliedArticle, error)
}

// ArticleRepository combines all article-side operations.
type ArticleRepository interface {
	ArticleFetcher
	ReplyFetcher
	ReplyFeedbackCountSetter
	RepliedArticleLister
}

package datasources

import (
	"context"

	"github.com/openfact/factcheck-api/internal/domain"
)

// FeedbackUpserter stores a vote, creating the record on first vote and
// updating score/comment in place on re-votes by the same identity.
// insertStatus only applies when the record is created; re-votes never change
// an existing record's moderation status. The write must be visible to a
// ListReplyFeedback call issued immediately afterwards.
type FeedbackUpserter interface {
	UpsertFeedback(
		ctx context.Context,
		key domain.FeedbackKey,
		score int,
		comment string,
		insertStatus domain.FeedbackStatus,
	) (created bool, err error)
}

// FeedbackLister returns every feedback record for an article-reply pair,
// regardless of status; callers filter.
type FeedbackLister interface {
	ListReplyFeedback(ctx context.Context, articleID, replyID string) ([]domain.Feedback, error)
}

// FeedbackAuthorSetter back-fills the denormalized author IDs on a feedback
// record without touching any other field.
type FeedbackAuthorSetter interface {
	SetFeedbackAuthors(
		ctx context.Context,
		key domain.FeedbackKey,
		replyUserID, articleReplyUserID string,
	) error
}

// FeedbackRepository combines all feedback store operations.
type FeedbackRepository interface {
	FeedbackUpserter
	FeedbackLister
	FeedbackAuthorSetter
}

package command

import (
	"context"
	"fmt"

	"github.com/openfact/factcheck-api/internal/datasources"
	"github.com/openfact/factcheck-api/internal/domain"
)

// ProjectReplyCountsRequest is the request for the ProjectReplyCounts command.
type ProjectReplyCountsRequest struct {
	ArticleID string
	ReplyID   string
	Feedbacks []domain.Feedback
}

// ProjectReplyCountsResult reports the updated reply entry. Updated is false
// when the article no longer carries an entry for the reply, which can happen
// when the entry is removed concurrently; the projection is then a no-op.
type ProjectReplyCountsResult struct {
	Entry   domain.ArticleReply
	Updated bool
}

// ProjectReplyCounts recomputes the positive/negative feedback counters for
// one reply entry from a supplied feedback set and persists them with a
// single targeted update. Running it again with the same record set is
// idempotent.
type ProjectReplyCounts struct {
	CountSetter datasources.ReplyFeedbackCountSetter
}

// NewProjectReplyCounts creates a properly initialized ProjectReplyCounts command.
func NewProjectReplyCounts(countSetter datasources.ReplyFeedbackCountSetter) *ProjectReplyCounts {
	return &ProjectReplyCounts{CountSetter: countSetter}
}

// Execute tallies the feedback set and writes the counters.
func (c *ProjectReplyCounts) Execute(
	ctx context.Context, req ProjectReplyCountsRequest,
) (ProjectReplyCountsResult, error) {
	logger := domain.LoggerFromContext(ctx)

	tally := domain.TallyFeedback(req.Feedbacks)

	entry, updated, err := c.CountSetter.SetReplyFeedbackCounts(ctx, req.ArticleID, req.ReplyID, tally)
	if err != nil {
		return ProjectReplyCountsResult{}, fmt.Errorf("setting reply feedback counts: %w", err)
	}
	if !updated {
		logger.WarnContext(ctx, "reply entry absent during count projection",
			"article_id", req.ArticleID, "reply_id", req.ReplyID)
		return ProjectReplyCountsResult{}, nil
	}

	logger.DebugContext(ctx, "projected reply feedback counts",
		"article_id", req.ArticleID, "reply_id", req.ReplyID,
		"positive", tally.Positive, "negative", tally.Negative)

	return ProjectReplyCountsResult{Entry: entry, Updated: true}, nil
}

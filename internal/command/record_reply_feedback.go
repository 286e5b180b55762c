package command

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/openfact/factcheck-api/internal/datasources"
	"github.com/openfact/factcheck-api/internal/domain"
)

// RecordReplyFeedbackRequest is the request for the RecordReplyFeedback command.
type RecordReplyFeedbackRequest struct {
	ArticleID string
	ReplyID   string
	Vote      int
	Comment   string
	User      domain.User
}

// RecordReplyFeedback handles one vote on an article-reply pair: it upserts
// the feedback record, back-fills denormalized author IDs when the record is
// newly created, then reloads the full feedback set and reprojects the reply
// entry's counters.
//
// The feedback upsert commits before enrichment and projection run. A later
// NotFound leaves the committed record in place; it is self-consistent on its
// own, and author back-fill is not retried on subsequent votes.
type RecordReplyFeedback struct {
	Users     datasources.UserFetcher
	Feedback  datasources.FeedbackRepository
	Articles  datasources.ArticleFetcher
	Replies   datasources.ReplyFetcher
	Projector Command[ProjectReplyCountsRequest, ProjectReplyCountsResult]
}

// NewRecordReplyFeedback creates a properly initialized RecordReplyFeedback command.
func NewRecordReplyFeedback(
	users datasources.UserFetcher,
	feedback datasources.FeedbackRepository,
	articles datasources.ArticleFetcher,
	replies datasources.ReplyFetcher,
	projector Command[ProjectReplyCountsRequest, ProjectReplyCountsResult],
) *RecordReplyFeedback {
	return &RecordReplyFeedback{
		Users:     users,
		Feedback:  feedback,
		Articles:  articles,
		Replies:   replies,
		Projector: projector,
	}
}

// Execute records the vote and returns the reply entry with fresh counters,
// annotated with the article ID.
func (c *RecordReplyFeedback) Execute(
	ctx context.Context, req RecordReplyFeedbackRequest,
) (domain.ArticleReply, error) {
	logger := domain.LoggerFromContext(ctx)

	if !req.User.IsAuthenticated() {
		return domain.ArticleReply{}, domain.ErrUnauthenticated
	}
	if !domain.ValidScore(req.Vote) {
		return domain.ArticleReply{}, fmt.Errorf("invalid vote value [%d]", req.Vote)
	}

	user, err := c.resolveUser(ctx, req.User)
	if err != nil {
		return domain.ArticleReply{}, err
	}

	key := domain.FeedbackKey{
		ArticleID: req.ArticleID,
		ReplyID:   req.ReplyID,
		UserID:    user.ID,
		AppID:     user.AppID,
	}

	created, err := c.Feedback.UpsertFeedback(
		ctx, key, req.Vote, req.Comment, domain.DefaultFeedbackStatus(user),
	)
	if err != nil {
		return domain.ArticleReply{}, fmt.Errorf("upserting feedback: %w", err)
	}

	if created {
		if err := c.backfillAuthors(ctx, key); err != nil {
			return domain.ArticleReply{}, err
		}
		logger.DebugContext(ctx, "created feedback record", "key", key.String())
	}

	feedbacks, err := c.Feedback.ListReplyFeedback(ctx, req.ArticleID, req.ReplyID)
	if err != nil {
		return domain.ArticleReply{}, fmt.Errorf("listing reply feedback: %w", err)
	}

	result, err := c.Projector.Execute(ctx, ProjectReplyCountsRequest{
		ArticleID: req.ArticleID,
		ReplyID:   req.ReplyID,
		Feedbacks: feedbacks,
	})
	if err != nil {
		return domain.ArticleReply{}, fmt.Errorf("projecting reply counts: %w", err)
	}
	if !result.Updated {
		return domain.ArticleReply{},
			fmt.Errorf("article [%s] has no reply entry [%s]: %w",
				req.ArticleID, req.ReplyID, domain.ErrNotFound)
	}

	entry := result.Entry
	entry.ArticleID = req.ArticleID

	return entry, nil
}

// resolveUser fills moderation state from the user store. Users without a
// stored profile are treated as unblocked.
func (c *RecordReplyFeedback) resolveUser(ctx context.Context, user domain.User) (domain.User, error) {
	stored, err := c.Users.FetchUserByID(ctx, user.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return user, nil
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching acting user: %w", err)
	}

	user.Name = stored.Name
	user.BlockedReason = stored.BlockedReason
	return user, nil
}

// backfillAuthors looks up the reply author and the article-reply entry
// author and patches them onto the newly created feedback record. The two
// lookups run concurrently. A missing article or reply entry is a
// data-integrity violation and fails the operation loudly.
func (c *RecordReplyFeedback) backfillAuthors(ctx context.Context, key domain.FeedbackKey) error {
	var reply domain.Reply
	var article domain.Article

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		reply, err = c.Replies.FetchReplyByID(grpCtx, key.ReplyID)
		return err
	})
	grp.Go(func() error {
		var err error
		article, err = c.Articles.FetchArticleByID(grpCtx, key.ArticleID)
		return err
	})
	if err := grp.Wait(); err != nil {
		return fmt.Errorf("looking up feedback authors: %w", err)
	}

	entry, ok := article.ReplyByID(key.ReplyID)
	if !ok {
		return fmt.Errorf("article [%s] has no reply entry [%s]: %w",
			key.ArticleID, key.ReplyID, domain.ErrNotFound)
	}

	if err := c.Feedback.SetFeedbackAuthors(ctx, key, reply.UserID, entry.UserID); err != nil {
		return fmt.Errorf("backfilling feedback authors: %w", err)
	}

	return nil
}

package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/openfact/factcheck-api/internal/datasources"
	"github.com/openfact/factcheck-api/internal/domain"
)

var _ datasources.FeedbackRepository = (*Repository)(nil)
var _ datasources.ArticleRepository = (*Repository)(nil)
var _ datasources.UserFetcher = (*Repository)(nil)
var _ datasources.AppTokenByHashGetter = (*Repository)(nil)
var _ datasources.AppTokenLastUsedUpdater = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// UpsertFeedback stores a vote for the given key. The existence check and the
// write run in one transaction so created-vs-updated is reported reliably;
// the per-key row lock linearizes concurrent votes by the same identity.
func (r *Repository) UpsertFeedback(
	ctx context.Context,
	key domain.FeedbackKey,
	score int,
	comment string,
	insertStatus domain.FeedbackStatus,
) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var existing int
	err = tx.QueryRowContext(ctx,
		`SELECT score FROM article_reply_feedbacks
		 WHERE article_id = ? AND reply_id = ? AND user_id = ? AND app_id = ?
		 FOR UPDATE`,
		key.ArticleID, key.ReplyID, key.UserID, key.AppID,
	).Scan(&existing)

	created := false
	now := time.Now()

	switch {
	case errors.Is(err, sql.ErrNoRows):
		created = true
		_, err = tx.ExecContext(ctx,
			`INSERT INTO article_reply_feedbacks
			 (article_id, reply_id, user_id, app_id, score, comment, status, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			key.ArticleID, key.ReplyID, key.UserID, key.AppID,
			score, nullString(comment), string(insertStatus), now, now,
		)
		if err != nil {
			return false, fmt.Errorf("inserting feedback: %w", err)
		}
	case err != nil:
		return false, fmt.Errorf("getting current feedback: %w", err)
	default:
		_, err = tx.ExecContext(ctx,
			`UPDATE article_reply_feedbacks
			 SET score = ?, comment = ?, updated_at = ?
			 WHERE article_id = ? AND reply_id = ? AND user_id = ? AND app_id = ?`,
			score, nullString(comment), now,
			key.ArticleID, key.ReplyID, key.UserID, key.AppID,
		)
		if err != nil {
			return false, fmt.Errorf("updating feedback: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing transaction: %w", err)
	}

	return created, nil
}

func (r *Repository) ListReplyFeedback(
	ctx context.Context, articleID, replyID string,
) ([]domain.Feedback, error) {
	sb := sqlbuilder.Select(
		"article_id", "reply_id", "user_id", "app_id",
		"score", "comment", "status",
		"reply_user_id", "article_reply_user_id",
		"created_at", "updated_at",
	)
	sb.From("article_reply_feedbacks")
	sb.Where(
		sb.Equal("article_id", articleID),
		sb.Equal("reply_id", replyID),
	)
	sb.OrderBy("created_at")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running feedback query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	feedbacks := []domain.Feedback{}
	for rows.Next() {
		var f domain.Feedback
		var comment, replyUserID, articleReplyUserID sql.NullString
		var status string
		if err := rows.Scan(
			&f.ArticleID, &f.ReplyID, &f.UserID, &f.AppID,
			&f.Score, &comment, &status,
			&replyUserID, &articleReplyUserID,
			&f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning feedback: %w", err)
		}
		f.Comment = comment.String
		f.Status = domain.FeedbackStatus(status)
		f.ReplyUserID = replyUserID.String
		f.ArticleReplyUserID = articleReplyUserID.String
		feedbacks = append(feedbacks, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return feedbacks, nil
}

func (r *Repository) SetFeedbackAuthors(
	ctx context.Context,
	key domain.FeedbackKey,
	replyUserID, articleReplyUserID string,
) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE article_reply_feedbacks
		 SET reply_user_id = ?, article_reply_user_id = ?
		 WHERE article_id = ? AND reply_id = ? AND user_id = ? AND app_id = ?`,
		replyUserID, articleReplyUserID,
		key.ArticleID, key.ReplyID, key.UserID, key.AppID,
	)
	if err != nil {
		return fmt.Errorf("setting feedback authors: %w", err)
	}
	return nil
}

func (r *Repository) FetchArticleByID(ctx context.Context, articleID string) (domain.Article, error) {
	var article domain.Article
	err := r.db.QueryRowContext(ctx,
		`SELECT article_id, user_id, app_id, text, created_at
		 FROM articles WHERE article_id = ?`,
		articleID,
	).Scan(&article.ID, &article.UserID, &article.AppID, &article.Text, &article.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, fmt.Errorf("fetching article [%s]: %w", articleID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Article{}, fmt.Errorf("fetching article: %w", err)
	}

	replies, err := r.fetchArticleReplies(ctx, articleID)
	if err != nil {
		return domain.Article{}, err
	}
	article.Replies = replies

	return article, nil
}

func (r *Repository) fetchArticleReplies(ctx context.Context, articleID string) ([]domain.ArticleReply, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT reply_id, user_id, positive_feedback_count, negative_feedback_count, created_at
		 FROM article_replies WHERE article_id = ? ORDER BY created_at`,
		articleID,
	)
	if err != nil {
		return nil, fmt.Errorf("running article replies query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	replies := []domain.ArticleReply{}
	for rows.Next() {
		entry := domain.ArticleReply{ArticleID: articleID}
		if err := rows.Scan(
			&entry.ReplyID, &entry.UserID,
			&entry.PositiveFeedbackCount, &entry.NegativeFeedbackCount,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning article reply: %w", err)
		}
		replies = append(replies, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return replies, nil
}

func (r *Repository) FetchReplyByID(ctx context.Context, replyID string) (domain.Reply, error) {
	var reply domain.Reply
	var replyType string
	err := r.db.QueryRowContext(ctx,
		`SELECT reply_id, user_id, app_id, type, text, created_at
		 FROM replies WHERE reply_id = ?`,
		replyID,
	).Scan(&reply.ID, &reply.UserID, &reply.AppID, &replyType, &reply.Text, &reply.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Reply{}, fmt.Errorf("fetching reply [%s]: %w", replyID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Reply{}, fmt.Errorf("fetching reply: %w", err)
	}
	reply.Type = domain.ReplyType(replyType)

	return reply, nil
}

// SetReplyFeedbackCounts overwrites the counters on one article_replies row.
// The single-row UPDATE is atomic in the storage engine, so concurrent
// projections of the same pair are last-writer-wins and never corrupt
// sibling entries. MySQL reports zero affected rows for a no-change update,
// so existence is determined by re-reading the row rather than from the
// update result.
func (r *Repository) SetReplyFeedbackCounts(
	ctx context.Context,
	articleID, replyID string,
	tally domain.FeedbackTally,
) (domain.ArticleReply, bool, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE article_replies
		 SET positive_feedback_count = ?, negative_feedback_count = ?
		 WHERE article_id = ? AND reply_id = ?`,
		tally.Positive, tally.Negative, articleID, replyID,
	)
	if err != nil {
		return domain.ArticleReply{}, false, fmt.Errorf("updating reply feedback counts: %w", err)
	}

	entry := domain.ArticleReply{ArticleID: articleID}
	err = r.db.QueryRowContext(ctx,
		`SELECT reply_id, user_id, positive_feedback_count, negative_feedback_count, created_at
		 FROM article_replies WHERE article_id = ? AND reply_id = ?`,
		articleID, replyID,
	).Scan(
		&entry.ReplyID, &entry.UserID,
		&entry.PositiveFeedbackCount, &entry.NegativeFeedbackCount,
		&entry.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		// Entry absent: no-op unless the whole article is gone.
		var exists int
		err = r.db.QueryRowContext(ctx,
			`SELECT 1 FROM articles WHERE article_id = ?`, articleID,
		).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ArticleReply{}, false,
				fmt.Errorf("updating counts for article [%s]: %w", articleID, domain.ErrNotFound)
		}
		if err != nil {
			return domain.ArticleReply{}, false, fmt.Errorf("checking article existence: %w", err)
		}
		return domain.ArticleReply{}, false, nil
	}
	if err != nil {
		return domain.ArticleReply{}, false, fmt.Errorf("reading updated reply entry: %w", err)
	}

	return entry, true, nil
}

func (r *Repository) ListLatestRepliedArticles(
	ctx context.Context, limit int,
) ([]domain.RepliedArticle, error) {
	sb := sqlbuilder.Select(
		"ar.article_id", "ar.reply_id", "a.text", "r.text", "r.type", "ar.created_at",
	)
	sb.From("article_replies ar")
	sb.Join("articles a", "a.article_id = ar.article_id")
	sb.Join("replies r", "r.reply_id = ar.reply_id")
	sb.OrderBy("ar.created_at DESC")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running replied articles query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	results := []domain.RepliedArticle{}
	for rows.Next() {
		var item domain.RepliedArticle
		var replyType string
		if err := rows.Scan(
			&item.ArticleID, &item.ReplyID,
			&item.ArticleText, &item.ReplyText, &replyType,
			&item.RepliedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning replied article: %w", err)
		}
		item.ReplyType = domain.ReplyType(replyType)
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return results, nil
}

func (r *Repository) FetchUserByID(ctx context.Context, userID string) (domain.User, error) {
	var user domain.User
	var name, blockedReason sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, name, blocked_reason FROM users WHERE user_id = ?`,
		userID,
	).Scan(&user.ID, &name, &blockedReason)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("fetching user [%s]: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user: %w", err)
	}
	user.Name = name.String
	user.BlockedReason = blockedReason.String

	return user, nil
}

func (r *Repository) GetAppTokenByHash(ctx context.Context, tokenHash string) (domain.AppToken, error) {
	var token domain.AppToken
	var lastUsedAt, revokedAt sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT token_hash, app_id, created_at, last_used_at, revoked_at
		 FROM app_tokens WHERE token_hash = ?`,
		tokenHash,
	).Scan(&token.TokenHash, &token.AppID, &token.CreatedAt, &lastUsedAt, &revokedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AppToken{}, fmt.Errorf("fetching app token: %w", domain.ErrNotFound)
	}
	if err != nil {
		return domain.AppToken{}, fmt.Errorf("fetching app token: %w", err)
	}
	if lastUsedAt.Valid {
		token.LastUsedAt = &lastUsedAt.Time
	}
	if revokedAt.Valid {
		token.RevokedAt = &revokedAt.Time
	}

	return token, nil
}

func (r *Repository) UpdateAppTokenLastUsed(ctx context.Context, tokenHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE app_tokens SET last_used_at = ? WHERE token_hash = ?`,
		time.Now(), tokenHash,
	)
	if err != nil {
		return fmt.Errorf("updating app token last used: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

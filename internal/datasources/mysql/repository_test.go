package mysql

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/openfact/factcheck-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}

	db, err := Connect(context.Background(), os.Getenv("MYSQL_URI"))
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()

	_, err = db.ExecContext(ctx,
		`INSERT INTO articles (article_id, user_id, app_id, text, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		"article1", "article-author", "WEBSITE",
		"Drinking bleach cures colds",
		time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO replies (reply_id, user_id, app_id, type, text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"reply1", "reply-author", "WEBSITE", "RUMOR",
		"No medical evidence supports this; bleach is toxic.",
		time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO article_replies
		 (article_id, reply_id, user_id, positive_feedback_count, negative_feedback_count, created_at)
		 VALUES (?, ?, ?, 0, 0, ?), (?, ?, ?, 7, 2, ?)`,
		"article1", "reply1", "connector", time.Date(2025, 3, 2, 11, 0, 0, 0, time.UTC),
		"article1", "reply2", "connector", time.Date(2025, 3, 3, 11, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	return db
}

func teardownTestDB(t *testing.T, db *sql.DB) {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}

	ctx := context.Background()

	_, err := db.ExecContext(ctx, "DELETE FROM article_reply_feedbacks")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "DELETE FROM article_replies")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "DELETE FROM replies")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "DELETE FROM articles")
	require.NoError(t, err)

	err = db.Close()
	require.NoError(t, err)
}

func TestRepository_UpsertFeedback(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	ctx := context.Background()

	key := domain.FeedbackKey{
		ArticleID: "article1",
		ReplyID:   "reply1",
		UserID:    "voter1",
		AppID:     "WEBSITE",
	}

	created, err := sut.UpsertFeedback(ctx, key, domain.ScoreUpvote, "seems right", domain.FeedbackStatusNormal)
	require.NoError(t, err)
	assert.True(t, created)

	feedbacks, err := sut.ListReplyFeedback(ctx, "article1", "reply1")
	require.NoError(t, err)
	require.Len(t, feedbacks, 1)
	assert.Equal(t, domain.ScoreUpvote, feedbacks[0].Score)
	assert.Equal(t, "seems right", feedbacks[0].Comment)
	assert.Equal(t, domain.FeedbackStatusNormal, feedbacks[0].Status)
	firstCreatedAt := feedbacks[0].CreatedAt

	// Re-voting by the same identity updates the record in place.
	created, err = sut.UpsertFeedback(ctx, key, domain.ScoreDownvote, "changed my mind", domain.FeedbackStatusNormal)
	require.NoError(t, err)
	assert.False(t, created)

	feedbacks, err = sut.ListReplyFeedback(ctx, "article1", "reply1")
	require.NoError(t, err)
	require.Len(t, feedbacks, 1)
	assert.Equal(t, domain.ScoreDownvote, feedbacks[0].Score)
	assert.Equal(t, "changed my mind", feedbacks[0].Comment)
	assert.Equal(t, firstCreatedAt, feedbacks[0].CreatedAt)
	assert.False(t, feedbacks[0].UpdatedAt.Before(firstCreatedAt))

	// A different app forms a different key even for the same user.
	created, err = sut.UpsertFeedback(ctx, domain.FeedbackKey{
		ArticleID: "article1",
		ReplyID:   "reply1",
		UserID:    "voter1",
		AppID:     "chatbot",
	}, domain.ScoreUpvote, "", domain.FeedbackStatusNormal)
	require.NoError(t, err)
	assert.True(t, created)

	feedbacks, err = sut.ListReplyFeedback(ctx, "article1", "reply1")
	require.NoError(t, err)
	assert.Len(t, feedbacks, 2)
}

func TestRepository_SetFeedbackAuthors(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	ctx := context.Background()

	key := domain.FeedbackKey{
		ArticleID: "article1",
		ReplyID:   "reply1",
		UserID:    "voter1",
		AppID:     "WEBSITE",
	}

	_, err := sut.UpsertFeedback(ctx, key, domain.ScoreUpvote, "with comment", domain.FeedbackStatusNormal)
	require.NoError(t, err)

	err = sut.SetFeedbackAuthors(ctx, key, "reply-author", "connector")
	require.NoError(t, err)

	feedbacks, err := sut.ListReplyFeedback(ctx, "article1", "reply1")
	require.NoError(t, err)
	require.Len(t, feedbacks, 1)
	assert.Equal(t, "reply-author", feedbacks[0].ReplyUserID)
	assert.Equal(t, "connector", feedbacks[0].ArticleReplyUserID)
	// Patch must not touch other fields.
	assert.Equal(t, domain.ScoreUpvote, feedbacks[0].Score)
	assert.Equal(t, "with comment", feedbacks[0].Comment)
}

func TestRepository_SetReplyFeedbackCounts(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	ctx := context.Background()

	entry, updated, err := sut.SetReplyFeedbackCounts(ctx, "article1", "reply1",
		domain.FeedbackTally{Positive: 3, Negative: 1})
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "article1", entry.ArticleID)
	assert.Equal(t, "reply1", entry.ReplyID)
	assert.Equal(t, 3, entry.PositiveFeedbackCount)
	assert.Equal(t, 1, entry.NegativeFeedbackCount)

	// Sibling entries are untouched.
	article, err := sut.FetchArticleByID(ctx, "article1")
	require.NoError(t, err)
	sibling, ok := article.ReplyByID("reply2")
	require.True(t, ok)
	assert.Equal(t, 7, sibling.PositiveFeedbackCount)
	assert.Equal(t, 2, sibling.NegativeFeedbackCount)

	// Writing unchanged values still reports the entry as updated.
	_, updated, err = sut.SetReplyFeedbackCounts(ctx, "article1", "reply1",
		domain.FeedbackTally{Positive: 3, Negative: 1})
	require.NoError(t, err)
	assert.True(t, updated)

	// Entry absent from an existing article is a no-op.
	_, updated, err = sut.SetReplyFeedbackCounts(ctx, "article1", "missing-reply",
		domain.FeedbackTally{Positive: 1})
	require.NoError(t, err)
	assert.False(t, updated)

	// Article absent entirely fails with NotFound.
	_, _, err = sut.SetReplyFeedbackCounts(ctx, "missing-article", "reply1",
		domain.FeedbackTally{Positive: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_FetchArticleByID(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	ctx := context.Background()

	article, err := sut.FetchArticleByID(ctx, "article1")
	require.NoError(t, err)
	assert.Equal(t, "article-author", article.UserID)
	assert.Len(t, article.Replies, 2)

	_, err = sut.FetchArticleByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_FetchReplyByID(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	ctx := context.Background()

	reply, err := sut.FetchReplyByID(ctx, "reply1")
	require.NoError(t, err)
	assert.Equal(t, "reply-author", reply.UserID)
	assert.Equal(t, domain.ReplyTypeRumor, reply.Type)

	_, err = sut.FetchReplyByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_ListLatestRepliedArticles(t *testing.T) {
	db := setupTestDB(t)
	defer teardownTestDB(t, db)

	sut := New(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO replies (reply_id, user_id, app_id, type, text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"reply2", "reply-author", "WEBSITE", "NOT_RUMOR", "This one checks out.",
		time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	items, err := sut.ListLatestRepliedArticles(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Newest first.
	assert.Equal(t, "reply2", items[0].ReplyID)
	assert.Equal(t, "reply1", items[1].ReplyID)

	items, err = sut.ListLatestRepliedArticles(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

package domain

import (
	"strings"
	"time"
)

// Feedback vote scores.
const (
	ScoreUpvote   = 1
	ScoreNeutral  = 0
	ScoreDownvote = -1
)

// ValidScore reports whether v is a recognised vote value.
func ValidScore(v int) bool {
	return v == ScoreUpvote || v == ScoreNeutral || v == ScoreDownvote
}

// FeedbackStatus is the moderation state of a feedback record.
type FeedbackStatus string

const (
	// FeedbackStatusNormal indicates the record counts toward reply tallies.
	FeedbackStatusNormal FeedbackStatus = "NORMAL"
	// FeedbackStatusBlocked indicates the record was filed by a blocked user
	// and is excluded from tallies.
	FeedbackStatusBlocked FeedbackStatus = "BLOCKED"
	// FeedbackStatusDeleted indicates the record was soft-deleted by moderation.
	FeedbackStatusDeleted FeedbackStatus = "DELETED"
)

// FeedbackKey identifies a single feedback record: one user of one client app
// voting on one reply attached to one article.
type FeedbackKey struct {
	ArticleID string
	ReplyID   string
	UserID    string
	AppID     string
}

// keySeparator must not occur in any key component; IDs are hex hashes or
// auth provider subjects, neither of which contains consecutive underscores.
const keySeparator = "__"

// String returns the stable serialized form of the key, used where storage
// or logs need a single opaque identifier.
func (k FeedbackKey) String() string {
	return strings.Join([]string{k.ArticleID, k.ReplyID, k.UserID, k.AppID}, keySeparator)
}

// Feedback is one user's vote and optional comment on one article-reply pair.
type Feedback struct {
	ArticleID string `json:"article_id"`
	ReplyID   string `json:"reply_id"`
	UserID    string `json:"user_id"`
	AppID     string `json:"app_id"`

	Score   int            `json:"score"`
	Comment string         `json:"comment,omitempty"`
	Status  FeedbackStatus `json:"status"`

	// Authorship denormalized from the reply and the article-reply entry,
	// filled once when the record is first created.
	ReplyUserID        string `json:"reply_user_id,omitempty"`
	ArticleReplyUserID string `json:"article_reply_user_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Key returns the composite identity of the record.
func (f Feedback) Key() FeedbackKey {
	return FeedbackKey{
		ArticleID: f.ArticleID,
		ReplyID:   f.ReplyID,
		UserID:    f.UserID,
		AppID:     f.AppID,
	}
}

// FeedbackTally is the aggregate vote count for one reply entry.
type FeedbackTally struct {
	Positive int
	Negative int
}

// TallyFeedback counts votes across a feedback set. Only records with status
// NORMAL contribute; a score of 1 counts as positive, -1 as negative, and
// anything else registers no contribution to either counter.
func TallyFeedback(records []Feedback) FeedbackTally {
	var tally FeedbackTally
	for _, r := range records {
		if r.Status != FeedbackStatusNormal {
			continue
		}
		switch r.Score {
		case ScoreUpvote:
			tally.Positive++
		case ScoreDownvote:
			tally.Negative++
		}
	}
	return tally
}

// DefaultFeedbackStatus returns the moderation status newly created feedback
// should carry for the given acting user.
func DefaultFeedbackStatus(u User) FeedbackStatus {
	if u.BlockedReason != "" {
		return FeedbackStatusBlocked
	}
	return FeedbackStatusNormal
}

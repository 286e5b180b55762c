package domain

import (
	"time"
)

// Article is a piece of disputed content submitted for fact checking,
// together with the reply entries attached to it.
type Article struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	AppID     string    `json:"app_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`

	Replies []ArticleReply `json:"replies,omitempty"`
}

// ReplyByID returns the article's reply entry for the given reply ID.
func (a Article) ReplyByID(replyID string) (ArticleReply, bool) {
	for _, entry := range a.Replies {
		if entry.ReplyID == replyID {
			return entry, true
		}
	}
	return ArticleReply{}, false
}

// ArticleReply is the projection of a reply inside an article, carrying the
// denormalized vote counts maintained by the reply-count projector.
type ArticleReply struct {
	ArticleID string `json:"article_id,omitempty"`
	ReplyID   string `json:"reply_id"`

	// UserID is the user who attached the reply to the article.
	UserID string `json:"user_id"`

	PositiveFeedbackCount int `json:"positive_feedback_count"`
	NegativeFeedbackCount int `json:"negative_feedback_count"`

	CreatedAt time.Time `json:"created_at"`
}

// ReplyType classifies what a reply asserts about the article it addresses.
type ReplyType string

const (
	ReplyTypeRumor       ReplyType = "RUMOR"
	ReplyTypeNotRumor    ReplyType = "NOT_RUMOR"
	ReplyTypeOpinionated ReplyType = "OPINIONATED"
	ReplyTypeNotArticle  ReplyType = "NOT_ARTICLE"
)

// Reply is a candidate fact-check response, referenced by ID from one or more
// articles' reply entries.
type Reply struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	AppID     string    `json:"app_id"`
	Type      ReplyType `json:"type"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// RepliedArticle is a flattened article-reply pairing used by feed listings.
type RepliedArticle struct {
	ArticleID   string    `json:"article_id"`
	ReplyID     string    `json:"reply_id"`
	ArticleText string    `json:"article_text"`
	ReplyText   string    `json:"reply_text"`
	ReplyType   ReplyType `json:"reply_type"`
	RepliedAt   time.Time `json:"replied_at"`
}

package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/openfact/factcheck-api/internal/command"
	"github.com/openfact/factcheck-api/internal/domain"
)

// feedbackSetBody is the request body for recording feedback on a reply.
// Vote is a pointer so a missing field is distinguishable from a zero vote.
type feedbackSetBody struct {
	Vote    *int   `json:"vote"`
	Comment string `json:"comment"`
}

type FeedbackSet struct {
	Recorder command.Command[command.RecordReplyFeedbackRequest, domain.ArticleReply]
}

func (c FeedbackSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	articleID := vars["article_id"]
	replyID := vars["reply_id"]

	logger := domain.LoggerFromContext(r.Context())
	logger = logger.With("article_id", articleID, "reply_id", replyID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	var body feedbackSetBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to decode feedback body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if body.Vote == nil || !domain.ValidScore(*body.Vote) {
		logger.ErrorContext(ctx, "invalid vote value in feedback body")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	entry, err := c.Recorder.Execute(ctx, command.RecordReplyFeedbackRequest{
		ArticleID: articleID,
		ReplyID:   replyID,
		Vote:      *body.Vote,
		Comment:   body.Comment,
		User:      domain.UserFromContext(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, domain.ErrNotFound):
			logger.WarnContext(ctx, "feedback target not found", "error", err)
			w.WriteHeader(http.StatusNotFound)
		default:
			logger.ErrorContext(ctx, "unable to record feedback", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entry); err != nil {
		logger.ErrorContext(ctx, "unable to write reply entry to response", "error", err)
	}
}

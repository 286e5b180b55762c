package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/openfact/factcheck-api/internal/datasources"
	"github.com/openfact/factcheck-api/internal/domain"
)

type FeedbackList struct {
	Lister datasources.FeedbackLister
}

func (c FeedbackList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	articleID := vars["article_id"]
	replyID := vars["reply_id"]

	feedbacks, err := c.Lister.ListReplyFeedback(r.Context(), articleID, replyID)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list reply feedback", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(feedbacks); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feedback to response", "error", err)
	}
}

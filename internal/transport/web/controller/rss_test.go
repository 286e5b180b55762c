package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openfact/factcheck-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

type mockRepliedArticleLister struct {
	items     []domain.RepliedArticle
	err       error
	gotLimit  int
	wasCalled bool
}

func (m *mockRepliedArticleLister) ListLatestRepliedArticles(
	_ context.Context, limit int,
) ([]domain.RepliedArticle, error) {
	m.wasCalled = true
	m.gotLimit = limit
	return m.items, m.err
}

func TestRSS_ServeHTTP(t *testing.T) {
	testTime := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	items := []domain.RepliedArticle{
		{
			ArticleID:   "a1",
			ReplyID:     "r1",
			ArticleText: "Drinking bleach cures colds",
			ReplyText:   "No medical evidence supports this; bleach is toxic.",
			ReplyType:   domain.ReplyTypeRumor,
			RepliedAt:   testTime,
		},
	}

	cases := []struct {
		name       string
		query      string
		items      []domain.RepliedArticle
		listErr    error
		wantStatus int
		wantLimit  int
		wantCalled bool
	}{
		{
			name:       "default_limit",
			items:      items,
			wantStatus: http.StatusOK,
			wantLimit:  20,
			wantCalled: true,
		},
		{
			name:       "explicit_limit",
			query:      "?limit=5",
			items:      items,
			wantStatus: http.StatusOK,
			wantLimit:  5,
			wantCalled: true,
		},
		{
			name:       "invalid_limit",
			query:      "?limit=abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "limit_too_large",
			query:      "?limit=500",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "list_error",
			listErr:    errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
			wantLimit:  20,
			wantCalled: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := &mockRepliedArticleLister{items: tc.items, err: tc.listErr}

			controller := RSS{
				FeedHostname:    "https://api.example.org",
				FeedPath:        "/rss",
				FeedAuthorName:  "Fact Check Team",
				FeedAuthorEmail: "team@example.org",
				Replies:         lister,
				CacheMaxAge:     time.Minute,
			}

			req := httptest.NewRequest(http.MethodGet, "/rss"+tc.query, nil)
			req = testContextWithUser(domain.User{})(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCalled, lister.wasCalled)
			if tc.wantCalled {
				assert.Equal(t, tc.wantLimit, lister.gotLimit)
			}

			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
				assert.Contains(t, rec.Body.String(), "Drinking bleach cures colds")
				assert.Contains(t, rec.Body.String(), "/v1/articles/a1")
			}
		})
	}
}

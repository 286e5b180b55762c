package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/openfact/factcheck-api/internal/datasources/mocks"
	"github.com/openfact/factcheck-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArticleGet_ServeHTTP(t *testing.T) {
	testTime := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	article := domain.Article{
		ID:        "a1",
		UserID:    "author",
		AppID:     "WEBSITE",
		Text:      "Drinking bleach cures colds",
		CreatedAt: testTime,
		Replies: []domain.ArticleReply{
			{
				ArticleID:             "a1",
				ReplyID:               "r1",
				UserID:                "connector",
				PositiveFeedbackCount: 3,
				NegativeFeedbackCount: 1,
				CreatedAt:             testTime,
			},
		},
	}

	cases := []struct {
		name          string
		articleID     string
		user          domain.User
		article       domain.Article
		fetchErr      error
		wantStatus    int
		wantCacheable bool
	}{
		{
			name:          "found_anonymous",
			articleID:     "a1",
			article:       article,
			wantStatus:    http.StatusOK,
			wantCacheable: true,
		},
		{
			name:       "found_authenticated",
			articleID:  "a1",
			user:       domain.User{ID: "user456", AppID: "WEBSITE"},
			article:    article,
			wantStatus: http.StatusOK,
		},
		{
			name:       "not_found",
			articleID:  "missing",
			fetchErr:   domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "fetch_error",
			articleID:  "a1",
			fetchErr:   errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockArticleFetcher(t)
			fetcher.EXPECT().
				FetchArticleByID(mock.Anything, tc.articleID).
				Return(tc.article, tc.fetchErr)

			controller := ArticleGet{
				Fetcher:     fetcher,
				CacheMaxAge: time.Minute,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/articles/"+tc.articleID, nil)
			req = testContextWithUser(tc.user)(req)
			req = mux.SetURLVars(req, map[string]string{"article_id": tc.articleID})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantCacheable {
				assert.Equal(t, "max-age=60", rec.Header().Get("Cache-Control"))
			} else {
				assert.Empty(t, rec.Header().Get("Cache-Control"))
			}

			if tc.wantStatus == http.StatusOK {
				var got domain.Article
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tc.article.ID, got.ID)
				assert.Len(t, got.Replies, 1)
				assert.Equal(t, 3, got.Replies[0].PositiveFeedbackCount)
			}
		})
	}
}

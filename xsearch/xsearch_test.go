package xsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-pulse/models"
)

func TestBuildQuery(t *testing.T) {
	cases := []struct {
		name     string
		query    models.StructuredQuery
		language string
		want     string
	}{
		{
			name:  "and terms only",
			query: models.StructuredQuery{WordsAnd: []string{"bitcoin", "etf"}},
			want:  "bitcoin etf",
		},
		{
			name:  "single alternative is not parenthesized",
			query: models.StructuredQuery{WordsAnd: []string{"bitcoin"}, WordsOr: []string{"btc"}},
			want:  "bitcoin btc",
		},
		{
			name: "alternatives grouped with hashtags",
			query: models.StructuredQuery{
				WordsAnd: []string{"bitcoin"},
				WordsOr:  []string{"btc", "crypto"},
				Hashtags: []string{"Bitcoin", "#BTC"},
			},
			want: "bitcoin (btc OR crypto OR #Bitcoin OR #BTC)",
		},
		{
			name:     "language filter appended",
			query:    models.StructuredQuery{WordsAnd: []string{"tesla"}},
			language: "en",
			want:     "tesla lang:en",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildQuery(tc.query, tc.language))
		})
	}
}

func TestClampResults(t *testing.T) {
	assert.Equal(t, 10, clampResults(0))
	assert.Equal(t, 10, clampResults(5))
	assert.Equal(t, 50, clampResults(50))
	assert.Equal(t, 100, clampResults(500))
}

func TestFetchMapsTweetsAndAuthors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/tweets/search/recent", r.URL.Path)
		assert.Equal(t, "Bearer bearer-test", r.Header.Get("Authorization"))
		assert.Equal(t, "author_id", r.URL.Query().Get("expansions"))
		assert.Equal(t, "10", r.URL.Query().Get("max_results"))

		w.Header().Set("x-rate-limit-remaining", "179")
		w.Write([]byte(`{
			"data": [
				{"id":"1","text":"hello","created_at":"2025-01-01T10:00:00Z","author_id":"u1",
				 "public_metrics":{"retweet_count":3,"reply_count":1,"like_count":9,"quote_count":0}},
				{"id":"2","text":"world","created_at":"2025-01-01T11:00:00Z","author_id":"u2",
				 "public_metrics":{"like_count":4}}
			],
			"includes": {"users":[{"id":"u1","username":"alice"},{"id":"u2","username":"bob"}]},
			"meta": {"result_count":2}
		}`))
	}))
	defer srv.Close()

	c := newWithBase(srv.URL, "bearer-test")
	posts, err := c.Fetch(context.Background(), models.StructuredQuery{WordsAnd: []string{"hello"}}, models.FetchOptions{MaxItems: 5})
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "1", posts[0].ID)
	assert.Equal(t, "alice", posts[0].AuthorName)
	assert.Equal(t, models.SourceXAPI, posts[0].Source)
	assert.Equal(t, int64(9), posts[0].Metrics.LikeCount)
	assert.Equal(t, int64(3), posts[0].Metrics.RepostCount)
	assert.Equal(t, "bob", posts[1].AuthorName)
}

func TestFetchRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-rate-limit-remaining", "0")
		w.Header().Set("x-rate-limit-reset", "1735732800")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newWithBase(srv.URL, "bearer-test")
	_, err := c.Fetch(context.Background(), models.StructuredQuery{WordsAnd: []string{"x"}}, models.FetchOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Contains(t, err.Error(), "resets at")
}

func TestFetchUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"title":"Unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newWithBase(srv.URL, "bad-token")
	_, err := c.Fetch(context.Background(), models.StructuredQuery{WordsAnd: []string{"x"}}, models.FetchOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestNewRequiresBearerToken(t *testing.T) {
	t.Setenv("X_BEARER_TOKEN", "")
	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "X_BEARER_TOKEN")
}

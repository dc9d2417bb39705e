package reddit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-pulse/models"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>search results for "bitcoin"</title>
  <entry>
    <id>t3_abc123</id>
    <title>Bitcoin hits a new high</title>
    <link href="https://www.reddit.com/r/CryptoCurrency/comments/abc123/"/>
    <updated>2025-01-02T08:00:00+00:00</updated>
    <author><name>/u/satoshi_fan</name></author>
  </entry>
  <entry>
    <id>t3_def456</id>
    <title>Weekly bitcoin discussion thread</title>
    <link href="https://www.reddit.com/r/Bitcoin/comments/def456/"/>
    <updated>2025-01-01T12:00:00+00:00</updated>
    <author><name>/u/mod_bot</name></author>
  </entry>
</feed>`

func TestFetchParsesSearchFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.rss", r.URL.Path)
		assert.Equal(t, "bitcoin", r.URL.Query().Get("q"))
		assert.Equal(t, "new", r.URL.Query().Get("sort"))
		assert.Contains(t, r.Header.Get("User-Agent"), "social-pulse")

		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	c := newWithBase(srv.URL)
	posts, err := c.Fetch(context.Background(), models.StructuredQuery{WordsAnd: []string{"bitcoin"}}, models.FetchOptions{})
	require.NoError(t, err)
	require.Len(t, posts, 2)

	first := posts[0]
	assert.Equal(t, "t3_abc123", first.ID)
	assert.Equal(t, "Bitcoin hits a new high", first.Text)
	assert.Equal(t, "https://www.reddit.com/r/CryptoCurrency/comments/abc123/", first.URL)
	assert.Equal(t, "/u/satoshi_fan", first.AuthorID)
	assert.Equal(t, models.SourceReddit, first.Source)
	assert.Equal(t, time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC), first.CreatedAt.UTC())
	assert.Zero(t, first.Metrics.LikeCount, "RSS exposes no engagement metrics")
}

func TestFetchHonorsMaxItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	c := newWithBase(srv.URL)
	posts, err := c.Fetch(context.Background(), models.StructuredQuery{WordsAnd: []string{"bitcoin"}}, models.FetchOptions{MaxItems: 1})
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestFetchFeedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newWithBase(srv.URL)
	_, err := c.Fetch(context.Background(), models.StructuredQuery{WordsAnd: []string{"bitcoin"}}, models.FetchOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reddit search feed")
}

func TestSearchTermsFallsBackToWordsOr(t *testing.T) {
	assert.Equal(t, "a b", searchTerms(models.StructuredQuery{WordsAnd: []string{"a", "b"}}))
	assert.Equal(t, "x y", searchTerms(models.StructuredQuery{WordsOr: []string{"x", "y"}}))
}

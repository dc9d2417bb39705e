package sources_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-pulse/models"
	"social-pulse/sources"
)

func TestFixtureReturnsFivePosts(t *testing.T) {
	f := sources.NewFixture()
	query := models.StructuredQuery{WordsAnd: []string{"bitcoin"}}

	posts, err := f.Fetch(context.Background(), query, models.FetchOptions{})
	require.NoError(t, err)
	require.Len(t, posts, 5)
	for _, p := range posts {
		assert.Equal(t, models.SourceFixture, p.Source)
		assert.Contains(t, p.Text, "#bitcoin")
		assert.NotEmpty(t, p.AuthorID)
	}
}

func TestFixtureIsDeterministicExceptTimestamps(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := sources.NewFixtureAt(func() time.Time { return now })
	query := models.StructuredQuery{WordsAnd: []string{"ai"}}

	first, err := f.Fetch(context.Background(), query, models.FetchOptions{})
	require.NoError(t, err)
	second, err := f.Fetch(context.Background(), query, models.FetchOptions{})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Timestamps are spaced one hour apart, newest first.
	for i, p := range first {
		assert.Equal(t, now.Add(-time.Duration(i)*time.Hour), p.CreatedAt)
	}
}

func TestFixtureCollapsesMultiWordTagAndTruncates(t *testing.T) {
	f := sources.NewFixture()
	query := models.StructuredQuery{WordsAnd: []string{"electric cars"}}

	posts, err := f.Fetch(context.Background(), query, models.FetchOptions{MaxItems: 2})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Contains(t, posts[0].Text, "#electriccars")
}

func TestFixtureHonorsContextCancellation(t *testing.T) {
	f := sources.NewFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Fetch(ctx, models.StructuredQuery{}, models.FetchOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

package aggregator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-pulse/aggregator"
	"social-pulse/models"
	"social-pulse/sources"
)

type fakeSource struct {
	kind  models.SourceKind
	posts []models.Post
	err   error
	delay time.Duration
}

func (f *fakeSource) Kind() models.SourceKind { return f.kind }

func (f *fakeSource) Fetch(ctx context.Context, query models.StructuredQuery, opts models.FetchOptions) ([]models.Post, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.posts, nil
}

func post(id string, kind models.SourceKind) models.Post {
	return models.Post{ID: id, Text: "text " + id, Source: kind}
}

func TestAggregatePreservesDeclaredOrder(t *testing.T) {
	// The slow source is declared first: its posts must still come first
	// even though the fast one finishes earlier.
	slow := &fakeSource{kind: models.SourceFixture, delay: 80 * time.Millisecond,
		posts: []models.Post{post("a1", models.SourceFixture), post("a2", models.SourceFixture)}}
	fast := &fakeSource{kind: models.SourceReddit,
		posts: []models.Post{post("b1", models.SourceReddit)}}

	agg := aggregator.New(sources.NewRegistry(slow, fast))
	posts, meta, err := agg.Aggregate(context.Background(), models.StructuredQuery{},
		[]models.SourceKind{models.SourceFixture, models.SourceReddit}, models.FetchOptions{})
	require.NoError(t, err)

	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"a1", "a2", "b1"}, ids)
	assert.Equal(t, []models.SourceKind{models.SourceFixture, models.SourceReddit}, meta.Sources)
	assert.Equal(t, 3, meta.TotalResults)
}

func TestAggregateSkipsUnwiredKinds(t *testing.T) {
	wired := &fakeSource{kind: models.SourceFixture,
		posts: []models.Post{post("x", models.SourceFixture)}}

	agg := aggregator.New(sources.NewRegistry(wired))
	posts, meta, err := agg.Aggregate(context.Background(), models.StructuredQuery{},
		[]models.SourceKind{models.SourceFixture, models.SourceYouTube}, models.FetchOptions{})
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, []models.SourceKind{models.SourceFixture}, meta.Sources)
}

func TestAggregateFailsWhenAnySourceFails(t *testing.T) {
	cause := errors.New("boom")
	ok := &fakeSource{kind: models.SourceFixture,
		posts: []models.Post{post("x", models.SourceFixture)}}
	broken := &fakeSource{kind: models.SourceReddit, err: cause}

	agg := aggregator.New(sources.NewRegistry(ok, broken))
	_, _, err := agg.Aggregate(context.Background(), models.StructuredQuery{},
		[]models.SourceKind{models.SourceFixture, models.SourceReddit}, models.FetchOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "reddit")
}

func TestAggregateKeepsDuplicatesAcrossSources(t *testing.T) {
	// Same post ID from two sources is kept twice. Dedup is the caller's
	// concern, not ours.
	a := &fakeSource{kind: models.SourceFixture, posts: []models.Post{post("same", models.SourceFixture)}}
	b := &fakeSource{kind: models.SourceReddit, posts: []models.Post{post("same", models.SourceReddit)}}

	agg := aggregator.New(sources.NewRegistry(a, b))
	posts, _, err := agg.Aggregate(context.Background(), models.StructuredQuery{},
		[]models.SourceKind{models.SourceFixture, models.SourceReddit}, models.FetchOptions{})
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestAggregateEmptyEnabledSetYieldsEmptyResult(t *testing.T) {
	agg := aggregator.New(sources.NewRegistry())
	posts, meta, err := agg.Aggregate(context.Background(), models.StructuredQuery{},
		nil, models.FetchOptions{})
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
	assert.Zero(t, meta.TotalResults)
}

func TestAggregateNormalizesOptions(t *testing.T) {
	agg := aggregator.New(sources.NewRegistry())
	_, meta, err := agg.Aggregate(context.Background(), models.StructuredQuery{},
		nil, models.FetchOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSince, meta.Options.Since)
	assert.Equal(t, models.DefaultMaxItems, meta.Options.MaxItems)
	assert.Equal(t, models.DefaultLanguage, meta.Options.Language)
	assert.False(t, meta.DateRange.Until.IsZero())
}

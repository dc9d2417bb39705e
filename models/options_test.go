package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchOptionsNormalizeDefaults(t *testing.T) {
	now := time.Date(2025, 3, 15, 13, 45, 0, 0, time.UTC)

	opts := FetchOptions{}.Normalize(now)
	assert.Equal(t, DefaultSince, opts.Since)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), opts.Until)
	assert.Equal(t, DefaultMaxItems, opts.MaxItems)
	assert.Equal(t, DefaultLanguage, opts.Language)
	assert.Zero(t, opts.MinLikes)
}

func TestFetchOptionsNormalizeKeepsExplicitValues(t *testing.T) {
	in := FetchOptions{
		Since:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Until:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		MaxItems: 7,
		MinLikes: 100,
		Language: "ko",
	}
	assert.Equal(t, in, in.Normalize(time.Now()))
}

func TestDateStr(t *testing.T) {
	loc := time.FixedZone("KST", 9*3600)
	assert.Equal(t, "2025-01-01", DateStr(time.Date(2025, 1, 2, 3, 0, 0, 0, loc)))
}

func TestStructuredQueryNormalizeSerializesArrays(t *testing.T) {
	var q StructuredQuery
	q.Normalize()

	data, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"words_and":[],"words_or":[],"hashtag":[]}`, string(data))
}

func TestFallbackQuery(t *testing.T) {
	q := FallbackQuery("electric cars")
	assert.Equal(t, []string{"electric cars"}, q.WordsAnd)
	assert.Empty(t, q.WordsOr)
	assert.Empty(t, q.Hashtags)
}

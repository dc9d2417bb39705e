package expander_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-pulse/expander"
	"social-pulse/llm"
)

type fakeLLM struct {
	text  string
	err   error
	calls int
}

func (f *fakeLLM) GenerateText(ctx context.Context, system, prompt string) (*llm.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Result{Text: f.text, ModelName: "fake-model"}, nil
}

func TestExpandParsesStructuredQuery(t *testing.T) {
	fake := &fakeLLM{text: `{"words_and":["bitcoin"],"words_or":["btc","crypto"],"hashtag":["Bitcoin"]}`}
	e := expander.New(fake)

	query, aiLog, err := e.Expand(context.Background(), "bitcoin")
	require.NoError(t, err)
	assert.Equal(t, []string{"bitcoin"}, query.WordsAnd)
	assert.Equal(t, []string{"btc", "crypto"}, query.WordsOr)
	assert.Equal(t, []string{"Bitcoin"}, query.Hashtags)
	assert.Equal(t, 1, fake.calls)
	require.NotNil(t, aiLog)
	assert.Equal(t, "expand", aiLog.Purpose)
}

func TestExpandStripsMarkdownCodeFence(t *testing.T) {
	fake := &fakeLLM{text: "```json\n{\"words_and\":[\"ai\"],\"words_or\":[],\"hashtag\":[\"AI\"]}\n```"}
	e := expander.New(fake)

	query, _, err := e.Expand(context.Background(), "ai")
	require.NoError(t, err)
	assert.Equal(t, []string{"ai"}, query.WordsAnd)
	assert.Equal(t, []string{"AI"}, query.Hashtags)
}

func TestExpandFallsBackOnInvalidJSON(t *testing.T) {
	fake := &fakeLLM{text: "Sure! Here are some keywords you could use: bitcoin, crypto"}
	e := expander.New(fake)

	query, aiLog, err := e.Expand(context.Background(), "bitcoin")
	require.NoError(t, err, "schema violations degrade, they do not fail the request")
	assert.Equal(t, []string{"bitcoin"}, query.WordsAnd)
	assert.Empty(t, query.WordsOr)
	assert.Empty(t, query.Hashtags)
	assert.NotNil(t, aiLog)
}

func TestExpandCoercesNonArrayFieldsPerField(t *testing.T) {
	// words_and is a bare string: only that field degrades to empty.
	fake := &fakeLLM{text: `{"words_and":"bitcoin","words_or":["crypto"],"hashtag":["BTC"]}`}
	e := expander.New(fake)

	query, _, err := e.Expand(context.Background(), "bitcoin")
	require.NoError(t, err)
	assert.Empty(t, query.WordsAnd)
	assert.Equal(t, []string{"crypto"}, query.WordsOr)
	assert.Equal(t, []string{"BTC"}, query.Hashtags)
}

func TestExpandTreatsMissingFieldsAsEmpty(t *testing.T) {
	fake := &fakeLLM{text: `{"words_and":["tesla"]}`}
	e := expander.New(fake)

	query, _, err := e.Expand(context.Background(), "tesla")
	require.NoError(t, err)
	assert.Equal(t, []string{"tesla"}, query.WordsAnd)
	assert.NotNil(t, query.WordsOr)
	assert.Empty(t, query.WordsOr)
	assert.NotNil(t, query.Hashtags)
	assert.Empty(t, query.Hashtags)
}

func TestExpandPropagatesTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	fake := &fakeLLM{err: cause}
	e := expander.New(fake)

	_, aiLog, err := e.Expand(context.Background(), "bitcoin")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	require.NotNil(t, aiLog)
	assert.NotNil(t, aiLog.ErrorMessage)
}

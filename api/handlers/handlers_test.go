package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-pulse/aggregator"
	"social-pulse/analyzer"
	"social-pulse/api/handlers"
	"social-pulse/dto"
	"social-pulse/expander"
	"social-pulse/llm"
	"social-pulse/sources"
	"social-pulse/summarizer"
)

type scriptedLLM struct {
	expandText  string
	summaryText string
}

func (s *scriptedLLM) GenerateText(ctx context.Context, system, prompt string) (*llm.Result, error) {
	if strings.Contains(system, "research assistant") {
		return &llm.Result{Text: s.expandText, ModelName: "fake"}, nil
	}
	return &llm.Result{Text: s.summaryText, ModelName: "fake"}, nil
}

func testEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	model := &scriptedLLM{
		expandText:  `{"words_and":["bitcoin"],"words_or":["btc"],"hashtag":["BTC"]}`,
		summaryText: "Sentiment is positive.",
	}
	svc := analyzer.New(
		expander.New(model),
		aggregator.New(sources.NewRegistry(sources.NewFixture())),
		summarizer.New(model),
		model,
		nil,
	)

	r := gin.New()
	r.POST("/api/analyze", handlers.AnalyzeHandler(svc))
	r.POST("/api/suggestions", handlers.SuggestionsHandler(svc))
	return r
}

func TestAnalyzeEndpoint(t *testing.T) {
	r := testEngine()

	body := `{"topic":"bitcoin","sources":["fixture"],"maxItems":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bitcoin", resp.Topic)
	assert.Equal(t, []string{"bitcoin"}, resp.ScweetKeywords.WordsAnd)
	assert.Len(t, resp.Tweets, 3)
	assert.Equal(t, "Sentiment is positive.", resp.Analysis)
	assert.Equal(t, 3, resp.Metadata.TotalResults)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestAnalyzeEndpointMissingTopic(t *testing.T) {
	r := testEngine()

	for _, body := range []string{`{}`, `{"topic":""}`, `{"topic":"  "}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "topic is required", resp.Error)
	}
}

func TestAnalyzeEndpointLegacyPlatforms(t *testing.T) {
	r := testEngine()

	// Only youtube is toggled on: it is declared but unwired, so the
	// pipeline runs with zero posts instead of failing.
	body := `{"topic":"bitcoin","platforms":{"twitter":false,"reddit":false,"youtube":true}}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Tweets)
	assert.Equal(t, summarizer.NoDataMessage, resp.Analysis)
}

func TestSuggestionsEndpoint(t *testing.T) {
	r := testEngine()

	req := httptest.NewRequest(http.MethodPost, "/api/suggestions", strings.NewReader(`{"topic":"bitcoin"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuggestionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bitcoin", resp.Topic)
	assert.NotEmpty(t, resp.Suggestions)
}

func TestSuggestionsEndpointMissingTopic(t *testing.T) {
	r := testEngine()

	req := httptest.NewRequest(http.MethodPost, "/api/suggestions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

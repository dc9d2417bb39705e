package dto

import (
	"time"

	"social-pulse/models"
)

// AnalyzeRequest is the body of POST /api/analyze.
// Platforms is the legacy boolean toggle map; Sources is the preferred
// explicit list. When both are present Sources wins.
type AnalyzeRequest struct {
	Topic     string          `json:"topic" binding:"required"`
	Platforms *PlatformToggle `json:"platforms,omitempty"`
	Sources   []string        `json:"sources,omitempty"`
	Since     string          `json:"since,omitempty"`
	Until     string          `json:"until,omitempty"`
	MaxItems  int             `json:"maxItems,omitempty"`
	MinLikes  int             `json:"minLikes,omitempty"`
	Language  string          `json:"language,omitempty"`
}

// PlatformToggle mirrors the boolean platform flags of older clients.
type PlatformToggle struct {
	Twitter bool `json:"twitter"`
	Reddit  bool `json:"reddit"`
	YouTube bool `json:"youtube"`
}

// AnalyzeResponse keeps the original field names API consumers depend on:
// scweetKeywords carries the expanded query, tweets the fetched posts and
// analysis the summary text.
type AnalyzeResponse struct {
	Topic          string                 `json:"topic"`
	ScweetKeywords models.StructuredQuery `json:"scweetKeywords"`
	Tweets         []models.Post          `json:"tweets"`
	Analysis       string                 `json:"analysis"`
	Metadata       models.Metadata        `json:"metadata"`
	Timestamp      time.Time              `json:"timestamp"`
}

// NewAnalyzeResponse constructs AnalyzeResponse from models.AnalysisResult
func NewAnalyzeResponse(r *models.AnalysisResult) AnalyzeResponse {
	return AnalyzeResponse{
		Topic:          r.Topic,
		ScweetKeywords: r.Query,
		Tweets:         r.Posts,
		Analysis:       r.Summary,
		Metadata:       r.Metadata,
		Timestamp:      r.GeneratedAt,
	}
}

// SuggestionsRequest is the body of POST /api/suggestions.
type SuggestionsRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// SuggestionsResponse carries the generated keyword list.
type SuggestionsResponse struct {
	Topic       string   `json:"topic"`
	Suggestions []string `json:"suggestions"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

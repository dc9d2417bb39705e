package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateRange 날짜 범위
type DateRange struct {
	Since time.Time `bson:"since" json:"since"`
	Until time.Time `bson:"until" json:"until"`
}

// Metadata describes how one aggregation run was executed.
type Metadata struct {
	DateRange    DateRange    `bson:"date_range" json:"date_range"`
	Sources      []SourceKind `bson:"sources" json:"sources"`
	Options      FetchOptions `bson:"options" json:"options"`
	TotalResults int          `bson:"total_results" json:"total_results"`
}

// AnalysisResult is the terminal artifact of one analysis request.
// It is assembled once all pipeline stages complete and is immutable afterward.
type AnalysisResult struct {
	Topic       string          `json:"topic"`
	Query       StructuredQuery `json:"query"`
	Posts       []Post          `json:"posts"`
	Summary     string          `json:"summary"`
	Metadata    Metadata        `json:"metadata"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// AnalysisRun is the persisted record of one analysis request.
// Collection: analyses
type AnalysisRun struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RunID      string             `bson:"run_id" json:"run_id"`
	Topic      string             `bson:"topic" json:"topic"`
	Query      StructuredQuery    `bson:"query" json:"query"`
	Summary    string             `bson:"summary" json:"summary"`
	PostCount  int                `bson:"post_count" json:"post_count"`
	Sources    []SourceKind       `bson:"sources" json:"sources"`
	DurationMs int64              `bson:"duration_ms" json:"duration_ms"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

package events

import (
	"time"

	"social-pulse/models"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	AnalysisRequested EventType = "analysis.requested"
	AnalysisCompleted EventType = "analysis.completed"
)

// Topic 은 분석 수명주기 이벤트가 발행되는 Kafka 토픽이다.
const Topic = "socialpulse.analysis"

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// AnalysisRequestedEvent 분석 요청 접수 이벤트
type AnalysisRequestedEvent struct {
	BaseEvent
	RunID   string              `json:"run_id"`
	Topic   string              `json:"topic"`
	Sources []models.SourceKind `json:"sources"`
}

// AnalysisCompletedEvent 분석 완료 이벤트
type AnalysisCompletedEvent struct {
	BaseEvent
	RunID      string                 `json:"run_id"`
	Topic      string                 `json:"topic"`
	Query      models.StructuredQuery `json:"query"`
	PostCount  int                    `json:"post_count"`
	Sources    []models.SourceKind    `json:"sources"`
	DurationMs int64                  `json:"duration_ms"`
}

// Package analyzer sequences the analysis pipeline:
// expand -> aggregate -> summarize, then assembles the final result.
package analyzer

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"social-pulse/aggregator"
	"social-pulse/eventbus"
	"social-pulse/events"
	"social-pulse/expander"
	"social-pulse/llm"
	"social-pulse/logger"
	"social-pulse/models"
	"social-pulse/repositories"
	"social-pulse/summarizer"
)

// ErrEmptyTopic 은 topic 검증 실패를 나타낸다. 외부 호출 이전에 반환된다.
var ErrEmptyTopic = errors.New("topic is required")

// Request is one analysis request after HTTP-level decoding.
type Request struct {
	Topic   string
	Sources []models.SourceKind
	Options models.FetchOptions
}

// Service wires the pipeline stages together. Persistence and event
// publishing are optional collaborators: a nil repo or bus disables them.
type Service struct {
	expander   *expander.Expander
	aggregator *aggregator.Aggregator
	summarizer *summarizer.Summarizer
	llmClient  llm.Client
	bus        eventbus.EventBus

	analysisRepo *repositories.AnalysisRepository
	aiLogRepo    *repositories.AILogRepository
}

func New(exp *expander.Expander, agg *aggregator.Aggregator, sum *summarizer.Summarizer, llmClient llm.Client, bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.NewNoop()
	}
	return &Service{
		expander:   exp,
		aggregator: agg,
		summarizer: sum,
		llmClient:  llmClient,
		bus:        bus,
	}
}

// WithRepositories enables run-history and LLM-usage persistence.
func (s *Service) WithRepositories(analysisRepo *repositories.AnalysisRepository, aiLogRepo *repositories.AILogRepository) *Service {
	s.analysisRepo = analysisRepo
	s.aiLogRepo = aiLogRepo
	return s
}

// AnalyzeTopic runs the full pipeline for one topic.
//
// 확장/수집 단계의 전송 오류는 요청 전체의 실패다. 요약 단계는 자체 복구하므로
// 여기까지 오면 항상 결과가 조립된다. 영속화와 이벤트 발행은 best-effort 로,
// 실패해도 결과 반환에는 영향을 주지 않는다.
func (s *Service) AnalyzeTopic(ctx context.Context, req Request) (*models.AnalysisResult, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	runID := uuid.NewString()
	start := time.Now()
	var aiLogs []*models.AILog

	logger.InfoWithFields("starting analysis", logger.Fields{
		"run_id":  runID,
		"topic":   topic,
		"sources": req.Sources,
	})
	s.publishRequested(ctx, runID, topic, req.Sources)

	query, expandLog, err := s.expander.Expand(ctx, topic)
	aiLogs = append(aiLogs, expandLog)
	if err != nil {
		s.flushAILogs(ctx, runID, aiLogs)
		return nil, err
	}

	posts, meta, err := s.aggregator.Aggregate(ctx, query, req.Sources, req.Options)
	if err != nil {
		s.flushAILogs(ctx, runID, aiLogs)
		return nil, err
	}

	summary, summaryLog := s.summarizer.Summarize(ctx, topic, posts)
	aiLogs = append(aiLogs, summaryLog)

	result := &models.AnalysisResult{
		Topic:       topic,
		Query:       query,
		Posts:       posts,
		Summary:     summary,
		Metadata:    meta,
		GeneratedAt: time.Now(),
	}

	duration := time.Since(start)
	s.flushAILogs(ctx, runID, aiLogs)
	s.persistRun(ctx, runID, result, duration)
	s.publishCompleted(ctx, runID, result, duration)

	logger.InfoWithFields("analysis complete", logger.Fields{
		"run_id":   runID,
		"topic":    topic,
		"posts":    len(posts),
		"duration": duration.String(),
	})
	return result, nil
}

var listNumberPattern = regexp.MustCompile(`^\d+[.)]\s*`)

const suggestionsInstruction = `You are a social media analysis expert. Generate relevant keywords and hashtags for the given topic. Return one suggestion per line, without commentary.`

// Suggestions proposes search keywords for a topic.
// LLM 실패 시에는 topic 자체를 유일한 제안으로 반환한다.
func (s *Service) Suggestions(ctx context.Context, topic string) ([]string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	res, err := s.llmClient.GenerateText(ctx, suggestionsInstruction,
		"Generate 5 relevant keywords and hashtags for analyzing social media content about: "+topic)
	if err != nil {
		logger.WarnWithFields("suggestion generation failed", logger.Fields{
			"topic": topic,
			"error": err.Error(),
		})
		return []string{topic}, nil
	}

	var suggestions []string
	for _, line := range strings.Split(res.Text, "\n") {
		line = strings.TrimSpace(listNumberPattern.ReplaceAllString(strings.TrimSpace(line), ""))
		if line != "" {
			suggestions = append(suggestions, line)
		}
	}
	if len(suggestions) == 0 {
		suggestions = []string{topic}
	}
	return suggestions, nil
}

func (s *Service) flushAILogs(ctx context.Context, runID string, aiLogs []*models.AILog) {
	if s.aiLogRepo == nil {
		return
	}
	for _, l := range aiLogs {
		if l == nil {
			continue
		}
		l.RunID = runID
		if _, err := s.aiLogRepo.Insert(ctx, *l); err != nil {
			logger.Log.Errorf("failed to insert ai_log (run=%s): %v", runID, err)
		}
	}
}

func (s *Service) persistRun(ctx context.Context, runID string, result *models.AnalysisResult, duration time.Duration) {
	if s.analysisRepo == nil {
		return
	}
	run := models.AnalysisRun{
		RunID:      runID,
		Topic:      result.Topic,
		Query:      result.Query,
		Summary:    result.Summary,
		PostCount:  len(result.Posts),
		Sources:    result.Metadata.Sources,
		DurationMs: duration.Milliseconds(),
		CreatedAt:  result.GeneratedAt,
	}
	if _, err := s.analysisRepo.Insert(ctx, run); err != nil {
		logger.Log.Errorf("failed to insert analysis run (run=%s): %v", runID, err)
	}
}

func (s *Service) publishRequested(ctx context.Context, runID, topic string, kinds []models.SourceKind) {
	payload := events.AnalysisRequestedEvent{
		BaseEvent: events.BaseEvent{
			ID:        uuid.NewString(),
			Type:      events.AnalysisRequested,
			Timestamp: time.Now(),
			Source:    "social-pulse",
			Version:   "1",
		},
		RunID:   runID,
		Topic:   topic,
		Sources: kinds,
	}

	event, err := eventbus.NewEvent(payload.ID, string(events.AnalysisRequested), payload)
	if err != nil {
		logger.Log.Errorf("failed to build analysis event (run=%s): %v", runID, err)
		return
	}
	if err := s.bus.Publish(ctx, events.Topic, event); err != nil {
		logger.Log.Errorf("failed to publish analysis event (run=%s): %v", runID, err)
	}
}

func (s *Service) publishCompleted(ctx context.Context, runID string, result *models.AnalysisResult, duration time.Duration) {
	payload := events.AnalysisCompletedEvent{
		BaseEvent: events.BaseEvent{
			ID:        uuid.NewString(),
			Type:      events.AnalysisCompleted,
			Timestamp: time.Now(),
			Source:    "social-pulse",
			Version:   "1",
		},
		RunID:      runID,
		Topic:      result.Topic,
		Query:      result.Query,
		PostCount:  len(result.Posts),
		Sources:    result.Metadata.Sources,
		DurationMs: duration.Milliseconds(),
	}

	event, err := eventbus.NewEvent(payload.ID, string(events.AnalysisCompleted), payload)
	if err != nil {
		logger.Log.Errorf("failed to build analysis event (run=%s): %v", runID, err)
		return
	}
	if err := s.bus.Publish(ctx, events.Topic, event); err != nil {
		logger.Log.Errorf("failed to publish analysis event (run=%s): %v", runID, err)
	}
}

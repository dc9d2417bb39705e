package summarizer

import (
	"context"
	"encoding/json"
	"fmt"

	"social-pulse/config"
	"social-pulse/llm"
	"social-pulse/logger"
	"social-pulse/models"
)

const SYSTEM_INSTRUCTION = `You are a social media analyst. Analyze the provided posts and provide insights about trends, sentiment, and key themes.`

// NoDataMessage 는 분석할 게시물이 없을 때 LLM 호출 없이 반환하는 고정 문구다.
const NoDataMessage = "No posts were found for this topic, so there is nothing to analyze."

// FallbackMessage 는 요약 호출이 실패했을 때의 고정 대체 문구다.
const FallbackMessage = "Unable to generate summary at this time."

const defaultExcerptSize = 10

// promptPost is the bounded view of a post embedded into the prompt.
type promptPost struct {
	Text      string             `json:"text"`
	CreatedAt string             `json:"created_at"`
	AuthorID  string             `json:"author_id"`
	Metrics   models.PostMetrics `json:"metrics"`
}

// Summarizer produces the natural-language analysis of collected posts.
type Summarizer struct {
	client      llm.Client
	excerptSize int
}

func New(client llm.Client) *Summarizer {
	excerptSize := config.GetConfig().Analysis.SummaryExcerpt
	if excerptSize <= 0 {
		excerptSize = defaultExcerptSize
	}
	return &Summarizer{client: client, excerptSize: excerptSize}
}

// Summarize analyzes the posts for a topic.
//
// 요약 실패는 파이프라인을 중단시키지 않는다. 전송 오류는 고정 대체 문구로
// 흡수되며 에러는 반환되지 않는다. (확장 단계와 달리 요약은 파이프라인의
// 마지막 단계이므로 자체 복구한다.)
func (s *Summarizer) Summarize(ctx context.Context, topic string, posts []models.Post) (string, *models.AILog) {
	if len(posts) == 0 {
		// 빈 입력에 대한 LLM 호출은 비용만 들고 의미가 없다.
		return NoDataMessage, nil
	}

	excerpt := posts
	if len(excerpt) > s.excerptSize {
		excerpt = excerpt[:s.excerptSize]
	}
	prompt := buildPrompt(topic, excerpt)

	res, err := s.client.GenerateText(ctx, SYSTEM_INSTRUCTION, prompt)
	aiLog := llm.NewLog("summarize", SYSTEM_INSTRUCTION, prompt, res, err)
	if err != nil {
		logger.ErrorWithFields("summary generation failed, using fallback message", logger.Fields{
			"topic": topic,
			"error": err.Error(),
		})
		return FallbackMessage, aiLog
	}
	return res.Text, aiLog
}

func buildPrompt(topic string, posts []models.Post) string {
	view := make([]promptPost, 0, len(posts))
	for _, p := range posts {
		view = append(view, promptPost{
			Text:      p.Text,
			CreatedAt: p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
			AuthorID:  p.AuthorID,
			Metrics:   p.Metrics,
		})
	}

	encoded, err := json.Marshal(view)
	if err != nil {
		encoded = []byte("[]")
	}
	return fmt.Sprintf("Analyze these posts about %q and provide a summary of key insights: %s", topic, string(encoded))
}

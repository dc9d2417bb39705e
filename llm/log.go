package llm

import (
	"time"

	"social-pulse/models"
)

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}

// NewLog 는 한 번의 생성 호출에 대한 AILog 문서를 만든다.
// 프롬프트/응답은 저장 비용을 줄이기 위해 발췌만 남긴다.
func NewLog(purpose, system, prompt string, res *Result, callErr error) *models.AILog {
	now := time.Now()
	log := &models.AILog{
		Purpose:     purpose,
		InputPrompt: truncate(system+"\n\n"+prompt, 2000),
		CompletedAt: now,
	}
	if res != nil {
		log.ModelName = res.ModelName
		log.ModelVersion = res.ModelVersion
		log.InputTokens = res.Usage.InputTokens
		log.OutputTokens = res.Usage.OutputTokens
		log.TotalTokens = res.Usage.TotalTokens
		log.DurationMs = res.Latency.Milliseconds()
		log.OutputResponse = truncate(res.Text, 2000)
		log.RequestedAt = now.Add(-res.Latency)
	} else {
		log.RequestedAt = now
	}
	if callErr != nil {
		msg := callErr.Error()
		log.ErrorMessage = &msg
	}
	return log
}

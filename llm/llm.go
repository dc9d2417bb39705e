package llm

import (
	"context"
	"time"
)

// Usage captures token accounting for one generation call.
type Usage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// Result is the outcome of one generation call.
type Result struct {
	Text         string
	ModelName    string
	ModelVersion string
	Usage        Usage
	Latency      time.Duration
}

// Client 는 생성형 텍스트 호출의 추상화다.
// 테스트에서는 가짜 구현으로 교체해 호출 횟수/프롬프트를 검증한다.
type Client interface {
	GenerateText(ctx context.Context, system, prompt string) (*Result, error)
}

package expander

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"social-pulse/llm"
	"social-pulse/logger"
	"social-pulse/models"
)

const SYSTEM_INSTRUCTION = `You are a social media research assistant. Given a topic, return a JSON object with three arrays: "words_and" (main keywords, all must be present in a post), "words_or" (related/optional keywords, at least one must be present), and "hashtag" (relevant hashtags, without the # symbol). Only return valid JSON, no explanation. Do not wrap the JSON in a markdown code block.`

// Expander turns a free-text topic into a StructuredQuery via one LLM call.
type Expander struct {
	client llm.Client
}

func New(client llm.Client) *Expander {
	return &Expander{client: client}
}

// Expand performs the expansion call.
//
// 모델이 스키마를 지키지 않는 경우(비 JSON, 필드 누락)는 에러가 아니라
// fallback 쿼리로 강등된다. 전송 계층 에러만 에러로 반환하며, 이는 파이프라인
// 전체의 실패로 전파된다.
func (e *Expander) Expand(ctx context.Context, topic string) (models.StructuredQuery, *models.AILog, error) {
	prompt := fmt.Sprintf("Expand the topic %q for social media search.", topic)

	res, err := e.client.GenerateText(ctx, SYSTEM_INSTRUCTION, prompt)
	aiLog := llm.NewLog("expand", SYSTEM_INSTRUCTION, prompt, res, err)
	if err != nil {
		return models.StructuredQuery{}, aiLog, fmt.Errorf("topic expansion failed: %w", err)
	}

	// 느슨하게 디코드한 뒤 필드 단위로 보정한다. 모델이 일부 필드를
	// 누락하거나 배열이 아닌 값을 넣어도 해당 필드만 빈 배열이 된다.
	var raw struct {
		WordsAnd json.RawMessage `json:"words_and"`
		WordsOr  json.RawMessage `json:"words_or"`
		Hashtags json.RawMessage `json:"hashtag"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(res.Text)), &raw); err != nil {
		logger.WarnWithFields("expansion output was not valid JSON, using fallback query", logger.Fields{
			"topic":    topic,
			"response": truncate(res.Text, 200),
		})
		return models.FallbackQuery(topic), aiLog, nil
	}

	query := models.StructuredQuery{
		WordsAnd: stringsOrEmpty(raw.WordsAnd),
		WordsOr:  stringsOrEmpty(raw.WordsOr),
		Hashtags: stringsOrEmpty(raw.Hashtags),
	}
	return query, aiLog, nil
}

// stringsOrEmpty decodes a JSON value as a string array, degrading to an
// empty array for absent or non-array values.
func stringsOrEmpty(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// stripCodeFence removes a surrounding ```json ... ``` block if the model
// ignored the raw-JSON instruction.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}

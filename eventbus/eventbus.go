package eventbus

import (
	"context"
	"encoding/json"
)

// Event는 Kafka 메시지의 페이로드로 사용되는 구조체입니다.
type Event struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// EventBus 인터페이스는 이벤트 발행의 추상화를 정의합니다.
// 분석 파이프라인은 발행만 하며, 소비자는 별도 서비스의 몫입니다.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// NewEvent 는 임의의 페이로드를 직렬화해 Event 로 감쌉니다.
func NewEvent(id, eventType string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{ID: id, Type: eventType, Payload: data}, nil
}

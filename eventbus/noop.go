package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
)

func marshalEvent(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("이벤트 마샬링 실패: %w", err)
	}
	return data, nil
}

// Noop 은 이벤트 발행이 비활성화된 환경(로컬, 테스트)에서 사용하는 구현체다.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) Publish(ctx context.Context, topic string, event Event) error {
	// 직렬화 가능성만 검증하고 버린다.
	_, err := marshalEvent(event)
	return err
}

func (n *Noop) Close() {}

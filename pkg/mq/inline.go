package mq

import (
	"context"
	"sync"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// InlinePublisher hands events to an in-process handler on a background
// goroutine. It stands in for RabbitMQ when no broker is configured.
type InlinePublisher struct {
	handler VideoEventHandler
	wg      sync.WaitGroup
}

func NewInlinePublisher(handler VideoEventHandler) *InlinePublisher {
	return &InlinePublisher{handler: handler}
}

func (p *InlinePublisher) PublishVideoEvent(ctx context.Context, event *VideoEvent) error {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		// 请求结束后 ctx 会被取消, 这里使用独立的 context
		if err := p.handler.HandleVideoEvent(context.Background(), event); err != nil {
			hlog.Errorf("inline video event %s %s failed: %v", event.Type, event.VideoID, err)
		}
	}()
	return nil
}

// Close waits for in-flight events.
func (p *InlinePublisher) Close() error {
	p.wg.Wait()
	return nil
}

type NopPublisher struct{}

func (NopPublisher) PublishVideoEvent(context.Context, *VideoEvent) error { return nil }

func (NopPublisher) Close() error { return nil }

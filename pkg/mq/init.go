package mq

import (
	"context"
	"fmt"
	"time"

	"VideoHub.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var publisher Publisher = NopPublisher{}

// Init connects the RabbitMQ producer, falling back to handling events
// in-process with fallback when no broker is configured or reachable.
func Init(fallback VideoEventHandler) {
	if url := URL(); url != "" {
		p, err := NewProducer(url)
		if err == nil {
			hlog.Info("Connect RabbitMQ Success")
			publisher = p
			return
		}
		hlog.Errorf("RabbitMQ unavailable, handling video events in-process: %v", err)
	}
	publisher = NewInlinePublisher(fallback)
}

// URL builds the amqp url from config, empty when RabbitMQ is not configured.
func URL() string {
	c := config.ConfigInfo.RabbitMq
	if c.Addr == "" {
		return ""
	}
	return fmt.Sprintf("amqp://%s:%s@%s/", c.Username, c.Password, c.Addr)
}

// SetPublisher replaces the active publisher and returns the previous one.
func SetPublisher(p Publisher) Publisher {
	prev := publisher
	publisher = p
	return prev
}

// PublishVideoEvent stamps and publishes event. Failures are logged, the
// caller's request already succeeded.
func PublishVideoEvent(ctx context.Context, event *VideoEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if err := publisher.PublishVideoEvent(ctx, event); err != nil {
		hlog.CtxErrorf(ctx, "publish %s for video %s failed: %v", event.Type, event.VideoID, err)
	}
}

func Close() error {
	return publisher.Close()
}

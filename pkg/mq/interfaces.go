package mq

import "context"

// Publisher 消息生产者接口
type Publisher interface {
	PublishVideoEvent(ctx context.Context, event *VideoEvent) error
	Close() error
}

type VideoEventHandler interface {
	HandleVideoEvent(ctx context.Context, event *VideoEvent) error
}

// 确保各实现满足 Publisher 接口
var (
	_ Publisher = (*Producer)(nil)
	_ Publisher = (*InlinePublisher)(nil)
	_ Publisher = NopPublisher{}
)

package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	// 设置QoS，限制未确认消息数量
	err = ch.Qos(
		4,     // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}
	if err = setupTopology(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}

	return &Consumer{conn: conn, channel: ch}, nil
}

// ConsumeVideoEvents blocks until ctx is done or the delivery channel closes.
func (c *Consumer) ConsumeVideoEvents(ctx context.Context, handler VideoEventHandler) error {
	msgs, err := c.channel.Consume(
		VideoEventQueue,
		"",    // consumer
		false, // auto-ack (设置为false，手动确认)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			hlog.Info("Video event consumer context cancelled")
			return nil
		case d, ok := <-msgs:
			if !ok {
				hlog.Info("Video event consumer channel closed")
				return nil
			}
			handleDelivery(ctx, d, handler)
		}
	}
}

type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func handleDelivery(ctx context.Context, d amqp091.Delivery, handler VideoEventHandler) {
	dispatch(ctx, d.Body, &d, handler)
}

func dispatch(ctx context.Context, body []byte, ack acknowledger, handler VideoEventHandler) {
	var event VideoEvent
	if err := json.Unmarshal(body, &event); err != nil {
		hlog.Errorf("Failed to unmarshal video event: %v", err)
		ack.Nack(false, false) // 拒绝消息，不重新入队
		return
	}

	if err := handler.HandleVideoEvent(ctx, &event); err != nil {
		hlog.Errorf("Failed to handle video event %s %s: %v", event.Type, event.VideoID, err)
		// 处理失败不重新入队, 避免坏文件反复投递
		ack.Nack(false, false)
		return
	}

	ack.Ack(false) // 确认消息
	hlog.CtxInfof(ctx, "Successfully processed video event: %s %s", event.Type, event.VideoID)
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

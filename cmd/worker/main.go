package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"VideoHub.com/cmd/video/infras/redis"
	"VideoHub.com/cmd/video/service"
	"VideoHub.com/config"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/logger"
	"VideoHub.com/pkg/mq"
	"VideoHub.com/pkg/oss"
	"VideoHub.com/pkg/search"
	"github.com/sirupsen/logrus"
)

// worker 消费 video.uploaded / video.deleted 事件, 处理媒体文件
func main() {
	config.Init()
	c := config.ConfigInfo
	logger.Init(logger.Config{
		Level:      c.Log.Level,
		Format:     c.Log.Format,
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
	})
	url := mq.URL()
	if url == "" {
		logrus.Fatal("rabbitmq.addr is not configured, the api handles video events in-process")
	}
	database.Init()
	redis.Load()
	defer redis.Close()
	if err := oss.Init(); err != nil {
		logrus.Fatalf("init storage failed: %v", err)
	}
	if err := search.Init(); err != nil {
		logrus.Errorf("Elasticsearch unavailable, videos will not be indexed: %v", err)
	}

	consumer, err := mq.NewConsumer(url)
	if err != nil {
		logrus.Fatalf("connect rabbitmq failed: %v", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logrus.Info("video worker started")
	if err = consumer.ConsumeVideoEvents(ctx, service.NewVideoProcessor()); err != nil && ctx.Err() == nil {
		logrus.Errorf("consume video events stopped: %v", err)
	}
	logrus.Info("video worker stopped")
}

package redis

import (
	"context"
	"time"

	"VideoHub.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var redisDBVideoInfo *redis.Client

// Load connects the video cache. Without an address, or when the server does
// not answer, every cache call is skipped and the database answers directly.
func Load() {
	if config.ConfigInfo.Redis.Addr == "" {
		hlog.Info("redis not configured, video cache disabled")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       config.ConfigInfo.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		hlog.Warnf("redisDBVideoInfo ping failed, cache disabled: %v", err)
		_ = client.Close()
		return
	}
	redisDBVideoInfo = client
	hlog.Info("Connect Redis Success")
}

// Client returns nil when the cache is disabled.
func Client() *redis.Client {
	return redisDBVideoInfo
}

// SetClient replaces the client and returns the previous one.
func SetClient(c *redis.Client) *redis.Client {
	prev := redisDBVideoInfo
	redisDBVideoInfo = c
	return prev
}

func Close() {
	if redisDBVideoInfo != nil {
		_ = redisDBVideoInfo.Close()
	}
}

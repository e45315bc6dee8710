package redis

import (
	"context"
	"encoding/json"
	"time"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/constants"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const categoryTTL = 10 * time.Minute

// GetCategories returns ok=false on a miss or when the cache is disabled.
func GetCategories(ctx context.Context) ([]*model.Category, bool, error) {
	if redisDBVideoInfo == nil {
		return nil, false, nil
	}
	data, err := redisDBVideoInfo.Get(ctx, constants.CategoryCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "get categories cache failed")
	}
	var categories []*model.Category
	if err = json.Unmarshal(data, &categories); err != nil {
		return nil, false, errors.Wrap(err, "decode categories cache failed")
	}
	return categories, true, nil
}

func PutCategories(ctx context.Context, categories []*model.Category) error {
	if redisDBVideoInfo == nil {
		return nil
	}
	data, err := json.Marshal(categories)
	if err != nil {
		return errors.Wrap(err, "encode categories failed")
	}
	return errors.Wrap(redisDBVideoInfo.Set(ctx, constants.CategoryCacheKey, data, categoryTTL).Err(), "put categories cache failed")
}

// InvalidateCategories 分类被写入后调用
func InvalidateCategories(ctx context.Context) error {
	if redisDBVideoInfo == nil {
		return nil
	}
	return errors.Wrap(redisDBVideoInfo.Del(ctx, constants.CategoryCacheKey).Err(), "invalidate categories cache failed")
}

package service

import (
	"context"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/cmd/video/infras/redis"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// loadGroup collapses concurrent cache misses into one database read.
var loadGroup singleflight.Group

type CategoryService struct {
	ctx context.Context
}

func NewCategoryService(ctx context.Context) *CategoryService {
	return &CategoryService{ctx: ctx}
}

// ListCategories 先读缓存, 未命中再查库并回填
func (s *CategoryService) ListCategories() ([]*model.Category, error) {
	if categories, ok, err := redis.GetCategories(s.ctx); err != nil {
		hlog.CtxWarnf(s.ctx, "read categories cache failed: %v", err)
	} else if ok {
		return categories, nil
	}
	v, err, _ := loadGroup.Do("categories", func() (interface{}, error) {
		categories, err := db.ListCategories(s.ctx)
		if err != nil {
			return nil, errors.WithMessage(err, "dao.ListCategories failed")
		}
		if err = redis.PutCategories(s.ctx, categories); err != nil {
			hlog.CtxWarnf(s.ctx, "fill categories cache failed: %v", err)
		}
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*model.Category), nil
}

package service

import (
	"context"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/cmd/video/infras/redis"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

// ListVideos returns published videos newest first, optionally of one category.
func (s *VideoListService) ListVideos(categorySlug string, page, limit int) ([]*model.Video, *VideoPagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > constants.HomePageSize {
		limit = constants.HomePageSize
	}
	videos, total, err := db.ListVideos(s.ctx, db.VideoFilter{PublishedOnly: true, CategorySlug: categorySlug}, (page-1)*limit, limit)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "dao.ListVideos failed")
	}
	return videos, &VideoPagination{
		Page:        page,
		Limit:       limit,
		TotalPages:  utils.TotalPages(total, limit),
		TotalVideos: total,
	}, nil
}

// PopularVideos reads the visit ranking from redis and falls back to the
// views column when the ranking is missing or shorter than limit.
func (s *VideoListService) PopularVideos(limit int) ([]*model.Video, error) {
	if limit < 1 {
		limit = constants.PopularDefaultSize
	}
	if limit > constants.SearchMaxLimit {
		limit = constants.SearchMaxLimit
	}
	ids, ok, err := redis.TopVideos(s.ctx, limit)
	if err != nil {
		hlog.CtxWarnf(s.ctx, "read visit ranking failed: %v", err)
	}
	if ok && len(ids) >= limit {
		videos, err := db.GetVideoCardsByIDs(s.ctx, ids)
		if err != nil {
			return nil, errors.WithMessage(err, "dao.GetVideoCardsByIDs failed")
		}
		if len(videos) == limit {
			return videos, nil
		}
	}
	videos, err := db.PopularVideos(s.ctx, limit)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.PopularVideos failed")
	}
	return videos, nil
}

// LikedVideos is the caller's library: published videos they liked.
func (s *VideoListService) LikedVideos(userId string, page int) ([]*model.Video, *VideoPagination, error) {
	if page < 1 {
		page = 1
	}
	limit := constants.LibraryPageSize
	videos, total, err := db.LikedVideos(s.ctx, userId, (page-1)*limit, limit)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "dao.LikedVideos failed")
	}
	return videos, &VideoPagination{
		Page:        page,
		TotalPages:  utils.TotalPages(total, limit),
		TotalVideos: total,
	}, nil
}

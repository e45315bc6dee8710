package service

import (
	"context"

	"VideoHub.com/cmd/model"
	relationdb "VideoHub.com/cmd/relation/dal/db"
	"VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/cmd/video/infras/redis"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type VideoInfoService struct {
	ctx context.Context
}

func NewVideoInfoService(ctx context.Context) *VideoInfoService {
	return &VideoInfoService{ctx: ctx}
}

// VideoInfo loads a published video with its likes and uploader totals.
func (s *VideoInfoService) VideoInfo(videoId string) (*model.Video, error) {
	video, err := db.GetVideoCard(s.ctx, videoId, true)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideoCard failed")
	}
	if video == nil {
		return nil, errno.VideoNotFoundErr
	}
	videos, err := db.CountVideosByUser(s.ctx, video.UserID)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountVideosByUser failed")
	}
	subscribers, err := relationdb.CountSubscribers(s.ctx, video.UserID)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountSubscribers failed")
	}
	video.User.Count = &model.AuthorCount{Videos: videos, Subscribers: subscribers}
	if video.Likes == nil {
		video.Likes = []model.Like{}
	}
	return video, nil
}

// RelatedVideos shares the category or uploader of videoId.
func (s *VideoInfoService) RelatedVideos(videoId string) ([]*model.Video, error) {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil {
		return nil, errno.VideoNotFoundErr
	}
	videos, err := db.RelatedVideos(s.ctx, video, constants.RelatedVideoSize)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.RelatedVideos failed")
	}
	return videos, nil
}

// AddView counts one view of a published video and returns the new total.
func (s *VideoInfoService) AddView(videoId string) (int64, error) {
	views, found, err := db.IncrementViews(s.ctx, videoId)
	if err != nil {
		return 0, errors.WithMessage(err, "dao.IncrementViews failed")
	}
	if !found {
		return 0, errno.VideoNotFoundErr
	}
	if err = redis.PutVideoVisit(s.ctx, videoId, views); err != nil {
		hlog.CtxWarnf(s.ctx, "update visit ranking failed: %v", err)
	}
	return views, nil
}

package service

import (
	"context"

	"VideoHub.com/cmd/interaction/dal/db"
	videodb "VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/errno"
	"github.com/pkg/errors"
)

type LikeService struct {
	ctx context.Context
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{ctx: ctx}
}

// ToggleLike switches the reaction of userId on a published video.
func (s *LikeService) ToggleLike(userId, videoId, likeType string) (action string, current *string, err error) {
	if likeType != constants.LikeTypeLike && likeType != constants.LikeTypeDislike {
		return "", nil, errno.InvalidLikeTypeErr
	}
	if err = requirePublished(s.ctx, videoId); err != nil {
		return "", nil, err
	}
	if action, current, err = db.ToggleLike(s.ctx, userId, videoId, likeType); err != nil {
		return "", nil, errors.WithMessage(err, "dao.ToggleLike failed")
	}
	return action, current, nil
}

// LikeStatus returns the caller's reaction type, nil when there is none.
func (s *LikeService) LikeStatus(userId, videoId string) (*string, error) {
	like, err := db.GetLike(s.ctx, userId, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetLike failed")
	}
	if like == nil {
		return nil, nil
	}
	return &like.Type, nil
}

// LikeCounts returns the LIKE and DISLIKE totals of videoId.
func (s *LikeService) LikeCounts(videoId string) (likes, dislikes int64, err error) {
	if likes, err = db.CountLikes(s.ctx, videoId, constants.LikeTypeLike); err != nil {
		return 0, 0, errors.WithMessage(err, "dao.CountLikes failed")
	}
	if dislikes, err = db.CountLikes(s.ctx, videoId, constants.LikeTypeDislike); err != nil {
		return 0, 0, errors.WithMessage(err, "dao.CountLikes failed")
	}
	return likes, dislikes, nil
}

func requirePublished(ctx context.Context, videoId string) error {
	video, err := videodb.GetVideo(ctx, videoId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil || !video.IsPublished {
		return errno.VideoNotFoundErr
	}
	return nil
}

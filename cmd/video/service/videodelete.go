package service

import (
	"context"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/mq"
	"github.com/pkg/errors"
)

type DeleteVideoService struct {
	ctx context.Context
}

func NewDeleteVideoService(ctx context.Context) *DeleteVideoService {
	return &DeleteVideoService{ctx: ctx}
}

// DeleteVideo is allowed to the uploader and to admins.
func (s *DeleteVideoService) DeleteVideo(actor *model.User, videoId string) error {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil {
		return errno.VideoNotFoundErr
	}
	if video.UserID != actor.ID && !actor.IsAdmin() {
		return errno.PermissionDeniedErr
	}
	if err = db.DeleteVideo(s.ctx, videoId); err != nil {
		return errors.WithMessage(err, "dao.DeleteVideo failed")
	}
	mq.PublishVideoEvent(s.ctx, &mq.VideoEvent{
		Type:         mq.VideoDeleted,
		VideoID:      video.ID,
		UserID:       video.UserID,
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
	})
	return nil
}

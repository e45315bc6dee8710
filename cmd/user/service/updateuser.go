package service

import (
	"context"
	"fmt"
	"strings"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/user/dal/db"
	videodb "VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type UpdateUserService struct {
	ctx context.Context
}

func NewUpdateUserService(ctx context.Context) *UpdateUserService {
	return &UpdateUserService{ctx: ctx}
}

// UpdateUser lets an admin disable/enable or re-role another account.
// It returns the updated user and the action message.
func (s *UpdateUserService) UpdateUser(actor *model.User, userId string, req *UpdateUserRequest) (*model.User, string, error) {
	if actor.ID == userId {
		return nil, "", errno.SelfModifyErr
	}
	if req.Role != nil && !constants.IsValidRole(*req.Role) {
		return nil, "", errno.InvalidRoleErr
	}
	target, err := db.GetUser(s.ctx, userId)
	if err != nil {
		return nil, "", errors.WithMessage(err, "dao.GetUser failed")
	}
	if target == nil {
		return nil, "", errno.UserNotFoundErr
	}
	if err = db.UpdateUser(s.ctx, userId, req.Disabled, req.Role); err != nil {
		return nil, "", errors.WithMessage(err, "dao.UpdateUser failed")
	}
	if req.Disabled != nil {
		target.Disabled = *req.Disabled
	}
	if req.Role != nil {
		target.Role = *req.Role
	}
	return target, actionMessage(req), nil
}

func actionMessage(req *UpdateUserRequest) string {
	var actions []string
	if req.Disabled != nil {
		if *req.Disabled {
			actions = append(actions, "disabled")
		} else {
			actions = append(actions, "enabled")
		}
	}
	if req.Role != nil {
		actions = append(actions, "role changed to "+*req.Role)
	}
	return fmt.Sprintf("User %s successfully", strings.Join(actions, " and "))
}

// DeleteUser removes another account and everything it owns. Stored media
// of the removed videos is cleaned up through video.deleted events.
func (s *UpdateUserService) DeleteUser(actor *model.User, userId string) error {
	if actor.ID == userId {
		return errno.SelfDeleteErr
	}
	target, err := db.GetUser(s.ctx, userId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetUser failed")
	}
	if target == nil {
		return errno.UserNotFoundErr.WithMessage("User not found.")
	}
	videos, err := videodb.ListVideosByUser(s.ctx, userId)
	if err != nil {
		return errors.WithMessage(err, "dao.ListVideosByUser failed")
	}
	if err = db.DeleteUser(s.ctx, userId); err != nil {
		return errors.WithMessage(err, "dao.DeleteUser failed")
	}
	hlog.CtxInfof(s.ctx, "user %s deleted by %s with %d videos", userId, actor.ID, len(videos))
	for _, v := range videos {
		mq.PublishVideoEvent(s.ctx, &mq.VideoEvent{
			Type:         mq.VideoDeleted,
			VideoID:      v.ID,
			UserID:       v.UserID,
			VideoURL:     v.VideoURL,
			ThumbnailURL: v.ThumbnailURL,
		})
	}
	return nil
}

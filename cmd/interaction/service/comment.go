package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"VideoHub.com/cmd/interaction/dal/db"
	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/errno"
	"github.com/pkg/errors"
)

const SortOldest = "oldest"

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// ListComments is newest first unless sort is "oldest".
func (s *CommentService) ListComments(videoId, sort string) ([]*model.Comment, error) {
	comments, err := db.ListComments(s.ctx, videoId, sort == SortOldest)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListComments failed")
	}
	return comments, nil
}

func (s *CommentService) CreateComment(user *model.User, videoId, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.CommentContentErr
	}
	if utf8.RuneCountInString(content) > constants.MaxCommentLen {
		return nil, errno.CommentTooLongErr
	}
	if err := requirePublished(s.ctx, videoId); err != nil {
		return nil, err
	}
	comment := &model.Comment{Content: content, UserID: user.ID, VideoID: videoId}
	if err := db.CreateComment(s.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}
	comment.User = model.Author{ID: user.ID, Username: user.Username, Name: user.Name, Avatar: user.Avatar}
	return comment, nil
}

// DeleteComment is allowed to the author and to moderators.
func (s *CommentService) DeleteComment(user *model.User, videoId, commentId string) error {
	comment, err := db.GetComment(s.ctx, commentId)
	if err != nil {
		return errors.WithMessage(err, "dao.GetComment failed")
	}
	if comment == nil || comment.VideoID != videoId {
		return errno.CommentNotFoundErr
	}
	if comment.UserID != user.ID && !user.CanModerate() {
		return errno.PermissionDeniedErr
	}
	if err = db.DeleteComment(s.ctx, commentId); err != nil {
		return errors.WithMessage(err, "dao.DeleteComment failed")
	}
	return nil
}

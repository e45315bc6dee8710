package db

import (
	"context"

	"VideoHub.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := conn(ctx).Omit("User").Create(comment).Error; err != nil {
		return errors.Wrapf(err, "CreateComment failed,err:%v", err)
	}
	return nil
}

// GetComment returns the comment with its author, nil when missing.
func GetComment(ctx context.Context, commentId string) (*model.Comment, error) {
	var comment model.Comment
	err := conn(ctx).Preload("User").Where("id = ?", commentId).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "GetComment failed,err:%v", err)
	}
	return &comment, nil
}

// ListComments 获取视频的评论列表, oldest 为 true 时按时间正序
func ListComments(ctx context.Context, videoId string, oldest bool) ([]*model.Comment, error) {
	order := "created_at DESC"
	if oldest {
		order = "created_at ASC"
	}
	comments := make([]*model.Comment, 0)
	if err := conn(ctx).Preload("User").Where("video_id = ?", videoId).Order(order).Find(&comments).Error; err != nil {
		return nil, errors.Wrapf(err, "ListComments failed,err:%v", err)
	}
	return comments, nil
}

func DeleteComment(ctx context.Context, commentId string) error {
	if err := conn(ctx).Where("id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteComment failed,err:%v", err)
	}
	return nil
}

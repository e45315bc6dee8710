package db

import (
	"context"

	"VideoHub.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	LikeCreated = "created"
	LikeUpdated = "updated"
	LikeRemoved = "removed"
)

// GetLike returns nil when userId has no reaction on videoId.
func GetLike(ctx context.Context, userId, videoId string) (*model.Like, error) {
	var like model.Like
	err := conn(ctx).Where("user_id = ? AND video_id = ?", userId, videoId).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "GetLike failed,err:%v", err)
	}
	return &like, nil
}

// ToggleLike 在一个事务里完成读-改-写:
// 没有记录则创建, 类型相同则删除, 类型不同则更新.
// current is nil once the reaction is removed.
func ToggleLike(ctx context.Context, userId, videoId, likeType string) (action string, current *string, err error) {
	err = conn(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Like
		err := tx.Where("user_id = ? AND video_id = ?", userId, videoId).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			action, current = LikeCreated, &likeType
			return tx.Create(&model.Like{Type: likeType, UserID: userId, VideoID: videoId}).Error
		case err != nil:
			return err
		case existing.Type == likeType:
			action, current = LikeRemoved, nil
			return tx.Delete(&existing).Error
		default:
			action, current = LikeUpdated, &likeType
			return tx.Model(&existing).Update("type", likeType).Error
		}
	})
	if err != nil {
		return "", nil, errors.Wrapf(err, "ToggleLike failed, userId: %s videoId: %s", userId, videoId)
	}
	return action, current, nil
}

// CountLikes counts the reactions of one type on videoId.
func CountLikes(ctx context.Context, videoId, likeType string) (int64, error) {
	var count int64
	if err := conn(ctx).Model(&model.Like{}).Where("video_id = ? AND type = ?", videoId, likeType).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountLikes failed,err:%v", err)
	}
	return count, nil
}

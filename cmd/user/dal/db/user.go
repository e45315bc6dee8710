package db

import (
	"context"

	"VideoHub.com/cmd/model"
	videodb "VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := conn(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "CreateUser failed,err: %v", err)
	}
	return nil
}

// GetUser returns nil when the user does not exist.
func GetUser(ctx context.Context, userId string) (*model.User, error) {
	return getUserBy(ctx, "id = ?", userId)
}

func GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return getUserBy(ctx, "email = ?", email)
}

func getUserBy(ctx context.Context, query string, arg interface{}) (*model.User, error) {
	var user model.User
	err := conn(ctx).Where(query, arg).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "GetUser failed,err:%v", err)
	}
	return &user, nil
}

// CheckUser 校验邮箱和密码, 禁用账号或没有设置密码的账号都不能登录
func CheckUser(ctx context.Context, email, password string) (*model.User, error) {
	user, err := GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logrus.Infof("login with unknown email %s", email)
		return nil, errno.InvalidCredentialsErr
	}
	if user.Disabled {
		return nil, errno.AccountDisabledErr
	}
	if err, flag := utils.VerifyPassword(password, user.Password); !flag {
		return nil, errors.Wrapf(errno.InvalidCredentialsErr, "Password Wrong,err:%v", err)
	}
	return user, nil
}

func ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var count int64
	if err := conn(ctx).Model(&model.User{}).Where("email = ? OR username = ?", email, username).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "ExistsByEmailOrUsername failed,err:%v", err)
	}
	return count > 0, nil
}

func HasAdmin(ctx context.Context) (bool, error) {
	var count int64
	if err := conn(ctx).Model(&model.User{}).Where("role = ?", constants.RoleAdmin).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "HasAdmin failed,err:%v", err)
	}
	return count > 0, nil
}

// ListUsers returns every user newest first with their video count.
func ListUsers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := conn(ctx).Model(&model.User{}).
		Select("users.*, (SELECT COUNT(*) FROM videos WHERE videos.user_id = users.id) AS videos_count").
		Order("users.created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, errors.Wrapf(err, "ListUsers failed,err:%v", err)
	}
	return users, nil
}

// UpdateUser applies the non-nil fields.
func UpdateUser(ctx context.Context, userId string, disabled *bool, role *string) error {
	updates := map[string]interface{}{}
	if disabled != nil {
		updates["disabled"] = *disabled
	}
	if role != nil {
		updates["role"] = *role
	}
	if len(updates) == 0 {
		return nil
	}
	if err := conn(ctx).Model(&model.User{}).Where("id = ?", userId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "Update user failed,err: %v", err)
	}
	return nil
}

// UpdateUserPassword 专门用于更新用户密码, hashed 必须已经过 bcrypt
func UpdateUserPassword(ctx context.Context, userId, hashed string) error {
	if err := conn(ctx).Model(&model.User{}).Where("id = ?", userId).Update("password", hashed).Error; err != nil {
		return errors.Wrapf(err, "Update password failed, userId: %s", userId)
	}
	return nil
}

// PromoteAdmin makes the user an enabled ADMIN.
func PromoteAdmin(ctx context.Context, userId string) error {
	return UpdateUser(ctx, userId, new(bool), ptr(constants.RoleAdmin))
}

// DeleteUser removes the user with their videos, reactions, comments,
// playlists and subscriptions in one transaction.
func DeleteUser(ctx context.Context, userId string) error {
	err := conn(ctx).Transaction(func(tx *gorm.DB) error {
		var videoIDs []string
		if err := tx.Model(&model.Video{}).Where("user_id = ?", userId).Pluck("id", &videoIDs).Error; err != nil {
			return err
		}
		if err := videodb.DeleteVideosTx(tx, videoIDs); err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userId).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userId).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		var playlistIDs []string
		if err := tx.Model(&model.Playlist{}).Where("user_id = ?", userId).Pluck("id", &playlistIDs).Error; err != nil {
			return err
		}
		if len(playlistIDs) > 0 {
			if err := tx.Where("playlist_id IN ?", playlistIDs).Delete(&model.PlaylistVideo{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", playlistIDs).Delete(&model.Playlist{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("subscriber_id = ? OR channel_id = ?", userId, userId).Delete(&model.Subscription{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", userId).Delete(&model.User{}).Error
	})
	if err != nil {
		return errors.Wrapf(err, "Delete user failed, userId: %s", userId)
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}

package db

import (
	"context"

	"VideoHub.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// IsSubscribed reports whether subscriberId follows channelId.
func IsSubscribed(ctx context.Context, subscriberId, channelId string) (bool, error) {
	var count int64
	if err := conn(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsSubscribed failed,err:%v", err)
	}
	return count > 0, nil
}

// ToggleSubscription 已关注则取消, 否则关注. 返回切换后的状态
func ToggleSubscription(ctx context.Context, subscriberId, channelId string) (subscribed bool, err error) {
	err = conn(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Subscription
		err := tx.Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			subscribed = true
			return tx.Omit("Channel").Create(&model.Subscription{SubscriberID: subscriberId, ChannelID: channelId}).Error
		}
		if err != nil {
			return err
		}
		subscribed = false
		return tx.Delete(&existing).Error
	})
	if err != nil {
		return false, errors.Wrapf(err, "ToggleSubscription failed, subscriber: %s channel: %s", subscriberId, channelId)
	}
	return subscribed, nil
}

func CountSubscribers(ctx context.Context, channelId string) (int64, error) {
	var count int64
	if err := conn(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountSubscribers failed,err:%v", err)
	}
	return count, nil
}

// ListSubscriptions returns the channels subscriberId follows, latest first.
func ListSubscriptions(ctx context.Context, subscriberId string) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	if err := conn(ctx).Preload("Channel").
		Where("subscriber_id = ?", subscriberId).
		Order("created_at DESC").
		Find(&subs).Error; err != nil {
		return nil, errors.Wrapf(err, "ListSubscriptions failed,err:%v", err)
	}
	return subs, nil
}

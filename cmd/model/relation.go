package model

import "VideoHub.com/pkg/constants"

// Subscription 表示 SubscriberID 关注了 ChannelID 这个频道
type Subscription struct {
	Base
	SubscriberID string `gorm:"column:subscriber_id;type:varchar(36);uniqueIndex:idx_subscriptions_pair" json:"subscriberId"`
	ChannelID    string `gorm:"column:channel_id;type:varchar(36);uniqueIndex:idx_subscriptions_pair;index" json:"channelId"`

	Channel    *Author `gorm:"foreignKey:ChannelID;constraint:OnDelete:CASCADE" json:"channel,omitempty"`
	Subscriber *Author `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE" json:"-"`
}

func (s *Subscription) TableName() string {
	return constants.SubscriptionTableName
}

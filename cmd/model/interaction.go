package model

import "VideoHub.com/pkg/constants"

// Like 同一用户对同一视频只有一条记录, Type 在 LIKE 和 DISLIKE 之间切换
type Like struct {
	Base
	Type    string `gorm:"column:type;type:varchar(16)" json:"type"`
	UserID  string `gorm:"column:user_id;type:varchar(36);uniqueIndex:idx_likes_user_video" json:"userId"`
	VideoID string `gorm:"column:video_id;type:varchar(36);uniqueIndex:idx_likes_user_video" json:"videoId"`

	User *Author `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (l *Like) TableName() string {
	return constants.LikeTableName
}

type Comment struct {
	Base
	Content string `gorm:"column:content;type:text" json:"content"`
	UserID  string `gorm:"column:user_id;type:varchar(36);index" json:"userId"`
	VideoID string `gorm:"column:video_id;type:varchar(36);index" json:"videoId"`

	User  Author `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Video *Video `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Comment) TableName() string {
	return constants.CommentTableName
}

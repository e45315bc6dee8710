package model

import (
	"VideoHub.com/pkg/constants"
	"gorm.io/gorm"
)

type Category struct {
	Base
	Name        string `gorm:"column:name;type:varchar(64);uniqueIndex" json:"name"`
	Slug        string `gorm:"column:slug;type:varchar(64);uniqueIndex" json:"slug"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Color       string `gorm:"column:color;type:varchar(16)" json:"color"`
}

func (c *Category) TableName() string {
	return constants.CategoryTableName
}

type Video struct {
	Base
	Title        string  `gorm:"column:title;type:varchar(255)" json:"title"`
	Description  string  `gorm:"column:description;type:text" json:"description"`
	VideoURL     string  `gorm:"column:video_url;type:varchar(512)" json:"videoUrl"`
	ThumbnailURL string  `gorm:"column:thumbnail_url;type:varchar(512)" json:"thumbnailUrl"`
	Duration     int64   `gorm:"column:duration" json:"duration"`
	Views        int64   `gorm:"column:views" json:"views"`
	IsPublished  bool    `gorm:"column:is_published;index" json:"isPublished"`
	UserID       string  `gorm:"column:user_id;type:varchar(36);index" json:"userId"`
	CategoryID   *string `gorm:"column:category_id;type:varchar(36);index" json:"categoryId"`

	User     Author    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	Likes    []Like    `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"likes,omitempty"`

	// 只读的统计列, 由 VideoCardSelect 的子查询填充
	LikesCount    int64      `gorm:"column:likes_count;->;-:migration" json:"-"`
	CommentsCount int64      `gorm:"column:comments_count;->;-:migration" json:"-"`
	Count         VideoCount `gorm:"-" json:"_count"`
}

type VideoCount struct {
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}

func (v *Video) TableName() string {
	return constants.VideoTableName
}

func (v *Video) AfterFind(tx *gorm.DB) error {
	v.Count = VideoCount{Likes: v.LikesCount, Comments: v.CommentsCount}
	return nil
}

// VideoCardSelect selects a video row together with its like and comment counts.
const VideoCardSelect = "videos.*, " +
	"(SELECT COUNT(*) FROM likes WHERE likes.video_id = videos.id) AS likes_count, " +
	"(SELECT COUNT(*) FROM comments WHERE comments.video_id = videos.id) AS comments_count"

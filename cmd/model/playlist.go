package model

import (
	"time"

	"VideoHub.com/pkg/constants"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Playlist struct {
	Base
	Title       string `gorm:"column:title;type:varchar(255)" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`
	IsPublic    bool   `gorm:"column:is_public" json:"isPublic"`
	UserID      string `gorm:"column:user_id;type:varchar(36);index" json:"userId"`

	User           Author          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	PlaylistVideos []PlaylistVideo `gorm:"foreignKey:PlaylistID;constraint:OnDelete:CASCADE" json:"playlistVideos"`
	Count          PlaylistCount   `gorm:"-" json:"_count"`
}

type PlaylistCount struct {
	PlaylistVideos int64 `json:"playlistVideos"`
}

func (p *Playlist) TableName() string {
	return constants.PlaylistTableName
}

// AfterFind runs after preloads, so the entries are already attached.
func (p *Playlist) AfterFind(tx *gorm.DB) error {
	p.Count = PlaylistCount{PlaylistVideos: int64(len(p.PlaylistVideos))}
	return nil
}

type PlaylistVideo struct {
	ID         string    `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	PlaylistID string    `gorm:"column:playlist_id;type:varchar(36);uniqueIndex:idx_playlist_videos_pair" json:"playlistId"`
	VideoID    string    `gorm:"column:video_id;type:varchar(36);uniqueIndex:idx_playlist_videos_pair" json:"videoId"`
	Order      int       `gorm:"column:position" json:"order"`
	AddedAt    time.Time `gorm:"column:added_at;autoCreateTime" json:"addedAt"`

	Video *Video `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"video,omitempty"`
}

func (pv *PlaylistVideo) TableName() string {
	return constants.PlaylistVideoTableName
}

func (pv *PlaylistVideo) BeforeCreate(tx *gorm.DB) error {
	if pv.ID == "" {
		pv.ID = uuid.NewString()
	}
	return nil
}

package db

import (
	"context"
	"time"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// withEntries preloads the owner and the entries in playlist order, each
// entry carrying its video card.
func withEntries(q *gorm.DB) *gorm.DB {
	return q.Preload("User").
		Preload("PlaylistVideos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("PlaylistVideos.Video", func(db *gorm.DB) *gorm.DB {
			return db.Select(model.VideoCardSelect)
		}).
		Preload("PlaylistVideos.Video.User")
}

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := conn(ctx).Omit(clause.Associations).Create(playlist).Error; err != nil {
		return errors.Wrapf(err, "CreatePlaylist failed,err:%v", err)
	}
	return nil
}

// GetPlaylist returns nil when missing.
func GetPlaylist(ctx context.Context, playlistId string) (*model.Playlist, error) {
	var playlist model.Playlist
	err := withEntries(conn(ctx)).Where("id = ?", playlistId).First(&playlist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "GetPlaylist failed,err:%v", err)
	}
	return &playlist, nil
}

// ListPlaylists returns userId's playlists, most recently updated first.
func ListPlaylists(ctx context.Context, userId string, publicOnly bool) ([]*model.Playlist, error) {
	q := withEntries(conn(ctx)).Where("user_id = ?", userId)
	if publicOnly {
		q = q.Where("is_public = ?", true)
	}
	playlists := make([]*model.Playlist, 0)
	if err := q.Order("updated_at DESC").Find(&playlists).Error; err != nil {
		return nil, errors.Wrapf(err, "ListPlaylists failed,err:%v", err)
	}
	return playlists, nil
}

func UpdatePlaylist(ctx context.Context, playlistId, title, description string, isPublic bool) error {
	err := conn(ctx).Model(&model.Playlist{}).Where("id = ?", playlistId).Updates(map[string]interface{}{
		"title":       title,
		"description": description,
		"is_public":   isPublic,
	}).Error
	if err != nil {
		return errors.Wrapf(err, "UpdatePlaylist failed,err:%v", err)
	}
	return nil
}

// DeletePlaylist removes the playlist and its entries.
func DeletePlaylist(ctx context.Context, playlistId string) error {
	err := conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", playlistId).Delete(&model.Playlist{}).Error
	})
	if err != nil {
		return errors.Wrapf(err, "DeletePlaylist failed, id: %s", playlistId)
	}
	return nil
}

// AddPlaylistVideo appends videoId after the current last entry. It returns
// PlaylistVideoExistErr when the video is already in the playlist.
func AddPlaylistVideo(ctx context.Context, playlistId, videoId string) (*model.PlaylistVideo, error) {
	entry := &model.PlaylistVideo{PlaylistID: playlistId, VideoID: videoId}
	err := conn(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errno.PlaylistVideoExistErr
		}
		var last int
		if err := tx.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ?", playlistId).
			Select("COALESCE(MAX(position), 0)").
			Scan(&last).Error; err != nil {
			return err
		}
		entry.Order = last + 1
		if err := tx.Omit("Video").Create(entry).Error; err != nil {
			return err
		}
		// 新增视频时刷新歌单的更新时间
		return tx.Model(&model.Playlist{}).Where("id = ?", playlistId).Update("updated_at", time.Now()).Error
	})
	if err != nil {
		return nil, errors.Wrapf(err, "AddPlaylistVideo failed, playlist: %s video: %s", playlistId, videoId)
	}
	return entry, nil
}

// RemovePlaylistVideo reports false when the entry did not exist.
func RemovePlaylistVideo(ctx context.Context, playlistId, videoId string) (bool, error) {
	res := conn(ctx).Where("playlist_id = ? AND video_id = ?", playlistId, videoId).Delete(&model.PlaylistVideo{})
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "RemovePlaylistVideo failed,err:%v", res.Error)
	}
	return res.RowsAffected > 0, nil
}

package db

import (
	"context"
	"strings"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VideoFilter narrows listing queries. Zero value lists every video.
type VideoFilter struct {
	PublishedOnly bool
	CategorySlug  string
	UserID        string
	// Title 为小写的子串, 匹配时忽略大小写
	Title string
	// IDs restricts the listing to these videos when non-nil.
	IDs []string
}

func filtered(ctx context.Context, f VideoFilter) *gorm.DB {
	q := conn(ctx).Model(&model.Video{})
	if f.PublishedOnly {
		q = q.Where("videos.is_published = ?", true)
	}
	if f.CategorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = videos.category_id").
			Where("categories.slug = ?", f.CategorySlug)
	}
	if f.UserID != "" {
		q = q.Where("videos.user_id = ?", f.UserID)
	}
	if f.Title != "" {
		q = q.Where("LOWER(videos.title) LIKE ? ESCAPE '!'", "%"+EscapeLike(strings.ToLower(f.Title))+"%")
	}
	if f.IDs != nil {
		if len(f.IDs) == 0 {
			return q.Where("1 = 0")
		}
		q = q.Where("videos.id IN ?", f.IDs)
	}
	return q
}

// cards selects the listing shape: counts, uploader and category.
func cards(q *gorm.DB) *gorm.DB {
	return q.Select(model.VideoCardSelect).Preload("User").Preload("Category")
}

// EscapeLike escapes LIKE wildcards using '!' as the escape character.
func EscapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}

func CreateVideo(ctx context.Context, video *model.Video) error {
	if err := conn(ctx).Omit(clause.Associations).Create(video).Error; err != nil {
		return errors.Wrapf(err, "CreateVideo failed,err:%v", err)
	}
	return nil
}

// GetVideo loads the bare row, nil when missing.
func GetVideo(ctx context.Context, id string) (*model.Video, error) {
	var video model.Video
	err := conn(ctx).Where("id = ?", id).First(&video).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "GetVideo failed, id: %s", id)
	}
	return &video, nil
}

// GetVideoCard loads a published video with counts, uploader and category.
// withLikes additionally attaches every like record.
func GetVideoCard(ctx context.Context, id string, withLikes bool) (*model.Video, error) {
	var video model.Video
	q := cards(filtered(ctx, VideoFilter{PublishedOnly: true})).Where("videos.id = ?", id)
	if withLikes {
		q = q.Preload("Likes")
	}
	err := q.First(&video).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "GetVideoCard failed, id: %s", id)
	}
	return &video, nil
}

// ListVideos returns newest first.
func ListVideos(ctx context.Context, f VideoFilter, offset, limit int) ([]*model.Video, int64, error) {
	var total int64
	if err := filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListVideos count failed,err:%v", err)
	}
	var videos []*model.Video
	if err := cards(filtered(ctx, f)).Order("videos.created_at DESC").
		Offset(offset).Limit(limit).Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "ListVideos failed,err:%v", err)
	}
	return videos, total, nil
}

// SearchVideos orders by views then recency.
func SearchVideos(ctx context.Context, f VideoFilter, offset, limit int) ([]*model.Video, int64, error) {
	var total int64
	if err := filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "SearchVideos count failed,err:%v", err)
	}
	var videos []*model.Video
	if err := cards(filtered(ctx, f)).Order("videos.views DESC").Order("videos.created_at DESC").
		Offset(offset).Limit(limit).Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "SearchVideos failed,err:%v", err)
	}
	return videos, total, nil
}

func PopularVideos(ctx context.Context, limit int) ([]*model.Video, error) {
	var videos []*model.Video
	if err := cards(filtered(ctx, VideoFilter{PublishedOnly: true})).
		Order("videos.views DESC").Order("videos.created_at DESC").
		Limit(limit).Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "PopularVideos failed,err:%v", err)
	}
	return videos, nil
}

// GetVideoCardsByIDs keeps the order of ids and skips unpublished or missing videos.
func GetVideoCardsByIDs(ctx context.Context, ids []string) ([]*model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []*model.Video
	if err := cards(filtered(ctx, VideoFilter{PublishedOnly: true})).
		Where("videos.id IN ?", ids).Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideoCardsByIDs failed,err:%v", err)
	}
	byID := make(map[string]*model.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}
	ordered := make([]*model.Video, 0, len(videos))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered, nil
}

// RelatedVideos shares the category or the uploader of video.
func RelatedVideos(ctx context.Context, video *model.Video, limit int) ([]*model.Video, error) {
	q := cards(filtered(ctx, VideoFilter{PublishedOnly: true})).Where("videos.id <> ?", video.ID)
	if video.CategoryID != nil {
		q = q.Where("(videos.category_id = ? OR videos.user_id = ?)", *video.CategoryID, video.UserID)
	} else {
		q = q.Where("videos.user_id = ?", video.UserID)
	}
	var videos []*model.Video
	if err := q.Order("videos.created_at DESC").Limit(limit).Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "RelatedVideos failed,err:%v", err)
	}
	return videos, nil
}

// LikedVideos lists published videos userID liked, most recent like first.
func LikedVideos(ctx context.Context, userID string, offset, limit int) ([]*model.Video, int64, error) {
	liked := func() *gorm.DB {
		return filtered(ctx, VideoFilter{PublishedOnly: true}).
			Joins("JOIN likes ON likes.video_id = videos.id").
			Where("likes.user_id = ? AND likes.type = ?", userID, constants.LikeTypeLike)
	}
	var total int64
	if err := liked().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "LikedVideos count failed,err:%v", err)
	}
	var videos []*model.Video
	if err := cards(liked()).Order("likes.created_at DESC").
		Offset(offset).Limit(limit).Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "LikedVideos failed,err:%v", err)
	}
	return videos, total, nil
}

// IncrementViews bumps a published video and returns the new count.
// found is false when no published video has that id.
func IncrementViews(ctx context.Context, id string) (views int64, found bool, err error) {
	res := conn(ctx).Model(&model.Video{}).
		Where("id = ? AND is_published = ?", id, true).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return 0, false, errors.Wrapf(res.Error, "IncrementViews failed, id: %s", id)
	}
	if res.RowsAffected == 0 {
		return 0, false, nil
	}
	if err = conn(ctx).Model(&model.Video{}).Where("id = ?", id).Pluck("views", &views).Error; err != nil {
		return 0, true, errors.Wrapf(err, "read views failed, id: %s", id)
	}
	return views, true, nil
}

// UpdateVideoMedia writes the fields the media processor fills in.
func UpdateVideoMedia(ctx context.Context, id string, duration int64, thumbnailURL string) error {
	updates := map[string]interface{}{"duration": duration}
	if thumbnailURL != "" {
		updates["thumbnail_url"] = thumbnailURL
	}
	if err := conn(ctx).Model(&model.Video{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideoMedia failed, id: %s", id)
	}
	return nil
}

func CountVideosByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := conn(ctx).Model(&model.Video{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountVideosByUser failed, userId: %s", userID)
	}
	return count, nil
}

// DeleteVideo removes the video and every row hanging off it.
func DeleteVideo(ctx context.Context, id string) error {
	err := conn(ctx).Transaction(func(tx *gorm.DB) error {
		return DeleteVideosTx(tx, []string{id})
	})
	if err != nil {
		return errors.Wrapf(err, "DeleteVideo failed, id: %s", id)
	}
	return nil
}

// DeleteVideosTx deletes the videos with the given ids together with their
// likes, comments and playlist entries.
func DeleteVideosTx(tx *gorm.DB, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("video_id IN ?", ids).Delete(&model.Like{}).Error; err != nil {
		return err
	}
	if err := tx.Where("video_id IN ?", ids).Delete(&model.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("video_id IN ?", ids).Delete(&model.PlaylistVideo{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&model.Video{}).Error
}

// ListVideosByUser returns the bare rows uploaded by userID.
func ListVideosByUser(ctx context.Context, userID string) ([]*model.Video, error) {
	var videos []*model.Video
	if err := conn(ctx).Where("user_id = ?", userID).Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "ListVideosByUser failed, userId: %s", userID)
	}
	return videos, nil
}

// VideoViews is the id and stored view count of a video.
type VideoViews struct {
	ID    string
	Views int64
}

// ScanVideoViews walks every video in batches of size.
func ScanVideoViews(ctx context.Context, size int, fn func([]VideoViews) error) error {
	var rows []*model.Video
	res := conn(ctx).Select("id", "views").
		FindInBatches(&rows, size, func(tx *gorm.DB, _ int) error {
			batch := make([]VideoViews, 0, len(rows))
			for _, v := range rows {
				batch = append(batch, VideoViews{ID: v.ID, Views: v.Views})
			}
			return fn(batch)
		})
	if res.Error != nil {
		return errors.Wrapf(res.Error, "ScanVideoViews failed,err:%v", res.Error)
	}
	return nil
}

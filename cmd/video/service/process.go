package service

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/cmd/video/infras/redis"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/mq"
	"VideoHub.com/pkg/oss"
	"VideoHub.com/pkg/search"
	"VideoHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// VideoProcessor completes uploaded videos and cleans up deleted ones. It is
// run by the worker, or inline by the api server when no broker is set up.
type VideoProcessor struct{}

func NewVideoProcessor() *VideoProcessor {
	return &VideoProcessor{}
}

func (p *VideoProcessor) HandleVideoEvent(ctx context.Context, event *mq.VideoEvent) error {
	switch event.Type {
	case mq.VideoUploaded:
		return p.processUpload(ctx, event)
	case mq.VideoDeleted:
		return p.cleanup(ctx, event)
	default:
		hlog.CtxWarnf(ctx, "unknown video event type %q", event.Type)
		return nil
	}
}

func (p *VideoProcessor) processUpload(ctx context.Context, event *mq.VideoEvent) error {
	unlock, err := redis.LockVideo(ctx, event.VideoID)
	if err != nil {
		return err
	}
	defer unlock()

	video, err := db.GetVideo(ctx, event.VideoID)
	if err != nil {
		return errors.WithMessage(err, "dao.GetVideo failed")
	}
	if video == nil {
		// 处理前视频已被删除
		hlog.CtxInfof(ctx, "video %s gone before processing", event.VideoID)
		return nil
	}
	// 上传时已建索引, 这里重建一次以防当时 elastic 不可用
	if err = IndexVideo(ctx, video); err != nil {
		hlog.CtxWarnf(ctx, "index video %s failed: %v", video.ID, err)
	}

	storage := oss.Default()
	objectName, ok := storage.ObjectName(video.VideoURL)
	if !ok {
		return errors.Errorf("video %s has foreign url %s", video.ID, video.VideoURL)
	}
	workDir, err := os.MkdirTemp("", "videohub-*")
	if err != nil {
		return errors.Wrap(err, "create work dir")
	}
	defer os.RemoveAll(workDir)

	local := filepath.Join(workDir, path.Base(objectName))
	if err = storage.Fetch(ctx, objectName, local); err != nil {
		return errors.WithMessage(err, "storage.Fetch failed")
	}

	duration, err := utils.ProbeDuration(local)
	if err != nil {
		hlog.CtxWarnf(ctx, "probe duration of video %s failed: %v", video.ID, err)
	}
	var thumbnailURL string
	if video.ThumbnailURL == "" {
		if thumbnailURL, err = p.extractThumbnail(ctx, storage, local, workDir); err != nil {
			hlog.CtxWarnf(ctx, "thumbnail of video %s failed: %v", video.ID, err)
		}
	}
	if err = db.UpdateVideoMedia(ctx, video.ID, duration, thumbnailURL); err != nil {
		return errors.WithMessage(err, "dao.UpdateVideoMedia failed")
	}
	if err = redis.PutVideoVisit(ctx, video.ID, video.Views); err != nil {
		hlog.CtxWarnf(ctx, "seed visit ranking failed: %v", err)
	}
	hlog.CtxInfof(ctx, "video %s processed, duration %ds", video.ID, duration)
	return nil
}

func (p *VideoProcessor) extractThumbnail(ctx context.Context, storage oss.Storage, videoPath, workDir string) (string, error) {
	thumbPath, err := utils.GetVideoThumbnail(videoPath, filepath.Join(workDir, "thumb"))
	if err != nil {
		return "", err
	}
	f, err := os.Open(thumbPath)
	if err != nil {
		return "", errors.Wrap(err, "open thumbnail")
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return "", errors.Wrap(err, "stat thumbnail")
	}
	objectName := path.Join(constants.ThumbnailObjectDir, utils.UniqueFileName("thumbnail.jpg"))
	return storage.Put(ctx, objectName, f, info.Size(), "image/jpeg")
}

// cleanup removes stored media and derived entries of a deleted video.
func (p *VideoProcessor) cleanup(ctx context.Context, event *mq.VideoEvent) error {
	storage := oss.Default()
	var lastErr error
	for _, url := range []string{event.VideoURL, event.ThumbnailURL} {
		if url == "" {
			continue
		}
		name, ok := storage.ObjectName(url)
		if !ok {
			continue
		}
		if err := storage.Remove(ctx, name); err != nil {
			hlog.CtxWarnf(ctx, "remove object %s failed: %v", name, err)
			lastErr = err
		}
	}
	if engine := search.Default(); engine != nil {
		if err := engine.Delete(ctx, event.VideoID); err != nil {
			hlog.CtxWarnf(ctx, "delete index of video %s failed: %v", event.VideoID, err)
			lastErr = err
		}
	}
	if err := redis.DeleteVideoVisit(ctx, event.VideoID); err != nil {
		hlog.CtxWarnf(ctx, "remove visit ranking failed: %v", err)
		lastErr = err
	}
	return lastErr
}

package service

import (
	"context"
	"mime/multipart"
	"path"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/mq"
	"VideoHub.com/pkg/oss"
	"VideoHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type UploadVideoService struct {
	ctx context.Context
}

func NewUploadVideoService(ctx context.Context) *UploadVideoService {
	return &UploadVideoService{ctx: ctx}
}

// UploadVideo stores the files, inserts the row and hands the video to the
// media processor. Duration and a missing thumbnail are filled in later.
func (s *UploadVideoService) UploadVideo(actor *model.User, req *UploadVideoRequest) (*model.Video, error) {
	if req.Video == nil {
		return nil, errno.VideoFileErr
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, newFormError(verrs)
		}
		return nil, errors.WithMessage(err, "validate upload failed")
	}
	if req.UserID != actor.ID {
		return nil, errno.PermissionDeniedErr.WithMessage("Forbidden")
	}
	category, err := db.GetCategory(s.ctx, req.CategoryID)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetCategory failed")
	}
	if category == nil {
		return nil, errno.CategoryNotFoundErr
	}

	storage := oss.Default()
	videoURL, err := s.store(storage, constants.VideoObjectDir, req.Video)
	if err != nil {
		return nil, err
	}
	stored := []string{videoURL}
	var thumbnailURL string
	if req.Thumbnail != nil {
		if thumbnailURL, err = s.store(storage, constants.ThumbnailObjectDir, req.Thumbnail); err != nil {
			s.cleanup(storage, stored)
			return nil, err
		}
		stored = append(stored, thumbnailURL)
	}

	video := &model.Video{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		IsPublished:  req.IsPublished,
		UserID:       actor.ID,
		CategoryID:   &category.ID,
	}
	if err = db.CreateVideo(s.ctx, video); err != nil {
		s.cleanup(storage, stored)
		return nil, errors.WithMessage(err, "dao.CreateVideo failed")
	}
	video.User = model.Author{ID: actor.ID, Username: actor.Username, Name: actor.Name, Avatar: actor.Avatar}
	video.Category = category
	if err = IndexVideo(s.ctx, video); err != nil {
		hlog.CtxWarnf(s.ctx, "index video %s failed: %v", video.ID, err)
	}

	mq.PublishVideoEvent(s.ctx, &mq.VideoEvent{
		Type:         mq.VideoUploaded,
		VideoID:      video.ID,
		UserID:       video.UserID,
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
	})
	return video, nil
}

func (s *UploadVideoService) store(storage oss.Storage, dir string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", errors.Wrapf(err, "open upload %s", fh.Filename)
	}
	defer f.Close()
	objectName := path.Join(dir, utils.UniqueFileName(fh.Filename))
	url, err := storage.Put(s.ctx, objectName, f, fh.Size, fh.Header.Get("Content-Type"))
	if err != nil {
		return "", errors.WithMessage(err, "storage.Put failed")
	}
	return url, nil
}

// cleanup 入库失败时删除已经写入的文件
func (s *UploadVideoService) cleanup(storage oss.Storage, urls []string) {
	for _, url := range urls {
		name, ok := storage.ObjectName(url)
		if !ok {
			continue
		}
		if err := storage.Remove(s.ctx, name); err != nil {
			hlog.CtxWarnf(s.ctx, "remove orphan object %s failed: %v", name, err)
		}
	}
}

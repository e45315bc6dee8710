package handlers

import (
	"context"
	"net/http"

	"VideoHub.com/cmd/api/handlers/common"
	"VideoHub.com/cmd/video/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/pkg/errors"
)

func UploadVideo(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	req := &service.UploadVideoRequest{
		Title:       string(c.FormValue("title")),
		Description: string(c.FormValue("description")),
		CategoryID:  string(c.FormValue("categoryId")),
		UserID:      string(c.FormValue("userId")),
		IsPublished: string(c.FormValue("isPublished")) == "true",
	}
	// 缺少文件时 FormFile 返回错误, 交给 service 报 400
	req.Video, _ = c.FormFile("video")
	req.Thumbnail, _ = c.FormFile("thumbnail")

	video, err := service.NewUploadVideoService(ctx).UploadVideo(user, req)
	if err != nil {
		var formErr *service.FormError
		if errors.As(err, &formErr) {
			c.JSON(http.StatusBadRequest, utils.H{"error": formErr.Error(), "details": formErr.Details})
			return
		}
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{
		"success": true,
		"message": "Video uploaded successfully",
		"id":      video.ID,
		"video":   video,
	})
}

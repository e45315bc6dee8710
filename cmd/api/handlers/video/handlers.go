package handlers

import (
	"context"

	"VideoHub.com/cmd/api/handlers/common"
	"VideoHub.com/cmd/video/service"
	"VideoHub.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

func ListCategories(ctx context.Context, c *app.RequestContext) {
	categories, err := service.NewCategoryService(ctx).ListCategories()
	common.SendResponse(c, err, categories)
}

// ListVideos is the home feed: published videos, newest first.
func ListVideos(ctx context.Context, c *app.RequestContext) {
	videos, pagination, err := service.NewVideoListService(ctx).ListVideos(
		c.Query("category"),
		common.QueryInt(c, "page", 1),
		common.QueryInt(c, "limit", constants.HomePageSize),
	)
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"videos": videos, "pagination": pagination})
}

func PopularVideos(ctx context.Context, c *app.RequestContext) {
	videos, err := service.NewVideoListService(ctx).PopularVideos(common.QueryInt(c, "limit", constants.PopularDefaultSize))
	common.SendResponse(c, err, videos)
}

func VideoInfo(ctx context.Context, c *app.RequestContext) {
	video, err := service.NewVideoInfoService(ctx).VideoInfo(c.Param("id"))
	common.SendResponse(c, err, video)
}

func RelatedVideos(ctx context.Context, c *app.RequestContext) {
	videos, err := service.NewVideoInfoService(ctx).RelatedVideos(c.Param("id"))
	common.SendResponse(c, err, videos)
}

func AddView(ctx context.Context, c *app.RequestContext) {
	views, err := service.NewVideoInfoService(ctx).AddView(c.Param("id"))
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"success": true, "views": views})
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	if err := service.NewDeleteVideoService(ctx).DeleteVideo(user, c.Param("id")); err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"success": true})
}

// Library lists the videos the caller liked.
func Library(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	videos, pagination, err := service.NewVideoListService(ctx).LikedVideos(user.ID, common.QueryInt(c, "page", 1))
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"videos": videos, "pagination": pagination})
}

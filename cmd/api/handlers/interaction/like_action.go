package handlers

import (
	"context"

	"VideoHub.com/cmd/api/handlers/common"
	"VideoHub.com/cmd/interaction/service"
	"VideoHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// LikeAction toggles the caller's reaction on a video.
func LikeAction(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	var param LikeParam
	if err := c.Bind(&param); err != nil {
		hlog.CtxInfof(ctx, "bind like failed: %v", err)
		common.SendError(c, errno.InvalidLikeTypeErr)
		return
	}
	action, current, err := service.NewLikeService(ctx).ToggleLike(user.ID, c.Param("id"), param.Type)
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"success": true, "action": action, "type": current})
}

func LikeStatus(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	current, err := service.NewLikeService(ctx).LikeStatus(user.ID, c.Param("id"))
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"type": current})
}

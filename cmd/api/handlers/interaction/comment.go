package handlers

import (
	"context"
	"net/http"

	"VideoHub.com/cmd/api/handlers/common"
	"VideoHub.com/cmd/interaction/service"
	"VideoHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

func ListComment(ctx context.Context, c *app.RequestContext) {
	comments, err := service.NewCommentService(ctx).ListComments(c.Param("id"), c.Query("sort"))
	common.SendResponse(c, err, comments)
}

func CreateComment(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	var param CommentParam
	if err := c.Bind(&param); err != nil {
		hlog.CtxInfof(ctx, "bind comment failed: %v", err)
		common.SendError(c, errno.CommentContentErr)
		return
	}
	comment, err := service.NewCommentService(ctx).CreateComment(user, c.Param("id"), param.Content)
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponseWithStatus(c, http.StatusCreated, utils.H{"comment": comment})
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	if err := service.NewCommentService(ctx).DeleteComment(user, c.Param("id"), c.Param("commentId")); err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"success": true})
}

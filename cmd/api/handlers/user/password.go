package handlers

import (
	"context"

	"VideoHub.com/cmd/api/handlers/common"
	"VideoHub.com/cmd/user/service"
	"VideoHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// ChangePassword 修改当前登录用户的密码
func ChangePassword(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	var req service.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		common.SendError(c, errno.ParamErr)
		return
	}
	if err := service.NewChangePasswordService(ctx).ChangePassword(user, &req); err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"success": true})
}

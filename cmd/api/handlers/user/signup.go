package handlers

import (
	"context"

	"VideoHub.com/cmd/api/handlers/common"
	"VideoHub.com/cmd/user/service"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// Signup 管理员创建普通用户
func Signup(ctx context.Context, c *app.RequestContext) {
	var req service.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		hlog.CtxInfof(ctx, "bind signup failed: %v", err)
		common.SendError(c, errno.SignupFieldsErr)
		return
	}
	user, err := service.NewCreateUserService(ctx).CreateUser(&req)
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{
		"message": "User created successfully",
		"user":    jwt.SessionUser(user),
	})
}

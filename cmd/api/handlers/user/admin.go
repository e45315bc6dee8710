package handlers

import (
	"context"
	"fmt"

	"VideoHub.com/cmd/api/handlers/common"
	"VideoHub.com/cmd/user/service"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// SetupAdmin runs behind OptionalAuth: the first call needs no session.
func SetupAdmin(ctx context.Context, c *app.RequestContext) {
	actor, _ := jwt.CurrentUser(c)
	admin, err := service.NewSetupAdminService(ctx).SetupAdmin(actor)
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{
		"message": "Admin user setup completed successfully",
		"user":    admin.Summary(),
	})
}

func ResetPassword(ctx context.Context, c *app.RequestContext) {
	var req service.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		hlog.CtxInfof(ctx, "bind reset password failed: %v", err)
		common.SendError(c, errno.ResetFieldsErr)
		return
	}
	user, err := service.NewChangePasswordService(ctx).ResetPassword(&req)
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{
		"message": fmt.Sprintf("Password reset successfully for user %s", user.Username),
		"user":    jwt.SessionUser(user),
	})
}

func ListUsers(ctx context.Context, c *app.RequestContext) {
	users, err := service.NewGetUserInfoService(ctx).ListUsers()
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"users": users})
}

func UpdateUser(ctx context.Context, c *app.RequestContext) {
	actor, ok := common.RequireUser(c)
	if !ok {
		return
	}
	var req service.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		hlog.CtxInfof(ctx, "bind update user failed: %v", err)
		common.SendError(c, errno.ParamErr)
		return
	}
	user, message, err := service.NewUpdateUserService(ctx).UpdateUser(actor, c.Param("id"), &req)
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"message": message, "user": user.Summary()})
}

func DeleteUser(ctx context.Context, c *app.RequestContext) {
	actor, ok := common.RequireUser(c)
	if !ok {
		return
	}
	if err := service.NewUpdateUserService(ctx).DeleteUser(actor, c.Param("id")); err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"message": "User deleted successfully"})
}

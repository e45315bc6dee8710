package handlers

import (
	"context"

	"VideoHub.com/cmd/api/handlers/common"
	"VideoHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

func Session(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	common.SendResponse(c, nil, utils.H{"user": jwt.SessionUser(user)})
}

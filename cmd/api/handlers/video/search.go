package handlers

import (
	"context"

	"VideoHub.com/cmd/api/handlers/common"
	"VideoHub.com/cmd/video/service"
	"github.com/cloudwego/hertz/pkg/app"
)

func Search(ctx context.Context, c *app.RequestContext) {
	req, err := service.ParseSearchRequest(c.Query("q"), c.Query("category"), c.Query("page"), c.Query("limit"))
	if err != nil {
		common.SendError(c, err)
		return
	}
	result, err := service.NewSearchService(ctx).Search(req)
	common.SendResponse(c, err, result)
}

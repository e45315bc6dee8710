package handlers

import (
	"context"

	"VideoHub.com/cmd/api/handlers/common"
	"VideoHub.com/cmd/relation/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

// Subscribe toggles the caller's subscription to the channel :id.
func Subscribe(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	subscribed, err := service.NewRelationService(ctx).Subscribe(user.ID, c.Param("id"))
	if err != nil {
		common.SendError(c, err)
		return
	}
	action := "unsubscribed"
	if subscribed {
		action = "subscribed"
	}
	common.SendResponse(c, nil, utils.H{"success": true, "action": action, "subscribed": subscribed})
}

func SubscriptionStatus(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	subscribed, err := service.NewRelationService(ctx).IsSubscribed(user.ID, c.Param("id"))
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"subscribed": subscribed})
}

func Subscriptions(ctx context.Context, c *app.RequestContext) {
	channels, err := service.NewRelationService(ctx).Subscriptions(c.Param("id"))
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"channels": channels})
}

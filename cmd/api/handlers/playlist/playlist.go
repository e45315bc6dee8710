package handlers

import (
	"context"
	"net/http"

	"VideoHub.com/cmd/api/handlers/common"
	"VideoHub.com/cmd/playlist/service"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

func ListPlaylists(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	playlists, err := service.NewPlaylistService(ctx).ListPlaylists(user, c.Query("userId"))
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"playlists": playlists})
}

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	var req service.PlaylistRequest
	if err := c.Bind(&req); err != nil {
		hlog.CtxInfof(ctx, "bind playlist failed: %v", err)
		common.SendError(c, errno.PlaylistTitleErr)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(user, &req)
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponseWithStatus(c, http.StatusCreated, utils.H{"playlist": playlist})
}

// GetPlaylist runs behind OptionalAuth: private playlists need their owner's session.
func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	viewer, _ := jwt.CurrentUser(c)
	playlist, err := service.NewPlaylistService(ctx).GetPlaylist(viewer, c.Param("id"))
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"playlist": playlist})
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	var req service.PlaylistRequest
	if err := c.Bind(&req); err != nil {
		hlog.CtxInfof(ctx, "bind playlist failed: %v", err)
		common.SendError(c, errno.PlaylistTitleErr)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(user, c.Param("id"), &req)
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"playlist": playlist})
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	if err := service.NewPlaylistService(ctx).DeletePlaylist(user, c.Param("id")); err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"success": true})
}

func AddVideo(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	var req service.PlaylistVideoRequest
	if err := c.Bind(&req); err != nil {
		common.SendError(c, errno.PlaylistVideoIDErr)
		return
	}
	entry, err := service.NewPlaylistService(ctx).AddVideo(user, c.Param("id"), req.VideoId)
	if err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponseWithStatus(c, http.StatusCreated, utils.H{"playlistVideo": entry})
}

func RemoveVideo(ctx context.Context, c *app.RequestContext) {
	user, ok := common.RequireUser(c)
	if !ok {
		return
	}
	var req service.PlaylistVideoRequest
	if err := c.Bind(&req); err != nil {
		common.SendError(c, errno.PlaylistVideoIDErr)
		return
	}
	if err := service.NewPlaylistService(ctx).RemoveVideo(user, c.Param("id"), req.VideoId); err != nil {
		common.SendError(c, err)
		return
	}
	common.SendResponse(c, nil, utils.H{"success": true})
}

package handlers

import (
	"context"
	"net/http"

	"VideoHub.com/cmd/api/handlers/common"
	interaction "VideoHub.com/cmd/interaction/service"
	"VideoHub.com/cmd/model"
	playlist "VideoHub.com/cmd/playlist/service"
	relation "VideoHub.com/cmd/relation/service"
	user "VideoHub.com/cmd/user/service"
	video "VideoHub.com/cmd/video/service"
	"VideoHub.com/config"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

func Home(ctx context.Context, c *app.RequestContext) {
	categories, err := video.NewCategoryService(ctx).ListCategories()
	if err != nil {
		renderError(c, err)
		return
	}
	category := c.Query("category")
	videos, _, err := video.NewVideoListService(ctx).ListVideos(category, 1, constants.HomePageSize)
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "home.html", utils.H{
		"Title":      "Home",
		"Categories": categories,
		"Category":   category,
		"Videos":     videos,
	})
}

// Video renders the watch page. Every render counts as a view.
func Video(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	info := video.NewVideoInfoService(ctx)
	v, err := info.VideoInfo(id)
	if err != nil {
		renderError(c, err)
		return
	}
	if views, err := info.AddView(id); err != nil {
		hlog.CtxWarnf(ctx, "count view of %s failed: %v", id, err)
	} else {
		v.Views = views
	}
	related, err := info.RelatedVideos(id)
	if err != nil {
		renderError(c, err)
		return
	}
	comments, err := interaction.NewCommentService(ctx).ListComments(id, c.Query("sort"))
	if err != nil {
		renderError(c, err)
		return
	}
	likes := interaction.NewLikeService(ctx)
	likeCount, dislikeCount, err := likes.LikeCounts(id)
	if err != nil {
		renderError(c, err)
		return
	}
	data := utils.H{
		"Title":      v.Title,
		"Video":      v,
		"Related":    related,
		"Comments":   comments,
		"Likes":      likeCount,
		"Dislikes":   dislikeCount,
		"MyLike":     "",
		"Subscribed": false,
		"Playlists":  []*model.Playlist{},
	}
	if viewer, ok := jwt.CurrentUser(c); ok {
		if current, err := likes.LikeStatus(viewer.ID, id); err == nil && current != nil {
			data["MyLike"] = *current
		}
		if subscribed, err := relation.NewRelationService(ctx).IsSubscribed(viewer.ID, v.UserID); err == nil {
			data["Subscribed"] = subscribed
		}
		if playlists, err := playlist.NewPlaylistService(ctx).ListPlaylists(viewer, ""); err == nil {
			data["Playlists"] = playlists
		} else {
			hlog.CtxWarnf(ctx, "list playlists of %s failed: %v", viewer.ID, err)
		}
	}
	render(c, http.StatusOK, "video.html", data)
}

// Search shows an empty form until a query is given.
func Search(ctx context.Context, c *app.RequestContext) {
	data := utils.H{"Title": "Search", "Query": c.Query("q"), "Category": c.Query("category")}
	if c.Query("q") == "" {
		render(c, http.StatusOK, "search.html", data)
		return
	}
	req, err := video.ParseSearchRequest(c.Query("q"), c.Query("category"), c.Query("page"), "")
	if err != nil {
		data["Error"] = errno.ConvertErr(err).ErrMsg
		render(c, http.StatusBadRequest, "search.html", data)
		return
	}
	result, err := video.NewSearchService(ctx).Search(req)
	if err != nil {
		renderError(c, err)
		return
	}
	data["Result"] = result
	render(c, http.StatusOK, "search.html", data)
}

func Library(ctx context.Context, c *app.RequestContext) {
	viewer, ok := sessionUser(c)
	if !ok {
		return
	}
	videos, pagination, err := video.NewVideoListService(ctx).LikedVideos(viewer.ID, common.QueryInt(c, "page", 1))
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "library.html", utils.H{"Title": "Library", "Videos": videos, "Pagination": pagination})
}

func Playlist(ctx context.Context, c *app.RequestContext) {
	viewer, _ := jwt.CurrentUser(c)
	p, err := playlist.NewPlaylistService(ctx).GetPlaylist(viewer, c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "playlist.html", utils.H{"Title": p.Title, "Playlist": p})
}

func Upload(ctx context.Context, c *app.RequestContext) {
	if _, ok := sessionUser(c); !ok {
		return
	}
	categories, err := video.NewCategoryService(ctx).ListCategories()
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "upload.html", utils.H{"Title": "Upload", "Categories": categories})
}

func SignIn(ctx context.Context, c *app.RequestContext) {
	render(c, http.StatusOK, "signin.html", utils.H{"Title": "Sign in"})
}

// AdminUsers 非管理员跳回首页
func AdminUsers(ctx context.Context, c *app.RequestContext) {
	viewer, ok := sessionUser(c)
	if !ok {
		return
	}
	if !viewer.IsAdmin() {
		c.Redirect(http.StatusFound, []byte("/"))
		return
	}
	users, err := user.NewGetUserInfoService(ctx).ListUsers()
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "admin_users.html", utils.H{"Title": "Users", "Users": users, "Roles": constants.Roles})
}

func Settings(ctx context.Context, c *app.RequestContext) {
	if _, ok := sessionUser(c); !ok {
		return
	}
	render(c, http.StatusOK, "settings.html", utils.H{"Title": "Settings"})
}

// SignUp 只有管理员可以创建账号
func SignUp(ctx context.Context, c *app.RequestContext) {
	viewer, ok := sessionUser(c)
	if !ok {
		return
	}
	if !viewer.IsAdmin() {
		render(c, http.StatusForbidden, "error.html", utils.H{
			"Title":   "Access Denied",
			"Status":  http.StatusForbidden,
			"Message": "Only administrators can create new user accounts.",
		})
		return
	}
	render(c, http.StatusOK, "signup.html", utils.H{"Title": "Create user"})
}

func AdminSetup(ctx context.Context, c *app.RequestContext) {
	if _, ok := sessionUser(c); !ok {
		return
	}
	render(c, http.StatusOK, "admin_setup.html", utils.H{"Title": "Admin setup", "AdminEmail": config.ConfigInfo.Admin.Email})
}

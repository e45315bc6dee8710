package main

import (
	"context"
	"net/http"
	"time"

	interaction "VideoHub.com/cmd/api/handlers/interaction"
	page "VideoHub.com/cmd/api/handlers/page"
	playlist "VideoHub.com/cmd/api/handlers/playlist"
	relation "VideoHub.com/cmd/api/handlers/relation"
	user "VideoHub.com/cmd/api/handlers/user"
	video "VideoHub.com/cmd/api/handlers/video"
	"VideoHub.com/cmd/api/router/authfunc"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/jwt"
	"VideoHub.com/pkg/metrics"
	"VideoHub.com/pkg/ratelimit"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/prometheus/client_golang/prometheus"
)

// Routes holds what register needs besides the engine.
type Routes struct {
	Gatherer prometheus.Gatherer
	// UploadDir is served under UploadPrefix when media is stored locally.
	UploadDir    string
	UploadPrefix string
}

func with(chain []app.HandlerFunc, handlers ...app.HandlerFunc) []app.HandlerFunc {
	return append(chain, handlers...)
}

// register mounts the JSON api, the pages and the operational endpoints.
// jwt.Init must have run.
func register(r *route.Engine, opts Routes) {
	r.SetHTMLTemplate(page.Templates())

	r.GET("/ping", func(ctx context.Context, c *app.RequestContext) {
		c.JSON(http.StatusOK, utils.H{"message": "pong"})
	})
	r.GET("/health", health)
	if opts.Gatherer != nil {
		r.GET("/metrics", metrics.Handler(opts.Gatherer))
	}
	if opts.UploadDir != "" && opts.UploadPrefix != "" {
		r.StaticFS(opts.UploadPrefix, &app.FS{
			Root:        opts.UploadDir,
			PathRewrite: app.NewPathSlashesStripper(1),
		})
	}

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", ratelimit.Limit(ratelimit.ResourceLogin), jwt.AuthMiddleware.LoginHandler)
	auth.POST("/logout", jwt.AuthMiddleware.LogoutHandler)
	auth.GET("/session", with(authfunc.Auth(), user.Session)...)
	auth.POST("/signup", with(authfunc.AdminAuth(), user.Signup)...)

	admin := api.Group("/admin")
	admin.POST("/setup", authfunc.OptionalAuth(), user.SetupAdmin)
	admin.POST("/reset-password", with(authfunc.AdminAuth(), user.ResetPassword)...)

	users := api.Group("/users")
	users.GET("", with(authfunc.AdminAuth(), user.ListUsers)...)
	users.POST("/me/password", with(authfunc.Auth(), user.ChangePassword)...)
	users.PATCH("/:id", with(authfunc.AdminAuth(), user.UpdateUser)...)
	users.DELETE("/:id", with(authfunc.AdminAuth(), user.DeleteUser)...)
	users.POST("/:id/subscribe", with(authfunc.Auth(), relation.Subscribe)...)
	users.GET("/:id/subscribe", with(authfunc.Auth(), relation.SubscriptionStatus)...)
	users.GET("/:id/subscriptions", relation.Subscriptions)

	api.GET("/categories", video.ListCategories)
	api.GET("/search", ratelimit.Limit(ratelimit.ResourceSearch), video.Search)
	api.GET("/library", with(authfunc.Auth(), video.Library)...)

	videos := api.Group("/videos")
	videos.GET("", video.ListVideos)
	videos.GET("/popular", video.PopularVideos)
	videos.POST("/upload", with(authfunc.Auth(), ratelimit.Limit(ratelimit.ResourceUpload), video.UploadVideo)...)
	videos.GET("/:id", video.VideoInfo)
	videos.DELETE("/:id", with(authfunc.Auth(), video.DeleteVideo)...)
	videos.GET("/:id/related", video.RelatedVideos)
	videos.POST("/:id/view", video.AddView)
	videos.POST("/:id/like", with(authfunc.Auth(), interaction.LikeAction)...)
	videos.GET("/:id/like", with(authfunc.Auth(), interaction.LikeStatus)...)
	videos.GET("/:id/comments", interaction.ListComment)
	videos.POST("/:id/comments", with(authfunc.Auth(), interaction.CreateComment)...)
	videos.DELETE("/:id/comments/:commentId", with(authfunc.Auth(), interaction.DeleteComment)...)

	playlists := api.Group("/playlists")
	playlists.GET("", with(authfunc.Auth(), playlist.ListPlaylists)...)
	playlists.POST("", with(authfunc.Auth(), playlist.CreatePlaylist)...)
	playlists.GET("/:id", authfunc.OptionalAuth(), playlist.GetPlaylist)
	playlists.PUT("/:id", with(authfunc.Auth(), playlist.UpdatePlaylist)...)
	playlists.DELETE("/:id", with(authfunc.Auth(), playlist.DeletePlaylist)...)
	playlists.POST("/:id/videos", with(authfunc.Auth(), playlist.AddVideo)...)
	playlists.DELETE("/:id/videos", with(authfunc.Auth(), playlist.RemoveVideo)...)

	pages := r.Group("/", authfunc.OptionalAuth())
	pages.GET("/", page.Home)
	pages.GET("/video/:id", page.Video)
	pages.GET("/search", page.Search)
	pages.GET("/library", page.Library)
	pages.GET("/playlist/:id", page.Playlist)
	pages.GET("/upload", page.Upload)
	pages.GET("/auth/signin", page.SignIn)
	pages.GET("/admin/users", page.AdminUsers)
	pages.GET("/admin/setup", page.AdminSetup)
	pages.GET("/auth/signup", page.SignUp)
	pages.GET("/settings", page.Settings)
}

func health(ctx context.Context, c *app.RequestContext) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := database.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, utils.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, utils.H{"status": "ok"})
}

package authfunc

import (
	"context"

	"VideoHub.com/cmd/api/handlers/common"
	"VideoHub.com/cmd/user/service"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// Auth requires a valid session of an enabled user.
func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		jwt.AuthMiddleware.MiddlewareFunc(),
		LoadUser(),
	)
}

// AdminAuth is Auth plus role ADMIN.
func AdminAuth() []app.HandlerFunc {
	return append(Auth(), RequireAdmin())
}

// LoadUser resolves the token identity to an enabled user. A deleted or
// disabled account no longer holds a session.
func LoadUser() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		user, err := service.NewGetUserInfoService(ctx).GetActiveUser(jwt.Identity(c))
		if err != nil {
			common.Abort(c, err)
			return
		}
		jwt.SetCurrentUser(c, user)
		c.Next(ctx)
	}
}

func RequireAdmin() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		user, ok := jwt.CurrentUser(c)
		if !ok || !user.IsAdmin() {
			common.Abort(c, errno.AdminRequiredErr)
			return
		}
		c.Next(ctx)
	}
}

// OptionalAuth loads the session user when there is one and never aborts.
func OptionalAuth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if id := jwt.IdentityFromToken(ctx, c); id != "" {
			if user, err := service.NewGetUserInfoService(ctx).GetActiveUser(id); err == nil {
				jwt.SetCurrentUser(c, user)
			}
		}
		c.Next(ctx)
	}
}

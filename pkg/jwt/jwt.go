package jwt

import (
	"context"
	"errors"
	"net/http"
	"time"

	"VideoHub.com/cmd/model"
	"VideoHub.com/config"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/hertz-contrib/jwt"
)

// Authenticator checks the login credentials, returning the user on success.
type Authenticator func(ctx context.Context, email, password string) (*model.User, error)

var AuthMiddleware *jwt.HertzJWTMiddleware

type loginParam struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Init builds the session middleware. The signed token is the session: it is
// returned in the login body and set as an http-only cookie.
func Init(authenticate Authenticator) {
	timeout, err := time.ParseDuration(config.ConfigInfo.Jwt.Timeout)
	if err != nil || timeout <= 0 {
		timeout = 30 * 24 * time.Hour
	}
	AuthMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:          "videohub",
		Key:            []byte(config.ConfigInfo.Jwt.Key),
		Timeout:        timeout,
		MaxRefresh:     timeout,
		IdentityKey:    constants.IdentityKey,
		TokenLookup:    "header: Authorization, cookie: " + constants.CookieName + ", query: token",
		TokenHeadName:  "Bearer",
		TimeFunc:       time.Now,
		SendCookie:     true,
		CookieName:     constants.CookieName,
		CookieHTTPOnly: true,
		SecureCookie:   config.ConfigInfo.Jwt.SecureCookie,
		CookieSameSite: protocol.CookieSameSiteLaxMode,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if u, ok := data.(*model.User); ok {
				return jwt.MapClaims{constants.IdentityKey: u.ID}
			}
			return jwt.MapClaims{}
		},
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var param loginParam
			if err := c.Bind(&param); err != nil || param.Email == "" || param.Password == "" {
				return nil, errno.MissingCredentialsErr
			}
			user, err := authenticate(ctx, param.Email, param.Password)
			if err != nil {
				var en errno.ErrNo
				if !errors.As(err, &en) {
					hlog.CtxErrorf(ctx, "login of %s failed: %+v", param.Email, err)
					return nil, errno.ServiceErr
				}
				hlog.CtxInfof(ctx, "login failed for %s: %v", param.Email, err)
				return nil, en
			}
			c.Set(constants.LoginUserKey, user)
			return user, nil
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			resp := utils.H{"token": token, "expire": expire.Format(time.RFC3339)}
			if v, ok := c.Get(constants.LoginUserKey); ok {
				u := v.(*model.User)
				resp["user"] = SessionUser(u)
			}
			c.JSON(http.StatusOK, resp)
		},
		LogoutResponse: func(ctx context.Context, c *app.RequestContext, code int) {
			c.JSON(http.StatusOK, utils.H{"success": true})
		},
		HTTPStatusMessageFunc: func(e error, ctx context.Context, c *app.RequestContext) string {
			var en errno.ErrNo
			if errors.As(e, &en) {
				c.Set(constants.AuthStatusKey, en.Status)
				return en.ErrMsg
			}
			// 其余 token 错误统一返回未登录
			return errno.AuthorizationFailedErr.ErrMsg
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			if status, ok := c.Get(constants.AuthStatusKey); ok {
				code = status.(int)
			}
			c.JSON(code, utils.H{"error": message})
		},
	})
	if err != nil {
		panic(err)
	}
}

// SessionUser is the user view carried in login and session responses.
func SessionUser(u *model.User) utils.H {
	return utils.H{
		"id":       u.ID,
		"email":    u.Email,
		"username": u.Username,
		"name":     u.Name,
		"role":     u.Role,
	}
}

// IdentityFromToken validates the request token without aborting, returning
// the user id or "" when there is no valid session.
func IdentityFromToken(ctx context.Context, c *app.RequestContext) string {
	claims, err := AuthMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return ""
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return ""
	}
	id, _ := claims[constants.IdentityKey].(string)
	return id
}

// Identity returns the user id put in place by the middleware.
func Identity(c *app.RequestContext) string {
	claims := jwt.ExtractClaims(context.Background(), c)
	id, _ := claims[constants.IdentityKey].(string)
	return id
}

// CurrentUser returns the session user loaded by the auth chain.
func CurrentUser(c *app.RequestContext) (*model.User, bool) {
	v, ok := c.Get(constants.CurrentUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*model.User)
	return u, ok && u != nil
}

func SetCurrentUser(c *app.RequestContext, u *model.User) {
	c.Set(constants.CurrentUser, u)
}

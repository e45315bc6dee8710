// Package common holds the response helpers shared by every handler package.
package common

import (
	"strconv"
	"strings"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// SendResponse writes data with 200, or the error body with the status the
// error carries. Unknown errors become 500 "Internal server error".
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	if err != nil {
		SendError(c, err)
		return
	}
	c.JSON(consts.StatusOK, data)
}

func SendResponseWithStatus(c *app.RequestContext, status int, data interface{}) {
	c.JSON(status, data)
}

func SendError(c *app.RequestContext, err error) {
	c.JSON(errorStatus(c, err))
}

// Abort is SendError for middlewares: the rest of the chain is skipped.
func Abort(c *app.RequestContext, err error) {
	c.AbortWithStatusJSON(errorStatus(c, err))
}

func errorStatus(c *app.RequestContext, err error) (int, utils.H) {
	Err := errno.ConvertErr(err)
	if Err.Status >= consts.StatusInternalServerError {
		hlog.Errorf("%s %s failed: %+v", c.Method(), c.Path(), err)
	}
	return Err.Status, utils.H{"error": Err.ErrMsg}
}

// QueryInt parses a query parameter, def when absent or not a number.
func QueryInt(c *app.RequestContext, key string, def int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// RequireUser returns the session user, answering 401 when the auth chain
// did not load one.
func RequireUser(c *app.RequestContext) (*model.User, bool) {
	user, ok := jwt.CurrentUser(c)
	if !ok {
		SendError(c, errno.AuthorizationFailedErr)
	}
	return user, ok
}

package ratelimit

import (
	"context"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimit(t *testing.T) {
	// 阈值为 0 的资源会拒绝所有请求
	require.NoError(t, Init(t.TempDir(), map[string]float64{"blocked": 0}))

	engine := route.NewEngine(config.NewOptions([]config.Option{}))
	ok := func(ctx context.Context, c *app.RequestContext) { c.String(http.StatusOK, "ok") }
	engine.GET("/blocked", Limit("blocked"), ok)
	engine.GET("/free", Limit("free"), ok)

	w := ut.PerformRequest(engine, http.MethodGet, "/blocked", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests"}`, w.Body.String())

	w = ut.PerformRequest(engine, http.MethodGet, "/free", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

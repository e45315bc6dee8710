package metrics

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	engine := route.NewEngine(config.NewOptions([]config.Option{}))
	engine.Use(m.Middleware())
	engine.GET("/api/videos/:id", func(ctx context.Context, c *app.RequestContext) {
		c.String(http.StatusOK, "ok")
	})

	ut.PerformRequest(engine, http.MethodGet, "/api/videos/abc", nil)
	ut.PerformRequest(engine, http.MethodGet, "/api/videos/def", nil)
	ut.PerformRequest(engine, http.MethodGet, "/nowhere", nil)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/videos/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.InFlightGauge))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

// The promhttp adaptor writes through the connection, so the scrape needs a
// real listener.
func TestHandlerServesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	h := server.New(server.WithHostPorts(addr), server.WithDisablePrintRoute(true), server.WithExitWaitTime(time.Second))
	h.Use(m.Middleware())
	h.GET("/ping", func(ctx context.Context, c *app.RequestContext) {
		c.String(http.StatusOK, "pong")
	})
	h.GET("/metrics", Handler(reg))
	go func() {
		_ = h.Run()
	}()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = h.Shutdown(ctx)
	})
	require.Eventually(t, h.IsRunning, 5*time.Second, 10*time.Millisecond)

	cli, err := client.NewClient()
	require.NoError(t, err)
	status, _, err := cli.Get(context.Background(), nil, "http://"+addr+"/ping")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)

	status, body, err := cli.Get(context.Background(), nil, "http://"+addr+"/metrics")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `videohub_http_requests_total{method="GET",route="/ping",status_code="200"} 1`)
	// the scrape itself is not recorded
	assert.NotContains(t, string(body), `route="/metrics"`)
}

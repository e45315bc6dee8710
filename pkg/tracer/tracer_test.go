package tracer

import (
	"context"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithoutAddr(t *testing.T) {
	closer, err := Init("videohub", "")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

func TestMiddlewareStartsSpan(t *testing.T) {
	mock := mocktracer.New()
	prev := opentracing.GlobalTracer()
	opentracing.SetGlobalTracer(mock)
	t.Cleanup(func() { opentracing.SetGlobalTracer(prev) })

	engine := route.NewEngine(config.NewOptions([]config.Option{}))
	engine.Use(Middleware())
	engine.GET("/api/videos/:id", func(ctx context.Context, c *app.RequestContext) {
		assert.NotNil(t, opentracing.SpanFromContext(ctx))
		c.String(http.StatusNotFound, "missing")
	})
	ut.PerformRequest(engine, http.MethodGet, "/api/videos/x", nil)

	spans := mock.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/videos/:id", spans[0].OperationName)
	assert.Equal(t, uint16(http.StatusNotFound), spans[0].Tag("http.status_code"))
}

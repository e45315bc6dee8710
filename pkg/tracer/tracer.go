// Package tracer installs the global opentracing tracer. The gorm
// opentracing plugin and the request middleware both report through it.
package tracer

import (
	"context"
	"io"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init reports to the jaeger agent at addr. An empty addr keeps the no-op
// global tracer.
func Init(serviceName, addr string) (io.Closer, error) {
	if addr == "" {
		return nopCloser{}, nil
	}
	cfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           false,
			LocalAgentHostPort: addr,
		},
	}
	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer failed")
	}
	opentracing.SetGlobalTracer(tracer)
	hlog.Infof("jaeger tracer reporting to %s", addr)
	return closer, nil
}

// Middleware opens a server span per request and puts it in ctx, so the
// database spans of the request become its children.
func Middleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		tracer := opentracing.GlobalTracer()
		operation := c.FullPath()
		if operation == "" {
			operation = "unmatched"
		}
		carrier := opentracing.HTTPHeadersCarrier{}
		c.Request.Header.VisitAll(func(k, v []byte) {
			carrier.Set(string(k), string(v))
		})
		var opts []opentracing.StartSpanOption
		if parent, err := tracer.Extract(opentracing.HTTPHeaders, carrier); err == nil {
			opts = append(opts, ext.RPCServerOption(parent))
		}
		span := tracer.StartSpan(string(c.Method())+" "+operation, opts...)
		defer span.Finish()
		ext.HTTPMethod.Set(span, string(c.Method()))
		ext.HTTPUrl.Set(span, string(c.Request.URI().Path()))

		c.Next(opentracing.ContextWithSpan(ctx, span))

		status := c.Response.StatusCode()
		ext.HTTPStatusCode.Set(span, uint16(status))
		if status >= 500 {
			ext.Error.Set(span, true)
		}
	}
}

package main

import (
	"context"
	"net/http"

	"VideoHub.com/cmd/model"
	userservice "VideoHub.com/cmd/user/service"
	"VideoHub.com/cmd/video/infras/redis"
	videoservice "VideoHub.com/cmd/video/service"
	"VideoHub.com/config"
	"VideoHub.com/config/pprof"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/jwt"
	"VideoHub.com/pkg/logger"
	"VideoHub.com/pkg/metrics"
	"VideoHub.com/pkg/mq"
	"VideoHub.com/pkg/oss"
	"VideoHub.com/pkg/ratelimit"
	"VideoHub.com/pkg/search"
	"VideoHub.com/pkg/tracer"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/hertz-contrib/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

func Init() {
	config.Init()
	c := config.ConfigInfo
	logger.Init(logger.Config{
		Level:      c.Log.Level,
		Format:     c.Log.Format,
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
	})
	database.Init()
	redis.Load()
	if err := videoservice.SyncVisitRanking(context.Background()); err != nil {
		logrus.Warnf("seed visit ranking failed: %v", err)
	}
	if err := oss.Init(); err != nil {
		logrus.Fatalf("init storage failed: %v", err)
	}
	// 搜索索引不可用时退回 SQL 查询
	if err := search.Init(); err != nil {
		logrus.Errorf("Elasticsearch unavailable, search uses SQL: %v", err)
	}
	mq.Init(videoservice.NewVideoProcessor())
	jwt.Init(func(ctx context.Context, email, password string) (*model.User, error) {
		return userservice.NewLoginUserService(ctx).LoginUser(&userservice.LoginRequest{Email: email, Password: password})
	})
	if c.Sentinel.Enabled {
		if err := ratelimit.Init(c.Sentinel.LogDir, positive(map[string]float64{
			ratelimit.ResourceSearch: c.Sentinel.SearchQPS,
			ratelimit.ResourceUpload: c.Sentinel.UploadQPS,
			ratelimit.ResourceLogin:  c.Sentinel.LoginQPS,
		})); err != nil {
			logrus.Errorf("init sentinel failed, flow control disabled: %v", err)
		}
	}
}

// positive drops unset limits, a zero threshold would reject every request.
func positive(qps map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(qps))
	for resource, v := range qps {
		if v > 0 {
			out[resource] = v
		}
	}
	return out
}

func main() {
	Init()
	c := config.ConfigInfo
	closer, err := tracer.Init(c.Tracer.ServiceName, c.Tracer.Addr)
	if err != nil {
		logrus.Errorf("tracer disabled: %v", err)
	} else {
		defer closer.Close()
	}
	defer mq.Close()
	defer redis.Close()
	pprof.Load(c.Pprof.Addr)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := metrics.NewHTTPMetrics(reg)

	h := server.New(
		server.WithHostPorts(c.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(c.Server.MaxRequestBody),
	)

	// 配置 CORS
	h.Use(cors.New(cors.Config{
		AllowOrigins:     c.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// 错误处理
	h.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(http.StatusInternalServerError, utils.H{"error": "Internal server error"})
		})))
	h.Use(httpMetrics.Middleware(), tracer.Middleware())

	var uploadDir string
	if c.Minio.Endpoint == "" {
		uploadDir = c.Storage.LocalDir
	}
	register(h.Engine, Routes{
		Gatherer:     reg,
		UploadDir:    uploadDir,
		UploadPrefix: c.Storage.URLPrefix,
	})

	h.Spin()
}

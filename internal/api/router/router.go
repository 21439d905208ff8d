// Package router 组装HTTP服务器：中间件、鉴权与路由注册。
package router

import (
	"context"
	"time"

	"resume-parser-go/internal/api/handler"
	"resume-parser-go/internal/config"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	hzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/hertz-contrib/keyauth"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
)

// NewServer 构建hertz服务器并注册全部路由。
// 链路追踪开启时挂载服务端span中间件；配置了API Key时为/api/v1启用Bearer鉴权。
func NewServer(cfg *config.Config, resumeHandler *handler.ResumeHandler) *server.Hertz {
	opts := []hzconfig.Option{
		server.WithHostPorts(cfg.Server.Address),
		server.WithExitWaitTime(time.Duration(cfg.Server.ExitWaitSeconds) * time.Second),
		// 留出multipart编码的余量，具体的文件大小上限在处理器内校验
		server.WithMaxRequestBodySize(int(cfg.Upload.MaxFileSizeBytes()) + 1<<20),
	}

	var tracingCfg *hertztracing.Config
	if cfg.Tracing.Enabled {
		tracer, tCfg := hertztracing.NewServerTracer()
		opts = append(opts, tracer)
		tracingCfg = tCfg
	}

	h := server.Default(opts...)
	if tracingCfg != nil {
		h.Use(hertztracing.ServerMiddleware(tracingCfg))
	}

	RegisterRoutes(h, cfg, resumeHandler)
	return h
}

// RegisterRoutes 注册API路由
func RegisterRoutes(h *server.Hertz, cfg *config.Config, resumeHandler *handler.ResumeHandler) {
	// 健康检查不走鉴权，供负载均衡探活
	h.GET("/health", resumeHandler.HealthCheck)

	api := h.Group("/api/v1")

	if cfg.Server.APIKey != "" {
		api.Use(keyauth.New(
			keyauth.WithKeyLookUp("header:Authorization", "Bearer"),
			keyauth.WithValidator(func(ctx context.Context, c *app.RequestContext, key string) (bool, error) {
				return key == cfg.Server.APIKey, nil
			}),
		))
	}

	api.POST("/resumes", resumeHandler.UploadResume)
	api.GET("/resumes", resumeHandler.ListResumes)
	api.GET("/resumes/:id", resumeHandler.GetResume)
	api.GET("/resumes/:id/export", resumeHandler.ExportResume)
	api.POST("/resumes/:id/match", resumeHandler.MatchResume)
	api.DELETE("/resumes/:id", resumeHandler.DeleteResume)
}

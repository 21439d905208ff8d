package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"resume-parser-go/internal/api/handler"
	"resume-parser-go/internal/api/router"
	"resume-parser-go/internal/config"
	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/outbox"
	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/storage"
	"resume-parser-go/internal/tracing"

	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"
)

var (
	version     = "1.0.0"            //nolint:gochecknoglobals
	serviceName = "resume-parser-go" //nolint:gochecknoglobals
)

const (
	// MD5去重集合与数据库的对账周期，以及对账锁的持有时间
	md5RefreshInterval = 24 * time.Hour
	md5RefreshLockTTL  = 10 * time.Minute
)

func main() {
	var (
		configPath string
		initConfig bool
	)
	pflag.StringVarP(&configPath, "config", "c", "", "配置文件路径（留空时按默认搜索路径查找）")
	pflag.BoolVar(&initConfig, "init-config", false, "在目标路径生成示例配置文件后退出")
	pflag.Parse()

	if initConfig {
		target := configPath
		if target == "" {
			target = "config.yaml"
		}
		if err := config.CreateSampleConfig(target); err != nil {
			fmt.Fprintf(os.Stderr, "生成示例配置失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("示例配置已生成:", target)
		return
	}

	// 初始化日志系统
	initLogger(configPath)

	// 1. 加载配置文件
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("加载配置文件失败")
	}
	logger.Info().Msg("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. 初始化链路追踪
	shutdownTracing, err := tracing.InitTracerProvider(ctx, &cfg.Tracing)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化链路追踪失败")
	}
	defer func() {
		flushCtx, cancelFlush := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelFlush()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn().Err(err).Msg("关闭链路追踪失败")
		}
	}()

	// 3. 初始化存储管理器
	storageManager, err := storage.NewStorage(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化存储管理器失败")
	}
	defer storageManager.Close()

	// 4. 初始化简历解析器与业务处理器
	resumeParser, err := parser.CreateParserFromConfig(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化简历解析器失败")
	}
	resumeHandler := handler.NewResumeHandler(cfg, storageManager, resumeParser)
	logger.Info().Msg("简历处理器初始化成功")

	// 5. 启动发件箱消息中继（需要MySQL和RabbitMQ同时可用）
	var messageRelay *outbox.MessageRelay
	if storageManager.MySQL != nil && storageManager.RabbitMQ != nil {
		relayLogger := log.New(logger.Logger, "[OutboxRelay] ", log.LstdFlags|log.Lshortfile)
		messageRelay = outbox.NewMessageRelay(storageManager.MySQL.DB(), storageManager.RabbitMQ, relayLogger)
		messageRelay.Start()
		logger.Info().Msg("发件箱消息中继已启动")
	}

	// 6. 启动MD5去重集合对账任务（需要MySQL和Redis同时可用）
	if storageManager.MySQL != nil && storageManager.Redis != nil {
		go runMD5RefreshLoop(ctx, storageManager)
	}

	// 7. 创建HTTP服务器并注册路由
	h := router.NewServer(cfg, resumeHandler)
	logger.Info().Str("address", cfg.Server.Address).Msg("HTTP服务器启动中")

	go func() {
		if err := h.Run(); err != nil {
			logger.Fatal().Err(err).Msg("启动HTTP服务器失败")
		}
	}()

	// 8. 等待终止信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("接收到终止信号，正在优雅退出...")

	// 先停中继，避免关闭过程中还在向MQ投递
	if messageRelay != nil {
		messageRelay.Stop()
		logger.Info().Msg("发件箱消息中继已停止")
	}

	// 9. 优雅关闭HTTP服务器
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ExitWaitSeconds)*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("服务器关闭失败")
	}

	logger.Info().Msg("优雅退出完成")
}

// 初始化日志系统，并把Hertz框架日志接到同一个zerolog输出上
func initLogger(configPath string) {
	// 默认开发环境使用美化输出，生产环境使用JSON格式
	isProduction := os.Getenv("ENV") == "production"

	// 尝试加载配置文件
	cfg, err := config.LoadConfig(configPath)

	logConfig := logger.Config{
		Level:        "debug",
		Format:       "pretty",
		TimeFormat:   time.RFC3339,
		ReportCaller: true,
	}

	// 如果配置文件成功加载，使用配置文件中的日志设置
	if err == nil && cfg != nil {
		logConfig.Level = cfg.Logger.Level
		logConfig.Format = cfg.Logger.Format
		logConfig.TimeFormat = cfg.Logger.TimeFormat
		logConfig.ReportCaller = cfg.Logger.ReportCaller
	} else if isProduction {
		// 如果配置文件加载失败但是是生产环境，使用生产环境的默认设置
		logConfig.Level = "info"
		logConfig.Format = "json"
		logConfig.ReportCaller = false
	}

	logger.Init(logConfig)

	// 设置一些全局的字段
	logger.Logger = logger.Logger.With().
		Str("app", serviceName).
		Str("version", version).
		Logger()

	// Hertz自身的访问日志和框架日志走同一个zerolog实例
	glog.SetLogger(hertzadapter.From(logger.Logger))
	glog.SetLevel(hertzLogLevel(logConfig.Level))
}

func hertzLogLevel(level string) glog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return glog.LevelTrace
	case "debug":
		return glog.LevelDebug
	case "warn", "warning":
		return glog.LevelWarn
	case "error":
		return glog.LevelError
	case "fatal":
		return glog.LevelFatal
	default:
		return glog.LevelInfo
	}
}

// runMD5RefreshLoop 周期性地用数据库中的MD5全量回填Redis去重集合。
// Redis重启或键过期后，去重集合可能缺失历史记录，定期对账可以兜底。
func runMD5RefreshLoop(ctx context.Context, storageManager *storage.Storage) {
	// 启动时先对账一次，之后按周期执行
	refreshMD5Set(ctx, storageManager)

	ticker := time.NewTicker(md5RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refreshMD5Set(ctx, storageManager)
		}
	}
}

// refreshMD5Set 在分布式锁保护下执行一轮对账，多实例部署时只有持锁者执行
func refreshMD5Set(ctx context.Context, storageManager *storage.Storage) {
	lockValue, err := storageManager.Redis.AcquireLock(ctx, constants.KeyMD5RefreshLock, md5RefreshLockTTL)
	if err != nil {
		logger.Warn().Err(err).Msg("获取MD5对账锁失败")
		return
	}
	if lockValue == "" {
		logger.Debug().Msg("MD5对账锁被其他实例持有，跳过本轮")
		return
	}
	defer func() {
		if _, err := storageManager.Redis.ReleaseLock(ctx, constants.KeyMD5RefreshLock, lockValue); err != nil {
			logger.Warn().Err(err).Msg("释放MD5对账锁失败")
		}
	}()

	md5s, err := storageManager.MySQL.ListRawFileMD5s(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("读取数据库MD5列表失败")
		return
	}
	if len(md5s) == 0 {
		return
	}

	added, err := storageManager.Redis.RefreshRawFileMD5Set(ctx, md5s)
	if err != nil {
		logger.Warn().Err(err).Msg("回填MD5去重集合失败")
		return
	}
	logger.Info().Int("total", len(md5s)).Int64("added", added).Msg("MD5去重集合对账完成")
}

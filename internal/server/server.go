package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"basegraph.app/taskhook/common/id"
	"basegraph.app/taskhook/common/logger"
	"basegraph.app/taskhook/common/otel"
	"basegraph.app/taskhook/core/config"
	"basegraph.app/taskhook/core/db"
	"basegraph.app/taskhook/internal/dedup"
	"basegraph.app/taskhook/internal/http/handler"
	"basegraph.app/taskhook/internal/http/middleware"
	httprouter "basegraph.app/taskhook/internal/http/router"
	"basegraph.app/taskhook/internal/queue"
	"basegraph.app/taskhook/internal/service"
	"basegraph.app/taskhook/internal/store"
)

// Run starts the webhook server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		return fmt.Errorf("initializing otel: %w", err)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "taskhook starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if !cfg.Webhook.Connected() {
		slog.WarnContext(ctx, "GITHUB_WEBHOOK_SECRET is not set, every delivery will be rejected")
	}

	if err := id.Init(cfg.NodeID); err != nil {
		return fmt.Errorf("initializing snowflake id generator: %w", err)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	var (
		redisClient *redis.Client
		producer    = queue.NewNoopProducer()
		activity    handler.StreamReader
	)
	if cfg.Redis.Enabled() {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("parsing redis url: %w", err)
		}

		redisClient = redis.NewClient(redisOpts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			_ = redisClient.Close()
			return fmt.Errorf("connecting to redis: %w", err)
		}
		slog.InfoContext(ctx, "redis connected", "stream", cfg.Redis.ActivityStream)

		producer = queue.NewRedisProducer(redisClient, cfg.Redis.ActivityStream, slog.Default())
		activity = redisClient
	} else {
		slog.InfoContext(ctx, "redis disabled, activity events are dropped")
	}
	defer producer.Close()

	var deliveries dedup.DeliveryCache
	switch cfg.Webhook.DedupBackend {
	case config.DedupBackendRedis:
		deliveries = dedup.NewRedisCache(redisClient, cfg.Redis.DedupPrefix, cfg.Webhook.DedupWindow)
	default:
		deliveries = dedup.NewMemoryCache(cfg.Webhook.DedupWindow)
	}
	slog.InfoContext(ctx, "delivery dedup ready", "backend", cfg.Webhook.DedupBackend, "window", cfg.Webhook.DedupWindow)

	stores := store.NewStores(database.Queries())
	services := service.NewServices(stores, producer, slog.Default())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, httprouter.RouterConfig{
		WebhookSecret:  cfg.Webhook.Secret,
		WebhookPath:    cfg.Webhook.Path,
		Deliveries:     deliveries,
		ActivityReader: activity,
		ActivityStream: cfg.Redis.ActivityStream,
	})
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port, "webhook_path", cfg.Webhook.Path)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
	return nil
}

func setupRouter(cfg config.Config, services *service.Services, routes httprouter.RouterConfig) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, routes)

	return router
}

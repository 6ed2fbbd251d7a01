package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/modaiq/stylerec/internal/catalog"
	"github.com/modaiq/stylerec/internal/config"
	"github.com/modaiq/stylerec/internal/handlers"
	"github.com/modaiq/stylerec/internal/messaging"
	"github.com/modaiq/stylerec/internal/middleware"
	"github.com/modaiq/stylerec/internal/services"
)

type App struct {
	config    *config.Config
	logger    *logrus.Logger
	catalog   *catalog.Catalog
	registry  *prometheus.Registry
	services  *services.Services
	handlers  *handlers.Handlers
	router    *gin.Engine
	redis     *redis.Client
	publisher *messaging.InteractionPublisher
}

func New(cfg *config.Config) (*App, error) {
	app := &App{
		config: cfg,
		logger: setupLogger(cfg),
	}

	cat, err := loadCatalog(cfg, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	app.catalog = cat

	app.redis = setupRedis(cfg, app.logger)
	app.publisher = messaging.NewInteractionPublisher(&cfg.Kafka, app.logger)

	var sink services.InteractionSink
	if app.publisher != nil {
		sink = app.publisher
	}

	app.registry = prometheus.NewRegistry()
	metrics := services.NewMetrics(app.registry)

	svcs, err := services.New(cfg, app.logger, cat, app.redis, sink, metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	app.services = svcs

	app.handlers = handlers.New(app.logger, cfg, svcs, cat)
	app.setupRouter()

	return app, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.WithError(err).Error("Error closing interaction publisher")
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.WithError(err).Error("Error closing Redis client")
			return err
		}
	}
	return nil
}

// loadCatalog reads the immutable product catalog at startup. The Postgres
// source closes its pool after the load; the engine never touches the
// database again.
func loadCatalog(cfg *config.Config, logger *logrus.Logger) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout+30*time.Second)
		defer cancel()

		poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("parse database config: %w", err)
		}
		poolConfig.MaxConns = int32(cfg.Database.MaxConnections)
		poolConfig.ConnConfig.ConnectTimeout = cfg.Database.ConnectTimeout

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		return catalog.LoadPostgres(ctx, pool, logger)
	default:
		return catalog.LoadFile(cfg.Catalog.MetadataPath, logger)
	}
}

// setupRedis returns nil when no Redis URL is configured; rate limiting is
// skipped in that case.
func setupRedis(cfg *config.Config, logger *logrus.Logger) *redis.Client {
	if cfg.Redis.URL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.WithError(err).Warn("Invalid Redis URL, rate limiting disabled")
		return nil
	}
	opts.MaxRetries = cfg.Redis.MaxRetries
	opts.PoolSize = cfg.Redis.PoolSize
	opts.DialTimeout = cfg.Redis.Timeout

	return redis.NewClient(opts)
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

func (a *App) setupRouter() {
	if a.config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Logger(a.logger))
	router.Use(middleware.Recovery(a.logger))
	router.Use(middleware.CORS(a.config))

	router.GET("/health", a.handlers.Health.Check)

	if a.config.Monitoring.Enabled {
		router.GET(a.config.Monitoring.MetricsPath,
			gin.WrapH(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api/v1")
	{
		if a.config.Auth.Enabled {
			api.Use(middleware.Auth(a.services.Auth, a.logger))
		}
		if a.services.RateLimit != nil {
			api.Use(middleware.RateLimit(a.services.RateLimit, a.logger))
		}

		api.POST("/recommendations", a.handlers.Recommendation.Get)
		api.POST("/interactions", a.handlers.Interaction.Record)
	}

	a.router = router
}

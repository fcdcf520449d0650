package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go-leave/internal/config"
	"go-leave/internal/localstore"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/middleware"
	"go-leave/internal/migrations"
	"go-leave/internal/notify"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/audit"
	"go-leave/internal/shared/connection"
	"go-leave/internal/shared/response"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const eventStreamPath = "/api/v1/leaves/events"

// BuildApp connects the infrastructure and mounts every module on router.
// The returned cleanup releases connections and background goroutines.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L()
	log := logger.Named("app")

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	gormDB, err := connection.OpenGORM(cfg, 5)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	closers := []func(){cancel, func() { _ = sqlDB.Close() }}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// sqlite is the zero-setup local mode, so its schema is applied on boot
	if cfg.StoreDriver == config.StoreDriverSQLite {
		if err := migrations.Up(ctx, sqlDB, cfg.StoreDriver); err != nil {
			cleanup()
			return nil, err
		}
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			cleanup()
			return nil, err
		}
		closers = append(closers, func() { _ = rdb.Close() })
	}

	store, err := newStore(cfg, gormDB, rdb)
	if err != nil {
		cleanup()
		return nil, err
	}

	hub := notify.NewHub(logger)
	closers = append(closers, hub.Close)

	var publisher notify.Publisher = hub
	if rdb != nil {
		publisher = notify.NewRedisPublisher(rdb, cfg.NotifyChannel)
		go notify.Relay(ctx, rdb, cfg.NotifyChannel, hub, logger)
	}

	var outboxRepo kafka.OutboxRepository
	if cfg.StoreDriver != config.StoreDriverSQLite {
		outboxRepo = kafka.NewOutboxRepository(sqlDB)
	} else {
		log.Info("outbox disabled for sqlite store")
	}

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{eventStreamPath})),
	)

	router.GET("/healthz", func(c *gin.Context) {
		if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "Database unreachable", nil)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok", "store": cfg.StoreDriver}, nil)
	})

	err = registerModules(ctx, router, Dependencies{
		Config:    cfg,
		GormDB:    gormDB,
		Redis:     rdb,
		Store:     store,
		Hub:       hub,
		Publisher: publisher,
		Outbox:    outboxRepo,
		Audit:     audit.NewZapLogger(logger),
		Logger:    logger,
	})
	if err != nil {
		cleanup()
		return nil, err
	}

	log.Info("app built",
		zap.String("store_driver", cfg.StoreDriver),
		zap.Bool("redis", rdb != nil),
		zap.Bool("outbox", outboxRepo != nil),
	)
	return cleanup, nil
}

func newStore(cfg config.Config, gormDB *gorm.DB, rdb *redis.Client) (localstore.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres, config.StoreDriverSQLite:
		return localstore.NewGormStore(gormDB), nil
	case config.StoreDriverRedis:
		if rdb == nil {
			return nil, errors.New("REDIS_ADDR is required for the redis store driver")
		}
		return localstore.NewRedisStore(rdb, cfg.RedisStorePrefix), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

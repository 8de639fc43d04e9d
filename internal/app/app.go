package app

import (
	"context"
	"sync"
	"time"

	"visionmines/internal/config"
	"visionmines/internal/contact"
	"visionmines/internal/enquiry"
	"visionmines/internal/middleware"
	"visionmines/internal/roster"
	"visionmines/internal/shared/connection"
	"visionmines/internal/viewstore"

	goversion "github.com/caarlos0/go-version"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	redisMaxRetries = 5
	redisRetryWait  = 2 * time.Second
)

// App owns the long-lived state behind the router: the view stores and
// their sweepers, and the optional redis client.
type App struct {
	Dashboards *viewstore.Store[*roster.View]
	Enquiries  *viewstore.Store[*enquiry.View]
	Contacts   *viewstore.Store[*contact.View]
	Redis      *redis.Client

	cancel context.CancelFunc
	wg     sync.WaitGroup
	logger *zap.Logger
}

// BuildApp connects infrastructure, registers every module on router and
// starts the idle view sweepers.
func BuildApp(ctx context.Context, router *gin.Engine, cfg config.Config, info goversion.Info, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.L()
	}
	a := &App{
		Dashboards: viewstore.New[*roster.View]("dashboard", cfg.ViewIdleTTL, logger),
		Enquiries:  viewstore.New[*enquiry.View]("enquiry", cfg.ViewIdleTTL, logger),
		Contacts:   viewstore.New[*contact.View]("contact", cfg.ViewIdleTTL, logger),
		logger:     logger.Named("app"),
	}

	// 1. Infrastructure
	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(ctx, cfg.RedisAddr, redisMaxRetries, redisRetryWait)
		if err != nil {
			return nil, err
		}
		a.Redis = rdb
	} else {
		a.logger.Info("REDIS_ADDR not set, idempotency keys are ignored")
	}

	// 2. Modules & routes
	if err := registerModules(router, a, cfg, info, logger); err != nil {
		a.closeRedis()
		return nil, err
	}

	// 3. Background sweepers
	runCtx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	interval := cfg.ViewSweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	sweepLimiters := func(ctx context.Context, interval time.Duration) {
		middleware.RunLimiterSweep(ctx, interval, cfg.ViewIdleTTL)
	}
	for _, run := range []func(context.Context, time.Duration){a.Dashboards.Run, a.Enquiries.Run, a.Contacts.Run, sweepLimiters} {
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			run(runCtx, interval)
		}()
	}

	return a, nil
}

// Close stops the sweepers, tears down every open view and releases redis.
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()
	a.closeRedis()
	a.logger.Info("app closed")
}

func (a *App) closeRedis() {
	if a.Redis == nil {
		return
	}
	if err := a.Redis.Close(); err != nil {
		a.logger.Warn("close redis failed", zap.Error(err))
	}
}

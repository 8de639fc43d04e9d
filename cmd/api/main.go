package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"visionmines/internal/app"
	"visionmines/internal/bootstrap"
	"visionmines/internal/config"
	"visionmines/internal/shared/apperror"
	"visionmines/internal/version"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Production() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	info := version.Build()
	logger.Info("starting",
		zap.String("app", info.Name),
		zap.String("version", info.GitVersion),
		zap.String("commit", info.GitCommit),
		zap.String("env", cfg.AppEnv),
	)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	apperror.Init()
	r := gin.Default()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// build dependency + routes
	application, err := app.BuildApp(ctx, r, cfg, info, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer application.Close()

	server := bootstrap.NewHTTPServer(r, bootstrap.ServerConfig{
		Port:         cfg.Port,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	})
	if err := bootstrap.RunHTTPServer(ctx, server, bootstrap.NewStdoutAuditLogger(logger)); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}

// Package main runs the activities signup HTTP server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mergington/activities/config"
	"github.com/mergington/activities/internal/activities"
	"github.com/mergington/activities/internal/roster"
	"github.com/mergington/activities/internal/server"
	"github.com/mergington/activities/pkg/database"
	"github.com/mergington/activities/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("load config", zap.Error(err))
	}

	logger := newLogger(cfg.Log.Mode)
	defer logger.Sync()

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.InitSchema(db); err != nil {
		logger.Fatal("init schema", zap.Error(err))
	}
	if _, err := activities.SeedIfEmpty(ctx, db, logger); err != nil {
		logger.Fatal("seed", zap.Error(err))
	}

	var publisher roster.Publisher = roster.NopPublisher{}
	if cfg.Redis.Addr != "" {
		rdb, err := redis.NewClient(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Warn("roster events disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			publisher = roster.NewRedisPublisher(rdb.Client, logger)
		}
	}

	activityRepo := activities.NewRepository(db)
	activityHandler := activities.NewHandler(activityRepo, publisher, logger)

	if !strings.EqualFold(cfg.Log.Mode, "development") {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(server.RouterConfig{
		Activities:         activityHandler,
		Logger:             logger,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		StaticDir:          cfg.Server.StaticDir,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(mode string) *zap.Logger {
	config := zap.NewProductionConfig()
	if strings.EqualFold(mode, "development") {
		config = zap.NewDevelopmentConfig()
	}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}

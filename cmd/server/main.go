package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deep314313/unnativ-backend/config"
	"github.com/deep314313/unnativ-backend/internal/database"
	"github.com/deep314313/unnativ-backend/internal/router"
	"github.com/deep314313/unnativ-backend/pkg/cloudinary"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	var logger *zap.Logger
	if cfg.Server.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		sugar.Fatalw("database", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		sugar.Fatalw("migrate", "error", err)
	}

	var cloud cloudinary.Client
	if cfg.Cloudinary.CloudName != "" {
		cloud, err = cloudinary.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			sugar.Fatalw("cloudinary", "error", err)
		}
	} else {
		sugar.Warn("cloudinary not configured, photo uploads disabled")
	}

	engine := router.Setup(cfg, db, cloud, logger)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		sugar.Infow("server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("listen", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugar.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Fatalw("server shutdown", "error", err)
	}
	sugar.Info("server stopped")
}

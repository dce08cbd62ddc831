package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"facility-finder/internal/auth"
	"facility-finder/internal/config"
	"facility-finder/internal/database"
	"facility-finder/internal/geo"
	"facility-finder/internal/logger"
	"facility-finder/internal/observability"
	"facility-finder/internal/routes"
	"facility-finder/internal/services"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logr := logger.New(cfg)
	defer logr.Sync()

	db, err := database.New(cfg.DatabaseURL, cfg)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := database.EnsureSchema(context.Background(), db); err != nil {
			logr.Fatal("failed to create schema", zap.Error(err))
		}
	}

	postal := geo.DefaultPostalTable()
	if cfg.PostalDataPath != "" {
		table, stats, err := geo.LoadGeoNamesFile(cfg.PostalDataPath)
		if err != nil {
			logr.Fatal("failed to load postal data", zap.Error(err), zap.String("path", cfg.PostalDataPath))
		}
		postal = table
		logr.Info("postal data loaded", zap.Int("loaded", stats.Loaded), zap.Int("skipped", stats.Skipped))
	}

	jwtMgr, err := auth.NewJWTManager(cfg.JWTPrivateKeyPath, cfg.JWTPublicKeyPath, cfg.JWTIssuer)
	if err != nil {
		logr.Fatal("failed to init jwt manager", zap.Error(err))
	}

	metrics, err := observability.NewCollector(nil)
	if err != nil {
		logr.Fatal("failed to register metrics", zap.Error(err))
	}

	var rdb redis.UniversalClient
	if cfg.RedisAddress != "" {
		rdb = services.NewRedisClient(strings.Split(cfg.RedisAddress, ","), cfg.RedisPassword)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			logr.Warn("redis unreachable, candidate cache will fall through", zap.Error(err))
		}
		cancel()
		defer rdb.Close()
	}

	r := routes.NewRouter(routes.Deps{
		DB:      db,
		Config:  cfg,
		Logger:  logr,
		Postal:  postal,
		JWT:     jwtMgr,
		Metrics: metrics,
		Redis:   rdb,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logr.Info("server started", zap.String("port", cfg.Port), zap.Int("postal_codes", postal.Len()))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logr.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logr.Fatal("server forced to shutdown", zap.Error(err))
	}

	logr.Info("server exited gracefully")
}

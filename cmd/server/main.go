package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bank-marketing-service/internal/adapters/primary/http/handlers"
	"bank-marketing-service/internal/adapters/primary/http/middleware"
	"bank-marketing-service/internal/adapters/secondary/artifact"
	"bank-marketing-service/internal/adapters/secondary/model"
	"bank-marketing-service/internal/adapters/secondary/postgres"
	"bank-marketing-service/internal/config"
	"bank-marketing-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Prediction audit log (Optional - based on config)
	var recorder *services.PredictionRecorder
	var pool *pgxpool.Pool
	if cfg.Database.Enabled {
		pool, err = pgxpool.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Warnf("prediction log init failed (continuing without audit log): %v", err)
		} else if err := pool.Ping(context.Background()); err != nil {
			log.Warnf("prediction log ping failed (continuing without audit log): %v", err)
			pool.Close()
			pool = nil
		} else {
			recorder = services.NewPredictionRecorder(postgres.NewPredictionLogRepository(pool), 256)
			log.Info("prediction audit log enabled")
		}
	} else {
		log.Info("prediction audit log disabled")
	}
	if pool != nil {
		defer pool.Close()
	}
	if recorder != nil {
		defer recorder.Close()
	}

	// Secondary adapters
	resolver := artifact.NewCachedResolver(
		artifact.NewResolver(cfg.Model.FetchTimeout, cfg.Model.FetchMaxAttempts),
	)
	loader := model.NewLoader()

	// Core service
	inferenceSvc := services.NewInferenceService(resolver, loader, recorder, services.InferenceConfig{
		Locator:   cfg.Model.Locator,
		TargetDir: cfg.Model.TargetDir,
		Force:     cfg.Model.ForceResolve,
		Threshold: cfg.Model.DecisionThreshold,
	})

	// Eager model load: requests arriving before it finishes get 503
	// instead of waiting on the fetch.
	go func() {
		if err := inferenceSvc.EnsureReady(context.Background()); err != nil {
			log.WithError(err).Error("startup model load failed")
		}
	}()

	// Primary adapter
	h := handlers.New(inferenceSvc)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1")
	h.RegisterRoutes(api)

	router.GET("/healthz", h.Health)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

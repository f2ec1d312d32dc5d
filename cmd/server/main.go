package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jamesdawsonWD/scope-landing/internal/analytics"
	"github.com/jamesdawsonWD/scope-landing/internal/config"
	"github.com/jamesdawsonWD/scope-landing/internal/content"
	"github.com/jamesdawsonWD/scope-landing/internal/handler"
	"github.com/jamesdawsonWD/scope-landing/internal/middleware"
	"github.com/jamesdawsonWD/scope-landing/internal/showcase"
	"github.com/jamesdawsonWD/scope-landing/internal/waitlist"
)

func main() {
	cfg := config.Load()

	var logger *zap.Logger
	if cfg.IsDevelopment() {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("scope-landing starting",
		zap.String("listen", cfg.ListenAddr),
		zap.String("env", cfg.Env),
		zap.Bool("waitlistConfigured", cfg.LoopsAPIKey != ""),
		zap.Bool("analyticsEnabled", cfg.PostHogAPIKey != ""),
	)

	ac := analytics.NewClient(cfg.PostHogAPIKey, cfg.PostHogHost, logger)

	// A missing credential leaves the provider nil; the service decides
	// per environment what that means.
	var provider waitlist.Provider
	if cfg.LoopsAPIKey != "" {
		provider = waitlist.NewLoopsClient(cfg.LoopsAPIKey, cfg.LoopsAPIURL,
			time.Duration(cfg.WaitlistTimeoutSec)*time.Second, logger)
	}
	ws := waitlist.NewService(provider, cfg.IsDevelopment(), logger)

	engine := showcase.New(showcase.Config{
		MaxSessions: cfg.MaxSessions,
		IdleTimeout: time.Duration(cfg.SessionIdleSec) * time.Second,
	}, content.Default(), ac, logger)

	h := handler.NewHandlers(ws, engine, ac, content.Default(), logger)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recover(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Distinct-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", h.Routes())

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(ctx)

	engine.Shutdown()
	ac.Close()
}

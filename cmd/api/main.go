// Package main is the entry point for the booking API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/roamly/booking-api/internal/cache"
	"github.com/roamly/booking-api/internal/config"
	"github.com/roamly/booking-api/internal/handler"
	"github.com/roamly/booking-api/internal/middleware"
	"github.com/roamly/booking-api/internal/service"
	"github.com/roamly/booking-api/internal/source"
)

// maxBodySize caps incoming request bodies; booking and promo payloads are
// tiny, so 1 MiB leaves generous headroom.
const maxBodySize = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Data tiers -------------------------------------------------------
	// The static tier always exists; it answers every call the remote tier
	// cannot. The remote tier exists only when a backend URL is configured.
	var static *source.Static
	if cfg.DataFile != "" {
		static, err = source.NewStaticFromFile(cfg.DataFile)
	} else {
		static, err = source.NewStatic()
	}
	if err != nil {
		slog.Error("failed to load static document", "error", err)
		os.Exit(1)
	}

	var remote source.Source
	if cfg.BookingAPIURL != "" {
		remote = source.NewRemote(cfg.BookingAPIURL)
		slog.Info("booking backend configured", "url", cfg.BookingAPIURL)
	} else {
		slog.Info("no booking backend configured, running in demo mode")
	}

	// --- Cache ------------------------------------------------------------
	// Verify redis is reachable before accepting traffic; a configured but
	// dead cache address is a deployment mistake worth failing on.
	var listing service.ListingCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			slog.Error("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer client.Close()
		listing = cache.NewListing(client, cfg.CacheTTL)
		slog.Info("listing cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	}

	// --- Service & Router -------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	svc := service.NewBookingService(remote, static, listing, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))
	r.Mount("/", handler.NewServer(svc).Router())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

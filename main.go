// ABOUTME: Entry point for the airlift planner backend service
// ABOUTME: Provides an HTTP API for aircraft load allocation solves

package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/twaldron/airlift-planner/cache"
	"github.com/twaldron/airlift-planner/config"
	"github.com/twaldron/airlift-planner/handlers"
	"github.com/twaldron/airlift-planner/logger"
	"github.com/twaldron/airlift-planner/middleware"
	"github.com/twaldron/airlift-planner/profiles"
)

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting airlift planner backend")

	// Load aircraft profiles: built-ins plus any configured overrides.
	// A malformed profile file is fatal; solving against bad reference
	// data would produce garbage load plans.
	registry, err := profiles.Load(cfg.ProfilePath)
	if err != nil {
		slog.Error("Failed to load aircraft profiles", "error", err)
		os.Exit(1)
	}
	if cfg.ProfilePath != "" {
		slog.Info("Profile overrides loaded", "path", cfg.ProfilePath)
	}
	slog.Info("Aircraft profiles ready", "types", registry.Types())

	// Initialize result cache
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	results := cache.New(cacheTTL)
	slog.Info("Result cache initialized", "ttl", cacheTTL)

	// Initialize handlers
	h := handlers.NewHandler(cfg, registry, results)

	// CORS: origin whitelist when configured, otherwise open (dev mode)
	cors := middleware.CORS
	if len(cfg.CORSAllowedOrigins) > 0 {
		cors = middleware.CORSWithConfig(cfg.CORSAllowedOrigins)
		slog.Info("CORS restricted", "origins", cfg.CORSAllowedOrigins)
	} else {
		slog.Warn("CORS open to all origins, set CORS_ALLOWED_ORIGINS in production")
	}

	// Rate limiters: solver endpoints get the stricter tier. Nil
	// limiters disable enforcement.
	var solveLimiter, defaultLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		solveLimiter = middleware.NewRateLimiter(cfg.RateLimitSolve, time.Minute)
		defaultLimiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
		slog.Info("Rate limiting enabled", "solve_rpm", cfg.RateLimitSolve, "default_rpm", cfg.RateLimitDefault)
	} else {
		slog.Warn("Rate limiting disabled")
	}

	// Register routes with the shared middleware chain
	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		limiter := defaultLimiter
		if route.Heavy {
			limiter = solveLimiter
		}
		mux.HandleFunc(route.Path, middleware.Chain(route.Handler,
			middleware.LogRequest,
			middleware.Recover,
			cors,
			middleware.RateLimit(limiter, middleware.ClientIP),
		))
	}

	// Start server
	addr := ":" + cfg.Port
	slog.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

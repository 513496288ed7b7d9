package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-flowershop/api"
	"go-flowershop/api/middleware"
	"go-flowershop/internal/config"
	"go-flowershop/internal/events"
	"go-flowershop/internal/metrics"
	"go-flowershop/internal/seed"
	"go-flowershop/internal/services"
	"go-flowershop/internal/storefront"
	logx "go-flowershop/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	dotenvErr := config.LoadDotenv(".env")

	cfg, err := config.Load()
	logx.Init(logx.LoggerOpts{Environment: cfg.Environment()})
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to process environment config")
	}
	if dotenvErr != nil {
		logx.Warn().Err(dotenvErr).Msg("could not load .env file")
	}

	if cfg.Environment().IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize services
	verifier, err := services.NewMockVerifier(cfg.AdminEmail, cfg.AdminPassword, seed.Admin(), seed.DefaultUser())
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialise credential verifier")
	}
	registry := storefront.NewRegistry(seed.Default, verifier, cfg.SessionIdleTTL, cfg.SessionMax)

	var publisher events.Publisher = events.Nop{}
	if cfg.Redis.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
		rdb, err := events.NewRedisClient(ctx, cfg.Redis)
		cancel()
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to initialise Redis client")
		}
		defer rdb.Close()
		publisher = events.NewRedisPublisher(rdb, cfg.Redis.Channel)
		logx.Info().Str("channel", cfg.Redis.Channel).Msg("order events enabled")
	}

	// Setup router
	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthBurst)
	router, err := api.NewRouter(api.RouterConfig{
		Registry:       registry,
		Publisher:      publisher,
		AuthLimiter:    authLimiter,
		AuthDelay:      cfg.AuthDelay,
		TrustedProxies: cfg.TrustedProxies,
		Debug:          !cfg.Environment().IsProduction(),
	})
	if err != nil {
		logx.Fatal().Err(err).Strs("trusted_proxies", cfg.TrustedProxies).Msg("invalid trusted proxy list")
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	go sweepIdle(janitorCtx, registry, authLimiter, cfg.SessionSweepInterval, cfg.AuthLimitIdle)

	go func() {
		logx.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.Env).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logx.Info().Msg("shutting down server")
	stopJanitor()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logx.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	logx.Info().Msg("server shutdown complete")
}

// sweepIdle drops idle client sessions and rate limit buckets until ctx is
// cancelled.
func sweepIdle(ctx context.Context, registry *storefront.Registry, limiter *middleware.RateLimiter, every, limiterIdle time.Duration) {
	if every <= 0 {
		return
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := registry.Sweep(now); removed > 0 {
				logx.Debug().Int("removed", removed).Int("active", registry.Len()).Msg("idle sessions swept")
			}
			metrics.SetActiveSessions(registry.Len())
			if removed := limiter.Cleanup(limiterIdle); removed > 0 {
				logx.Debug().Int("removed", removed).Int("tracked", limiter.Len()).Msg("idle rate limit buckets swept")
			}
		}
	}
}

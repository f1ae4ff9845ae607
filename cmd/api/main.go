package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"quickcheck/internal/config"
	"quickcheck/internal/db"
	"quickcheck/internal/httpserver"
	"quickcheck/internal/logging"
	"quickcheck/internal/metrics"
	"quickcheck/internal/ratelimit"
	productrepo "quickcheck/internal/repository/product"
	productsvc "quickcheck/internal/service/product"
	"quickcheck/internal/service/qrlink"
	statussvc "quickcheck/internal/service/status"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.FromEnv()
	logger := logging.New("api", cfg.LogLevel)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to db")
	}
	defer dbpool.Close()

	if err := metrics.RegisterPgxPoolMetrics(prometheus.DefaultRegisterer, dbpool); err != nil {
		logger.Fatal().Err(err).Msg("register pool metrics")
	}

	productRepo := productrepo.NewPostgres(dbpool)
	qrGenerator, err := qrlink.New(productRepo, cfg.PublicBaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("init qr generator")
	}

	deps := httpserver.Deps{
		ProductSvc:     productsvc.New(productRepo),
		StatusSvc:      statussvc.New(productRepo),
		QRSvc:          qrGenerator,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}

	if cfg.RedisAddr != "" {
		rdb, err := ratelimit.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Fatal().Err(err).Msg("connect to redis")
		}
		defer rdb.Close()

		limiter, err := ratelimit.New(rdb, "quickcheck:status:", cfg.StatusRateLimit, cfg.StatusRateWindow)
		if err != nil {
			logger.Fatal().Err(err).Msg("init status rate limiter")
		}
		deps.StatusLimiter = limiter
	} else {
		logger.Info().Msg("REDIS_ADDR not set, public status lookups are not rate limited")
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, deps)
	if err != nil {
		logger.Fatal().Err(err).Msg("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Str("public_base_url", qrGenerator.BaseURL()).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logger.Info().Msg("server stopped")
	}
}

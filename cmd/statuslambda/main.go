package main

import (
	"context"

	"quickcheck/internal/config"
	"quickcheck/internal/db"
	"quickcheck/internal/logging"
	"quickcheck/internal/ratelimit"
	productrepo "quickcheck/internal/repository/product"
	statussvc "quickcheck/internal/service/status"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	cfg := config.FromEnv()
	logger := logging.New("statuslambda", cfg.LogLevel)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	h := &handler{
		svc:    statussvc.New(productrepo.NewPostgres(pool)),
		logger: logger,
	}

	if cfg.RedisAddr != "" {
		rdb, err := ratelimit.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Fatal().Err(err).Msg("connect redis")
		}
		defer rdb.Close()

		l, err := ratelimit.New(rdb, "quickcheck:status:", cfg.StatusRateLimit, cfg.StatusRateWindow)
		if err != nil {
			logger.Fatal().Err(err).Msg("init status rate limiter")
		}
		h.limiter = l
	}

	lambda.Start(h.handle)
}

package main

import (
	"context"

	"quickcheck/internal/config"
	"quickcheck/internal/db"
	"quickcheck/internal/logging"
	productrepo "quickcheck/internal/repository/product"
	"quickcheck/internal/seed"
	productsvc "quickcheck/internal/service/product"
)

func main() {
	cfg := config.FromEnv()
	logger := logging.New("seed", cfg.LogLevel)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	created, err := seed.Apply(ctx, productsvc.New(productrepo.NewPostgres(pool)))
	if err != nil {
		logger.Fatal().Err(err).Msg("seed apply")
	}

	logger.Info().Int("created", created).Int("total", len(seed.Products)).Msg("seed applied")
}

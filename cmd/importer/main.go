package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"quickcheck/internal/config"
	"quickcheck/internal/db"
	"quickcheck/internal/importer"
	"quickcheck/internal/logging"
	productrepo "quickcheck/internal/repository/product"
	productsvc "quickcheck/internal/service/product"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a CSV file with code,status columns")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := logging.New("importer", cfg.LogLevel)
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("open file")
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, productsvc.New(productrepo.NewPostgres(pool)))

	start := time.Now()
	stats, err := imp.Run(ctx)
	if err != nil {
		logger.Fatal().Err(err).Int("created", stats.Created).Int("updated", stats.Updated).Msg("import failed")
	}

	fmt.Printf("Imported %d products (%d created, %d updated) in %s\n",
		stats.Total(), stats.Created, stats.Updated, time.Since(start).Truncate(time.Millisecond))
}

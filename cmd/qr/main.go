package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"quickcheck/internal/config"
	"quickcheck/internal/db"
	"quickcheck/internal/domain"
	"quickcheck/internal/logging"
	productrepo "quickcheck/internal/repository/product"
	"quickcheck/internal/service/qrlink"

	"github.com/mdp/qrterminal/v3"
)

func main() {
	var (
		code    string
		outPath string
	)
	flag.StringVar(&code, "code", "", "Product code to generate a status QR code for")
	flag.StringVar(&outPath, "out", "", "Optional path to write the PNG to")
	flag.Parse()

	if code == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := logging.New("qr", cfg.LogLevel)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	gen, err := qrlink.New(productrepo.NewPostgres(pool), cfg.PublicBaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("init qr generator")
	}

	link, err := gen.Generate(ctx, code)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Product %q not found. Please add the product first.\n", code)
		os.Exit(1)
	}
	if err != nil {
		logger.Fatal().Err(err).Str("code", code).Msg("generate qr link")
	}

	qrterminal.GenerateHalfBlock(link.URL, qrterminal.L, os.Stdout)
	fmt.Printf("%s (%s)\n%s\n", link.Code, link.Status, link.URL)

	if outPath != "" {
		if err := os.WriteFile(outPath, link.PNG, 0o644); err != nil {
			logger.Fatal().Err(err).Str("path", outPath).Msg("write png")
		}
		logger.Info().Str("path", outPath).Int("bytes", len(link.PNG)).Msg("png written")
	}
}

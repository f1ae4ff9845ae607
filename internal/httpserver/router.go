package httpserver

import (
	"context"
	"errors"
	"time"

	"quickcheck/internal/domain"
	"quickcheck/internal/ratelimit"
	productsvc "quickcheck/internal/service/product"
	"quickcheck/internal/service/qrlink"
	statussvc "quickcheck/internal/service/status"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// ProductService is the administrative write and read surface.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, code string) (*domain.Product, error)
	Create(ctx context.Context, code, status string) (*domain.Product, error)
	Update(ctx context.Context, code, status string) (*domain.Product, error)
	Delete(ctx context.Context, code string) error
	Upsert(ctx context.Context, code, status string) (*productsvc.UpsertResult, error)
}

// StatusService backs the public status check.
type StatusService interface {
	Lookup(ctx context.Context, code string) (*statussvc.View, error)
}

// QRService mints QR links for existing products.
type QRService interface {
	Generate(ctx context.Context, code string) (*qrlink.Link, error)
}

// RateLimiter throttles the public status route. Optional.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Decision, error)
}

// Deps groups the services the router dispatches to.
type Deps struct {
	ProductSvc     ProductService
	StatusSvc      StatusService
	QRSvc          QRService
	StatusLimiter  RateLimiter
	AllowedOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger zerolog.Logger, db Pinger, deps Deps) (*gin.Engine, error) {
	if deps.ProductSvc == nil || deps.StatusSvc == nil || deps.QRSvc == nil {
		return nil, errors.New("httpserver: product, status and qr services are required")
	}
	if err := registerValidators(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestIDMiddleware(), accessLogMiddleware(logger), metricsMiddleware(), gin.Recovery())
	router.Use(cors.New(corsConfig(deps.AllowedOrigins)))

	router.GET("/", rootHandler)
	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.GET("/statuses", listStatusesHandler)

	products := api.Group("/products")
	products.GET("", listProductsHandler(deps.ProductSvc))
	products.POST("", createProductHandler(deps.ProductSvc))
	products.GET("/:code", getProductHandler(deps.ProductSvc))
	products.PUT("/:code", updateProductHandler(deps.ProductSvc))
	products.DELETE("/:code", deleteProductHandler(deps.ProductSvc))
	products.PUT("/:code/upsert", upsertProductHandler(deps.ProductSvc))
	products.GET("/:code/qr", qrHandler(deps.QRSvc))

	status := api.Group("/status")
	if deps.StatusLimiter != nil {
		status.Use(rateLimitMiddleware(deps.StatusLimiter, logger))
	}
	status.GET("/:code", statusLookupHandler(deps.StatusSvc))

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader, "Retry-After", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

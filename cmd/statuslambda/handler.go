package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"quickcheck/internal/domain"
	"quickcheck/internal/ratelimit"
	statussvc "quickcheck/internal/service/status"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"
)

type statusLookup interface {
	Lookup(ctx context.Context, code string) (*statussvc.View, error)
}

type limiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Decision, error)
}

// handler serves the public status lookup behind API Gateway.
type handler struct {
	svc     statusLookup
	limiter limiter
	logger  zerolog.Logger
}

func (h *handler) handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	code := req.PathParameters["code"]
	if code == "" {
		return jsonResponse(http.StatusBadRequest, map[string]string{"error": "product code is required"}, nil), nil
	}

	if h.limiter != nil {
		decision, err := h.limiter.Allow(ctx, req.RequestContext.Identity.SourceIP)
		switch {
		case err != nil:
			h.logger.Warn().Err(err).Str("request_id", req.RequestContext.RequestID).Msg("rate limiter unavailable, allowing request")
		case !decision.Allowed:
			seconds := int(decision.RetryAfter.Round(time.Second) / time.Second)
			if seconds < 1 {
				seconds = 1
			}
			return jsonResponse(http.StatusTooManyRequests,
				map[string]string{"error": "Too many status lookups, please try again later"},
				map[string]string{"Retry-After": strconv.Itoa(seconds)}), nil
		}
	}

	view, err := h.svc.Lookup(ctx, code)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return jsonResponse(http.StatusNotFound, map[string]string{
			"error":   "Product not found",
			"code":    code,
			"message": "The product code you entered was not found in our system",
		}, nil), nil
	case err != nil:
		h.logger.Error().Err(err).Str("code", code).Str("request_id", req.RequestContext.RequestID).Msg("status lookup failed")
		return jsonResponse(http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve product status"}, nil), nil
	}

	return jsonResponse(http.StatusOK, map[string]any{"data": view}, nil), nil
}

func jsonResponse(status int, body any, extra map[string]string) events.APIGatewayProxyResponse {
	headers := map[string]string{
		"Content-Type":  "application/json",
		"Cache-Control": "no-store",
	}
	for k, v := range extra {
		headers[k] = v
	}
	payload, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		payload = []byte(`{"error":"Failed to format response"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(payload),
	}
}

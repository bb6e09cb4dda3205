package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/goliatone/go-pairfinder/internal/config"
	"github.com/goliatone/go-pairfinder/pkg/pairing"
)

// ContextKeyRequestID stores the request id on the echo context.
const ContextKeyRequestID = "request_id"

// RequestID injects an identifier for traceability if the caller did not
// provide one, and forwards it to outbound pairing requests.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(pairing.RequestIDHeader)
			if rid == "" {
				rid = uuid.NewString()
			}

			c.Set(ContextKeyRequestID, rid)
			c.Response().Header().Set(pairing.RequestIDHeader, rid)
			req := c.Request()
			c.SetRequest(req.WithContext(pairing.ContextWithRequestID(req.Context(), rid)))

			return next(c)
		}
	}
}

// RequestIDFromContext extracts the request identifier if available.
func RequestIDFromContext(c echo.Context) string {
	if val, ok := c.Get(ContextKeyRequestID).(string); ok {
		return val
	}
	return ""
}

// Logging writes one structured line per request.
func Logging(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			fields := []zap.Field{
				zap.String("request_id", RequestIDFromContext(c)),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
			}
			switch {
			case status >= 500:
				logger.Error("request failed", fields...)
			case status >= 400:
				logger.Warn("request rejected", fields...)
			default:
				logger.Info("request completed", fields...)
			}
			return nil
		}
	}
}

// SearchRateLimiter applies a token bucket to search submissions. Requests
// accepted by skipper bypass the bucket. Requests over the limit are answered
// by onLimit.
func SearchRateLimiter(cfg config.RateLimitConfig, skipper echoMiddleware.Skipper, onLimit echo.HandlerFunc) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	limiter := rate.NewLimiter(rate.Every(perRequest), cfg.Requests)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper != nil && skipper(c) {
				return next(c)
			}
			if !limiter.Allow() {
				if onLimit != nil {
					return onLimit(c)
				}
				return c.JSON(http.StatusTooManyRequests, pairing.ErrorPayload{Error: "rate limit exceeded"})
			}
			return next(c)
		}
	}
}

// Package context carries per-request values shared by middleware, handlers
// and the layers below them.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID carries the request ID in both directions.
const HeaderXRequestID = "X-Request-Id"

// Keys on echo.Context.
const (
	echoKeyRequestID   = "request_id"
	echoKeyAPIVersion  = "api_version"
	echoKeyExposeDebug = "expose_debug"
)

type ctxKey int

// Keys on context.Context.
const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyLogger
)

// Bind makes requestID and a logger tagged with it visible to the handler
// and to everything it passes the request context to.
func Bind(c echo.Context, requestID string, logger *slog.Logger) {
	SetRequestID(c, requestID)

	reqLogger := logger.With(slog.String("request_id", requestID))
	ctx := WithLogger(WithRequestID(c.Request().Context(), requestID), reqLogger)
	c.SetRequest(c.Request().WithContext(ctx))
}

// RequestID returns the request ID of c. A request that reached no request ID
// middleware gets one generated here so all its envelopes agree.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	SetRequestID(c, id)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// RequestIDFrom returns the request ID carried by ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// LoggerFrom returns the request-scoped logger of ctx, or fallback.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(ctxKeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger, logger)
}

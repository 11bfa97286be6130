package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"envelope/internal/delivery/api/response"
	deliverycontext "envelope/internal/delivery/context"
	"envelope/internal/domain/code"
	domainerrors "envelope/internal/domain/errors"
	"envelope/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const readinessTimeout = 2 * time.Second

// HealthStatus is the body of a health check
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Checkers []service.HealthChecker `group:"health_checkers"`
	Logger   *slog.Logger
}

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	checkers []service.HealthChecker
	logger   *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{checkers: params.Checkers, logger: params.Logger}
}

// Live reports that the process is up.
func (h *HealthHandler) Live(c echo.Context) error {
	return response.Success(c, HealthStatus{Status: "ok"})
}

// Ready pings every dependency. A failed dependency turns the probe into
// SERVICE_UNAVAILABLE naming the failing checks.
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	checks := make(map[string]string, len(h.checkers))
	var failed []domainerrors.FieldError
	for _, checker := range h.checkers {
		if err := checker.Check(ctx); err != nil {
			deliverycontext.LoggerFrom(c.Request().Context(), h.logger).Warn("Readiness check failed",
				slog.String("check", checker.Name()),
				slog.Any("error", err),
			)
			failed = append(failed, domainerrors.FieldError{Field: checker.Name(), Message: checker.Name() + " is unreachable"})

			continue
		}
		checks[checker.Name()] = "ok"
	}

	// Probes key on the transport status, so this answers 503 rather than the category 500
	if len(failed) > 0 {
		return response.Fail(c, http.StatusServiceUnavailable, code.ServiceUnavailable, "", "", failed...)
	}

	return response.Success(c, HealthStatus{Status: "ready", Checks: checks})
}

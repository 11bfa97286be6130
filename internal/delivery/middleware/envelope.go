package middleware

import (
	"envelope/config"
	deliverycontext "envelope/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// EnvelopeMiddleware stamps the per-deployment envelope settings onto each request
type EnvelopeMiddleware struct {
	version     string
	exposeDebug bool
}

// NewEnvelopeMiddleware creates a new envelope middleware
func NewEnvelopeMiddleware(cfg *config.Config) *EnvelopeMiddleware {
	m := &EnvelopeMiddleware{exposeDebug: cfg.Env.Debug}
	if cfg.Response != nil {
		m.version = cfg.Response.Version
	}

	return m
}

// Process stores the API version and debug exposure flag on the echo context
func (m *EnvelopeMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deliverycontext.SetAPIVersion(c, m.version)
		deliverycontext.SetExposeDebug(c, m.exposeDebug)

		return next(c)
	}
}

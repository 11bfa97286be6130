package service

import "context"

// HealthChecker reports whether a backing dependency can serve requests.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

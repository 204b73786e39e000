package health

import "context"

// CachePinger checks embedding cache store availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// ModelChecker checks remote model provider availability.
type ModelChecker interface {
	HealthCheck(ctx context.Context) error
}

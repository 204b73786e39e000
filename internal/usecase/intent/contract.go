package intent

import (
	"context"

	"github.com/kailas-cloud/shopbot/internal/domain"
)

// Matcher ranks catalog products by semantic similarity to a query.
type Matcher interface {
	FindSimilar(ctx context.Context, query string, topK int) ([]domain.SemanticMatch, error)
}

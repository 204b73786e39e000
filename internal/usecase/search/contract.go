package search

import (
	"context"

	"github.com/kailas-cloud/shopbot/internal/domain"
)

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// Catalog provides the immutable product list and its content identity.
type Catalog interface {
	Products() []domain.Product
	Fingerprint() string
}

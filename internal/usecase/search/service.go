package search

import (
	"context"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopbot/internal/domain"
)

// Service ranks catalog entries by cosine similarity against a free-text query.
type Service struct {
	embed   Embedder
	catalog Catalog
	cache   *VectorCache
	logger  *zap.Logger
}

// New creates a semantic matcher over the given catalog.
func New(embed Embedder, catalog Catalog, cache *VectorCache, logger *zap.Logger) *Service {
	return &Service{embed: embed, catalog: catalog, cache: cache, logger: logger}
}

// FindSimilar returns up to topK catalog entries ranked by descending cosine
// similarity to the query. Ties keep the original catalog order. Catalog
// vectors are built once and reused; only the query vector is recomputed per
// call. A query embedding failure is fatal to this call and is surfaced to
// the caller.
func (s *Service) FindSimilar(ctx context.Context, query string, topK int) ([]domain.SemanticMatch, error) {
	if topK <= 0 {
		return nil, nil
	}

	vectors, err := s.cache.Populate(ctx, s.catalog.Fingerprint(), s.buildVectors)
	if err != nil {
		return nil, fmt.Errorf("populate vector cache: %w", err)
	}
	if len(vectors) == 0 {
		return nil, nil
	}

	queryResult, err := s.embed.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w", err)
	}

	matches := make([]domain.SemanticMatch, len(vectors))
	for i, pv := range vectors {
		matches[i] = domain.SemanticMatch{
			Product:         pv.product,
			SimilarityScore: cosineSimilarity(queryResult.Embedding, pv.vector),
		}
	}

	// Stable: equal scores preserve catalog order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].SimilarityScore > matches[j].SimilarityScore
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// buildVectors embeds every catalog entry, concatenating name and description.
// Entries whose embedding call fails are skipped, not fatal to the batch.
func (s *Service) buildVectors(ctx context.Context) ([]productVector, error) {
	products := s.catalog.Products()
	vectors := make([]productVector, 0, len(products))

	for _, p := range products {
		text := p.Name + " " + p.Description
		result, err := s.embed.Embed(ctx, text)
		if err != nil {
			s.logger.Warn("Failed to embed catalog product",
				zap.String("product_id", p.ID),
				zap.Error(err),
			)
			continue
		}
		vectors = append(vectors, productVector{product: p, vector: result.Embedding})
	}

	return vectors, nil
}

// cosineSimilarity computes dot(a,b) / (||a||*||b||).
// Mismatched lengths or zero-magnitude vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

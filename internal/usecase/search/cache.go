package search

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/kailas-cloud/shopbot/internal/domain"
)

// State describes the vector cache lifecycle.
type State int

const (
	// Empty means no catalog vectors have been built yet.
	Empty State = iota
	// Populating means a population round is in flight.
	Populating
	// Ready means catalog vectors are available for reads.
	Ready
)

// productVector pairs a catalog entry with its embedding.
type productVector struct {
	product domain.Product
	vector  []float32
}

// VectorCache holds catalog embeddings, built lazily on the first semantic
// query. Reads are safe for concurrent use; population is single-flight, so
// concurrent first queries share one round and never observe a cache built
// for a different catalog mid-write.
type VectorCache struct {
	mu          sync.RWMutex
	state       State
	fingerprint string
	vectors     []productVector

	group singleflight.Group
}

// NewVectorCache creates an empty cache.
func NewVectorCache() *VectorCache {
	return &VectorCache{}
}

// State returns the current lifecycle state.
func (c *VectorCache) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// snapshot returns the cached vectors when Ready for the given catalog identity.
func (c *VectorCache) snapshot(fingerprint string) ([]productVector, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state == Ready && c.fingerprint == fingerprint {
		return c.vectors, true
	}
	return nil, false
}

// Populate returns the cached vectors for the catalog identified by
// fingerprint, building them via build if needed. Repeated calls while Ready
// are no-ops; concurrent callers await the same in-flight round.
func (c *VectorCache) Populate(
	ctx context.Context,
	fingerprint string,
	build func(ctx context.Context) ([]productVector, error),
) ([]productVector, error) {
	if vectors, ok := c.snapshot(fingerprint); ok {
		return vectors, nil
	}

	v, err, _ := c.group.Do(fingerprint, func() (any, error) {
		// Re-check under the flight: a previous round may have finished.
		if vectors, ok := c.snapshot(fingerprint); ok {
			return vectors, nil
		}

		c.setState(Populating)

		vectors, err := build(ctx)
		if err != nil {
			c.setState(Empty)
			return nil, fmt.Errorf("build catalog vectors: %w", err)
		}

		c.mu.Lock()
		c.state = Ready
		c.fingerprint = fingerprint
		c.vectors = vectors
		c.mu.Unlock()

		return vectors, nil
	})
	if err != nil {
		return nil, err
	}

	vectors, ok := v.([]productVector)
	if !ok {
		return nil, fmt.Errorf("unexpected cache payload type %T", v)
	}
	return vectors, nil
}

// Reset clears the cache. The next semantic query repopulates it.
func (c *VectorCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Empty
	c.fingerprint = ""
	c.vectors = nil
}

func (c *VectorCache) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kailas-cloud/shopbot/internal/domain"
)

// Catalog is the immutable product list loaded once at process start.
type Catalog struct {
	products    []domain.Product
	fingerprint string
}

// Load reads the product catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a catalog from raw JSON bytes.
func Parse(data []byte) (*Catalog, error) {
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog product %q has no id", p.Name)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog product id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	h := sha256.Sum256(data)
	return &Catalog{
		products:    products,
		fingerprint: hex.EncodeToString(h[:]),
	}, nil
}

// Products returns the catalog entries in load order. Callers must not mutate.
func (c *Catalog) Products() []domain.Product {
	return c.products
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Fingerprint identifies the loaded catalog content. Vector caches keyed by
// this value survive only as long as the same catalog is in use.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

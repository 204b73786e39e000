package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleJSON = `[
	{"id": "p1", "name": "Air Runner", "category": "sneakers", "price": 89.99, "description": "Running shoes"},
	{"id": "p2", "name": "Oxford Noir", "category": "formal", "price": 149.99, "description": "Dress shoes"}
]`

func TestParse_Valid(t *testing.T) {
	cat, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("len = %d, want 2", cat.Len())
	}
	products := cat.Products()
	if products[0].ID != "p1" || products[1].ID != "p2" {
		t.Errorf("load order not preserved: %s, %s", products[0].ID, products[1].ID)
	}
	if products[0].Price != 89.99 {
		t.Errorf("price = %v, want 89.99", products[0].Price)
	}
	if cat.Fingerprint() == "" {
		t.Error("fingerprint must be set")
	}
}

func TestParse_FingerprintTracksContent(t *testing.T) {
	a, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("same content must produce the same fingerprint")
	}

	changed := strings.Replace(sampleJSON, "89.99", "79.99", 1)
	c, err := Parse([]byte(changed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("changed content must produce a different fingerprint")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "nope"},
		{"empty list", "[]"},
		{"missing id", `[{"name": "NoID", "category": "sneakers", "price": 1}]`},
		{"duplicate id", `[{"id": "p1", "name": "A"}, {"id": "p1", "name": "B"}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("len = %d, want 2", cat.Len())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

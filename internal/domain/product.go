package domain

// Product is a single catalog entry. The catalog is loaded once at startup
// and is immutable for the process lifetime.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// SemanticMatch pairs a product with its cosine similarity to a query.
// Matches are informational only and never gate filtering.
type SemanticMatch struct {
	Product         Product `json:"product"`
	SimilarityScore float64 `json:"similarityScore"`
}

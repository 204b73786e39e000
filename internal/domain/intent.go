package domain

// Intent is the structured representation of a shopping request extracted
// from a free-text message. Absent fields mean "do not constrain on this
// dimension": an empty string is no constraint, a nil price bound is
// unbounded on that side. A bound of 0 is a valid bound, distinct from nil.
type Intent struct {
	Category        string          `json:"category,omitempty"`
	PriceRange      PriceRange      `json:"priceRange"`
	Filters         Filters         `json:"filters"`
	SemanticMatches []SemanticMatch `json:"semanticMatches,omitempty"`
}

// PriceRange holds optional price bounds. Either side may be nil (unbounded).
type PriceRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// Filters holds optional attribute constraints, each resolved against a
// synonym table at filter time.
type Filters struct {
	Purpose  string `json:"purpose,omitempty"`
	AgeGroup string `json:"age_group,omitempty"`
	Style    string `json:"style,omitempty"`
}

// DegradedIntent returns the safe fallback used when extraction fails:
// every field absent, so filtering falls through to the full catalog.
func DegradedIntent() Intent {
	return Intent{}
}

// HasPriceRange reports whether at least one price bound is set.
func (i Intent) HasPriceRange() bool {
	return i.PriceRange.Min != nil || i.PriceRange.Max != nil
}

package filter

import (
	"strings"

	"github.com/kailas-cloud/shopbot/internal/domain"
)

// Service applies an extracted intent as a deterministic predicate over the
// catalog. It never ranks: semantic scores are informational only and do not
// gate inclusion.
type Service struct{}

// New creates a filter service.
func New() *Service {
	return &Service{}
}

// Filter returns the order-preserving subsequence of products matching the
// intent. Every sub-check defaults to match when the corresponding intent
// field is absent, so a fully degraded intent returns the entire catalog.
func (s *Service) Filter(products []domain.Product, intent domain.Intent) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, intent) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func matches(p domain.Product, intent domain.Intent) bool {
	return matchesCategory(p, intent.Category) &&
		matchesPrice(p, intent.PriceRange) &&
		matchesPurpose(p, intent.Filters.Purpose) &&
		matchesAgeGroup(p, intent.Filters.AgeGroup) &&
		matchesStyle(p, intent.Filters.Style)
}

// matchesCategory requires exact case-insensitive equality.
func matchesCategory(p domain.Product, category string) bool {
	if category == "" {
		return true
	}
	return strings.EqualFold(p.Category, category)
}

// matchesPrice checks containment in [min, max]. A nil bound is unbounded on
// that side; a bound of 0 is a real bound.
func matchesPrice(p domain.Product, pr domain.PriceRange) bool {
	if pr.Min != nil && p.Price < *pr.Min {
		return false
	}
	if pr.Max != nil && p.Price > *pr.Max {
		return false
	}
	return true
}

// matchesPurpose matches any purpose synonym against name or category.
func matchesPurpose(p domain.Product, purpose string) bool {
	if purpose == "" {
		return true
	}
	haystack := strings.ToLower(p.Name) + " " + strings.ToLower(p.Category)
	return containsAny(haystack, resolve(purposeSynonyms, strings.ToLower(purpose)))
}

// matchesAgeGroup matches any age-group synonym against the product name.
func matchesAgeGroup(p domain.Product, ageGroup string) bool {
	if ageGroup == "" {
		return true
	}
	return containsAny(strings.ToLower(p.Name), resolve(ageGroupSynonyms, strings.ToLower(ageGroup)))
}

// matchesStyle matches any style synonym against the product name.
func matchesStyle(p domain.Product, style string) bool {
	if style == "" {
		return true
	}
	return containsAny(strings.ToLower(p.Name), resolve(styleSynonyms, strings.ToLower(style)))
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// Package engine derives the visible, ordered product subset from the
// full catalog and the current filter/sort criteria. It is pure: it
// never mutates its inputs and holds no state, so every handler
// recomputes on demand instead of caching derived lists.
package engine

import (
	"sort"
	"strings"

	"github.com/Verve-Commerce/verve-storefront-backend/models"
)

// Derive returns the products satisfying every active criterion, ordered
// by the sort key. Filtering is conjunctive across dimensions and
// disjunctive within a multi-select dimension (category, brand). The
// input slice is left untouched; the result is always a fresh slice.
func Derive(products []models.Product, criteria models.FilterCriteria, key models.SortKey) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(p, criteria) {
			result = append(result, p)
		}
	}
	sortProducts(result, key)
	return result
}

func matches(p models.Product, c models.FilterCriteria) bool {
	return matchesQuery(p, c.Query) &&
		matchesSet(p.Category, c.Categories) &&
		matchesSet(p.Brand, c.Brands) &&
		matchesPrice(p, c.MinPrice, c.MaxPrice) &&
		p.Rating >= c.MinRating
}

// matchesQuery is a case-insensitive substring match against the product
// name. An empty term matches everything.
func matchesQuery(p models.Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(query))
}

// matchesSet passes when no values are selected, or when the product's
// value is one of the selected ones.
func matchesSet(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// matchesPrice checks the inclusive [min,max] interval. A nil bound is
// unbounded on that end.
func matchesPrice(p models.Product, min, max *float64) bool {
	if min != nil && p.Price < *min {
		return false
	}
	if max != nil && p.Price > *max {
		return false
	}
	return true
}

// sortProducts applies a stable ordering in place. Relevance keeps the
// filtered (catalog) order.
func sortProducts(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case models.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
}

package models

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortRating    SortKey = "rating_desc"
)

// ParseSortKey maps a query value onto a known sort key.
// Unknown values fall back to relevance (catalog order).
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortRating:
		return SortKey(s)
	default:
		return SortRelevance
	}
}

// FilterCriteria is the conjunctive filter applied to the catalog.
// Every field is optional; the zero value matches all products.
type FilterCriteria struct {
	Query      string   `json:"q"`
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	MinPrice   *float64 `json:"min_price"`
	MaxPrice   *float64 `json:"max_price"`
	MinRating  float64  `json:"min_rating"`
}

// ═══════════════════════════════════════════════════════════
// Facet metadata (populates the storefront filter controls)
// ═══════════════════════════════════════════════════════════

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Categories   []string          `json:"categories"`
	Brands       []string          `json:"brands"`
	PriceRange   *PriceRangeData   `json:"priceRange"`
	Availability *AvailabilityData `json:"availability"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// PriceRangeData represents the minimum and maximum price in the store
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

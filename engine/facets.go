package engine

import (
	"sort"

	"github.com/Verve-Commerce/verve-storefront-backend/models"
)

// Categories returns the distinct category values present in the
// catalog, each exactly once, sorted for a stable payload.
func Categories(products []models.Product) []string {
	return distinct(products, func(p models.Product) string { return p.Category })
}

// Brands returns the distinct brand values, each exactly once.
func Brands(products []models.Product) []string {
	return distinct(products, func(p models.Product) string { return p.Brand })
}

func distinct(products []models.Product, field func(models.Product) string) []string {
	seen := make(map[string]struct{}, len(products))
	values := make([]string, 0, len(products))
	for _, p := range products {
		v := field(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// PriceBounds returns the min and max price across the catalog. An empty
// catalog yields a nil range.
func PriceBounds(products []models.Product) *models.PriceRangeData {
	if len(products) == 0 {
		return nil
	}
	bounds := &models.PriceRangeData{Min: products[0].Price, Max: products[0].Price}
	for _, p := range products[1:] {
		if p.Price < bounds.Min {
			bounds.Min = p.Price
		}
		if p.Price > bounds.Max {
			bounds.Max = p.Price
		}
	}
	return bounds
}

// Availability counts products with stock left vs sold out.
func Availability(products []models.Product) *models.AvailabilityData {
	data := &models.AvailabilityData{}
	for _, p := range products {
		if p.InStock() {
			data.InStock++
		} else {
			data.OutOfStock++
		}
	}
	return data
}

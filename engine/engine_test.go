package engine

import (
	"testing"

	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func sampleCatalog() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Wireless Headphones", Price: 10, Rating: 3, Category: "Audio", Brand: "Nordwave", Stock: 5},
		{ID: "p2", Name: "Studio Monitor", Price: 50, Rating: 5, Category: "Audio", Brand: "Kline", Stock: 0},
		{ID: "p3", Name: "Desk Lamp", Price: 5, Rating: 4, Category: "Home", Brand: "Nordwave", Stock: 12},
	}
}

func TestDeriveNoCriteriaPriceAsc(t *testing.T) {
	out := Derive(sampleCatalog(), models.FilterCriteria{}, models.SortPriceAsc)

	require.Len(t, out, 3)
	assert.Equal(t, []float64{5, 10, 50}, []float64{out[0].Price, out[1].Price, out[2].Price})
}

func TestDerivePriceDescNonIncreasing(t *testing.T) {
	out := Derive(sampleCatalog(), models.FilterCriteria{}, models.SortPriceDesc)

	require.Len(t, out, 3)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Price, out[i].Price)
	}
}

func TestDeriveRatingDescNonIncreasing(t *testing.T) {
	out := Derive(sampleCatalog(), models.FilterCriteria{}, models.SortRating)

	require.Len(t, out, 3)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Rating, out[i].Rating)
	}
}

func TestDeriveMinRatingKeepsRelativeOrder(t *testing.T) {
	out := Derive(sampleCatalog(), models.FilterCriteria{MinRating: 4}, models.SortRelevance)

	// Only the two products rated >= 4 survive, in catalog order.
	require.Len(t, out, 2)
	assert.Equal(t, "p2", out[0].ID)
	assert.Equal(t, "p3", out[1].ID)
}

func TestDeriveSearchCaseInsensitive(t *testing.T) {
	out := Derive(sampleCatalog(), models.FilterCriteria{Query: "wIrElEsS"}, models.SortRelevance)

	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)
}

func TestDeriveEmptyQueryMatchesAll(t *testing.T) {
	out := Derive(sampleCatalog(), models.FilterCriteria{Query: ""}, models.SortRelevance)
	assert.Len(t, out, 3)
}

func TestDeriveCategoryIsDisjunctiveWithinSet(t *testing.T) {
	out := Derive(sampleCatalog(), models.FilterCriteria{Categories: []string{"Audio", "Home"}}, models.SortRelevance)
	assert.Len(t, out, 3)

	out = Derive(sampleCatalog(), models.FilterCriteria{Categories: []string{"Home"}}, models.SortRelevance)
	require.Len(t, out, 1)
	assert.Equal(t, "p3", out[0].ID)
}

func TestDeriveBrandFilter(t *testing.T) {
	out := Derive(sampleCatalog(), models.FilterCriteria{Brands: []string{"Nordwave"}}, models.SortRelevance)

	require.Len(t, out, 2)
	assert.Equal(t, "p1", out[0].ID)
	assert.Equal(t, "p3", out[1].ID)
}

func TestDerivePriceIntervalInclusive(t *testing.T) {
	criteria := models.FilterCriteria{MinPrice: floatPtr(5), MaxPrice: floatPtr(10)}
	out := Derive(sampleCatalog(), criteria, models.SortPriceAsc)

	require.Len(t, out, 2)
	assert.Equal(t, 5.0, out[0].Price)
	assert.Equal(t, 10.0, out[1].Price)
}

func TestDeriveUnboundedMaxPrice(t *testing.T) {
	criteria := models.FilterCriteria{MinPrice: floatPtr(10)}
	out := Derive(sampleCatalog(), criteria, models.SortPriceAsc)

	require.Len(t, out, 2)
	assert.Equal(t, 50.0, out[1].Price)
}

func TestDeriveConjunctionAcrossDimensions(t *testing.T) {
	criteria := models.FilterCriteria{
		Categories: []string{"Audio"},
		MinRating:  4,
	}
	out := Derive(sampleCatalog(), criteria, models.SortRelevance)

	require.Len(t, out, 1)
	assert.Equal(t, "p2", out[0].ID)
}

func TestDeriveEverySurvivorSatisfiesAllPredicates(t *testing.T) {
	products := sampleCatalog()
	criteria := models.FilterCriteria{
		Query:      "o", // matches all three names
		Categories: []string{"Audio"},
		Brands:     []string{"Nordwave", "Kline"},
		MinPrice:   floatPtr(1),
		MaxPrice:   floatPtr(100),
		MinRating:  3,
	}
	out := Derive(products, criteria, models.SortRelevance)

	kept := make(map[string]bool, len(out))
	for _, p := range out {
		kept[p.ID] = true
		assert.True(t, matches(p, criteria))
	}
	// Every excluded product fails at least one predicate.
	for _, p := range products {
		if !kept[p.ID] {
			assert.False(t, matches(p, criteria))
		}
	}
}

func TestDeriveIsPureAndIdempotent(t *testing.T) {
	products := sampleCatalog()
	original := sampleCatalog()
	criteria := models.FilterCriteria{MinRating: 4}

	first := Derive(products, criteria, models.SortPriceAsc)
	second := Derive(products, criteria, models.SortPriceAsc)

	assert.Equal(t, first, second)
	// Source list untouched, including order.
	assert.Equal(t, original, products)
}

func TestDeriveRelevanceSortIsStableForEqualKeys(t *testing.T) {
	products := []models.Product{
		{ID: "a", Price: 20, Rating: 4},
		{ID: "b", Price: 20, Rating: 4},
		{ID: "c", Price: 20, Rating: 4},
	}
	out := Derive(products, models.FilterCriteria{}, models.SortPriceAsc)

	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
}

func TestDeriveEmptyResultIsNotNil(t *testing.T) {
	out := Derive(sampleCatalog(), models.FilterCriteria{Query: "no such product"}, models.SortRelevance)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

package engine

import (
	"testing"

	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesDistinctDespiteDuplicates(t *testing.T) {
	products := []models.Product{
		{ID: "1", Category: "Audio", Brand: "Kline"},
		{ID: "2", Category: "Audio", Brand: "Kline"},
		{ID: "3", Category: "Home", Brand: "Nordwave"},
		{ID: "4", Category: "Audio", Brand: "Nordwave"},
	}

	assert.Equal(t, []string{"Audio", "Home"}, Categories(products))
	assert.Equal(t, []string{"Kline", "Nordwave"}, Brands(products))
}

func TestFacetsSkipEmptyValues(t *testing.T) {
	products := []models.Product{
		{ID: "1", Category: "", Brand: "Kline"},
		{ID: "2", Category: "Home", Brand: ""},
	}

	assert.Equal(t, []string{"Home"}, Categories(products))
	assert.Equal(t, []string{"Kline"}, Brands(products))
}

func TestPriceBounds(t *testing.T) {
	products := []models.Product{
		{ID: "1", Price: 10},
		{ID: "2", Price: 50},
		{ID: "3", Price: 5},
	}

	bounds := PriceBounds(products)
	require.NotNil(t, bounds)
	assert.Equal(t, 5.0, bounds.Min)
	assert.Equal(t, 50.0, bounds.Max)

	assert.Nil(t, PriceBounds(nil))
}

func TestAvailabilityCounts(t *testing.T) {
	products := []models.Product{
		{ID: "1", Stock: 3},
		{ID: "2", Stock: 0},
		{ID: "3", Stock: 1},
	}

	data := Availability(products)
	assert.Equal(t, 2, data.InStock)
	assert.Equal(t, 1, data.OutOfStock)
}

package cache

import (
	"testing"

	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStartsLoading(t *testing.T) {
	ResetCatalog()
	t.Cleanup(ResetCatalog)

	state, errMsg, count := CatalogStatus()
	assert.Equal(t, models.CatalogLoading, state)
	assert.Empty(t, errMsg)
	assert.Zero(t, count)
}

func TestBeginCatalogLoadRefusesWhileInFlight(t *testing.T) {
	ResetCatalog()
	t.Cleanup(ResetCatalog)

	require.True(t, BeginCatalogLoad())
	assert.False(t, BeginCatalogLoad())
}

func TestBeginCatalogLoadRefusesAfterPopulated(t *testing.T) {
	ResetCatalog()
	t.Cleanup(ResetCatalog)

	require.True(t, BeginCatalogLoad())
	CompleteCatalogLoad([]models.Product{{ID: "p1", Name: "Desk Lamp"}})

	assert.False(t, BeginCatalogLoad())

	products, state, _ := CatalogSnapshot()
	assert.Equal(t, models.CatalogReady, state)
	assert.Len(t, products, 1)
}

func TestFailedLoadIsTerminalErrorState(t *testing.T) {
	ResetCatalog()
	t.Cleanup(ResetCatalog)

	require.True(t, BeginCatalogLoad())
	FailCatalogLoad("Unable to load products. Please try again later.")

	products, state, errMsg := CatalogSnapshot()
	assert.Equal(t, models.CatalogError, state)
	assert.Equal(t, "Unable to load products. Please try again later.", errMsg)
	assert.Empty(t, products)

	// The error is terminal: no new load may begin and the state sticks.
	assert.False(t, BeginCatalogLoad())
	_, state, _ = CatalogSnapshot()
	assert.Equal(t, models.CatalogError, state)
}

func TestCompletionAfterResetIsDropped(t *testing.T) {
	ResetCatalog()
	t.Cleanup(ResetCatalog)

	require.True(t, BeginCatalogLoad())
	ResetCatalog()

	CompleteCatalogLoad([]models.Product{{ID: "p1"}})

	state, _, count := CatalogStatus()
	assert.Equal(t, models.CatalogLoading, state)
	assert.Zero(t, count)
}

func TestFailureAfterResetIsDropped(t *testing.T) {
	ResetCatalog()
	t.Cleanup(ResetCatalog)

	require.True(t, BeginCatalogLoad())
	ResetCatalog()

	FailCatalogLoad("too late")

	state, errMsg, _ := CatalogStatus()
	assert.Equal(t, models.CatalogLoading, state)
	assert.Empty(t, errMsg)
}

func TestCatalogSnapshotReturnsCopy(t *testing.T) {
	ResetCatalog()
	t.Cleanup(ResetCatalog)

	require.True(t, BeginCatalogLoad())
	CompleteCatalogLoad([]models.Product{{ID: "p1", Name: "Desk Lamp"}})

	products, _, _ := CatalogSnapshot()
	products[0].Name = "mutated"

	fresh, _, _ := CatalogSnapshot()
	assert.Equal(t, "Desk Lamp", fresh[0].Name)
}

func TestAdminCatalogMutations(t *testing.T) {
	ResetCatalog()
	t.Cleanup(ResetCatalog)

	require.True(t, BeginCatalogLoad())
	CompleteCatalogLoad([]models.Product{{ID: "p1", Name: "Desk Lamp", Price: 5}})

	AddProduct(models.Product{ID: "p2", Name: "Monitor", Price: 50})
	assert.True(t, UpdateProduct(models.Product{ID: "p1", Name: "Desk Lamp v2", Price: 6}))
	assert.False(t, UpdateProduct(models.Product{ID: "missing"}))

	p, found := GetProduct("p1")
	require.True(t, found)
	assert.Equal(t, "Desk Lamp v2", p.Name)

	IncrementProductViews("p2")
	IncrementProductViews("p2")
	p2, _ := GetProduct("p2")
	assert.Equal(t, 2, p2.Views)

	assert.True(t, DeleteProduct("p1"))
	assert.False(t, DeleteProduct("p1"))

	_, _, count := CatalogStatus()
	assert.Equal(t, 1, count)
}

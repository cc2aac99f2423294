// Package cache holds the process-local state the storefront serves
// from: the product catalog fetched from the generative provider, the
// admin notification list, orders and staff accounts. Each store has a
// single logical owner and is guarded by its own RWMutex.
package cache

import (
	"sync"
	"time"

	"github.com/Verve-Commerce/verve-storefront-backend/models"
)

// ── Catalog store ────────────────────────────────────────────────────────────
// The catalog is requested from the provider exactly once: the guard in
// BeginCatalogLoad refuses a second load while one is in flight, after
// the catalog is populated, and after a failed load. The grid region is
// always in exactly one of loading / error / ready.

type catalogEntry struct {
	products  []models.Product
	state     models.CatalogState
	errMsg    string
	inFlight  bool
	fetchedAt time.Time
}

var (
	catalogMu sync.RWMutex
	catalog   = catalogEntry{state: models.CatalogLoading}
)

// BeginCatalogLoad marks a load as in flight. It returns false when a
// load is already running, the catalog is already populated, or a
// previous load failed — the error state is terminal, so the caller
// must not fetch.
func BeginCatalogLoad() bool {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	if catalog.inFlight || catalog.state == models.CatalogReady || catalog.state == models.CatalogError {
		return false
	}
	catalog.inFlight = true
	catalog.state = models.CatalogLoading
	catalog.errMsg = ""
	return true
}

// CompleteCatalogLoad installs the fetched product list. A completion
// arriving after the store was reset is dropped.
func CompleteCatalogLoad(products []models.Product) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	if !catalog.inFlight {
		return
	}
	catalog.products = products
	catalog.state = models.CatalogReady
	catalog.errMsg = ""
	catalog.inFlight = false
	catalog.fetchedAt = time.Now()
}

// FailCatalogLoad records the terminal error state. No retry follows.
func FailCatalogLoad(msg string) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	if !catalog.inFlight {
		return
	}
	catalog.state = models.CatalogError
	catalog.errMsg = msg
	catalog.inFlight = false
}

// CatalogSnapshot returns a copy of the product list with the current
// grid state. Callers derive from the copy; the store never hands out
// its own slice.
func CatalogSnapshot() ([]models.Product, models.CatalogState, string) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	products := make([]models.Product, len(catalog.products))
	copy(products, catalog.products)
	return products, catalog.state, catalog.errMsg
}

// CatalogStatus returns just the grid state.
func CatalogStatus() (models.CatalogState, string, int) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	return catalog.state, catalog.errMsg, len(catalog.products)
}

// GetProduct looks a product up by id.
func GetProduct(id string) (models.Product, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	for _, p := range catalog.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ── Admin catalog mutations ──────────────────────────────────────────────────

// AddProduct appends a product created through the admin area.
func AddProduct(p models.Product) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalog.products = append(catalog.products, p)
}

// UpdateProduct replaces the stored product with the same id.
func UpdateProduct(p models.Product) bool {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	for i := range catalog.products {
		if catalog.products[i].ID == p.ID {
			catalog.products[i] = p
			return true
		}
	}
	return false
}

// DeleteProduct removes a product by id.
func DeleteProduct(id string) bool {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	for i := range catalog.products {
		if catalog.products[i].ID == id {
			catalog.products = append(catalog.products[:i], catalog.products[i+1:]...)
			return true
		}
	}
	return false
}

// IncrementProductViews bumps the view counter for a product detail hit.
func IncrementProductViews(id string) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	for i := range catalog.products {
		if catalog.products[i].ID == id {
			catalog.products[i].Views++
			return
		}
	}
}

// ResetCatalog drops all catalog state (tests and teardown).
func ResetCatalog() {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalog = catalogEntry{state: models.CatalogLoading}
}

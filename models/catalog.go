package models

// CatalogState is the tri-state of the product grid region. The three
// states are mutually exclusive.
type CatalogState string

const (
	CatalogLoading CatalogState = "loading"
	CatalogError   CatalogState = "error"
	CatalogReady   CatalogState = "ready"
)

// SkeletonCount is the fixed number of placeholder cards rendered while
// the catalog is loading.
const SkeletonCount = 8

// CatalogStatusResponse reports the grid region state to the client.
type CatalogStatusResponse struct {
	State         CatalogState `json:"state"`
	SkeletonCount int          `json:"skeleton_count,omitempty"` // set while loading
	ErrorMessage  string       `json:"error_message,omitempty"`  // set on error
	ProductCount  int          `json:"product_count"`
}

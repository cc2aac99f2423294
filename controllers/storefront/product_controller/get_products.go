package product_controller

import (
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/engine"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products with filters
// @Description Retrieve storefront products with optional search, category, brand, price range, rating, and sorting filters. While the catalog is loading the response carries a skeleton placeholder count; a failed load yields the dedicated error state.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query (product name, case-insensitive)"
// @Param category query []string false "Category names (repeatable)"
// @Param brand query []string false "Brand names (repeatable)"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param minRating query number false "Minimum rating"
// @Param sort query string false "Sort key (relevance | price_asc | price_desc | rating_desc)" default(relevance)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 502 {object} models.ApiResponse "Catalog failed to load"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	products, state, errMsg := cache.CatalogSnapshot()

	// The grid region is exactly one of loading / error / ready.
	switch state {
	case models.CatalogLoading:
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog is loading", models.CatalogStatusResponse{
			State:         models.CatalogLoading,
			SkeletonCount: models.SkeletonCount,
		}))
		return
	case models.CatalogError:
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, errMsg))
		return
	}

	page, limit := parsePagination(c)
	criteria := parseCriteria(c)
	sortKey := models.ParseSortKey(c.DefaultQuery("sort", string(models.SortRelevance)))

	derived := engine.Derive(products, criteria, sortKey)

	if len(derived) == 0 {
		// Filters too strict is not an error: a distinct empty payload.
		c.JSON(http.StatusOK, models.PaginatedResponse(
			c,
			"No products match the current filters",
			[]models.StorefrontProductResponse{},
			&models.Pagination{Page: page, Limit: limit, Total: 0, TotalPages: 0},
		))
		return
	}

	pageItems := paginate(derived, page, limit)
	responses := make([]models.StorefrontProductResponse, 0, len(pageItems))
	for _, p := range pageItems {
		responses = append(responses, p.ToStorefrontResponse())
	}

	totalPages := (len(derived) + limit - 1) / limit

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		responses,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      len(derived),
			TotalPages: totalPages,
		},
	))
}

// GetCatalogStatus godoc
// @Summary Get catalog grid state
// @Description Reports whether the product grid is loading, errored, or ready
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CatalogStatusResponse}
// @Router /store/products/status [get]
func GetCatalogStatus(c *gin.Context) {
	state, errMsg, count := cache.CatalogStatus()

	status := models.CatalogStatusResponse{State: state, ProductCount: count}
	switch state {
	case models.CatalogLoading:
		status.SkeletonCount = models.SkeletonCount
	case models.CatalogError:
		status.ErrorMessage = errMsg
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog status fetched", status))
}

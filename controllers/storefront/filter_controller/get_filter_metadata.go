package filter_controller

import (
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/engine"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns distinct categories and brands, availability counts, and the catalog price range for the storefront filter controls
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 502 {object} models.ApiResponse "Catalog failed to load"
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	products, state, errMsg := cache.CatalogSnapshot()
	if state == models.CatalogError {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, errMsg))
		return
	}

	// Facets are derived from the full catalog on every request; they
	// populate the filter controls and never gate engine correctness.
	metadata := models.FilterMetadata{
		Categories:   engine.Categories(products),
		Brands:       engine.Brands(products),
		PriceRange:   engine.PriceBounds(products),
		Availability: engine.Availability(products),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

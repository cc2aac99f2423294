package product_controller

import (
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary List all catalog products
// @Description Full product records for the admin table, including view counters and stock
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Failure 502 {object} models.ApiResponse "Catalog failed to load"
// @Router /admin/products [get]
func GetProducts(c *gin.Context) {
	products, state, errMsg := cache.CatalogSnapshot()
	if state == models.CatalogError {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, errMsg))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", products))
}

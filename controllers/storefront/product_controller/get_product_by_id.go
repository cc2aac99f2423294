package product_controller

import (
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProductByID godoc
// @Summary Get a single storefront product
// @Description Retrieve full product details by id. Each hit bumps the product's view counter.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	id := c.Param("id")

	product, found := cache.GetProduct(id)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	cache.IncrementProductViews(id)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}

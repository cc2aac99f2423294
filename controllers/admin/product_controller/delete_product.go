package product_controller

import (
	"log"
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Removes a product from the catalog. Manager or admin role required.
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if !cache.DeleteProduct(id) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	log.Printf("[admin.products] deleted %s", id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
}

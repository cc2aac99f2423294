package product_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Partially updates a catalog product. Manager or admin role required.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	product, found := cache.GetProduct(id)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	product.UpdatedAt = time.Now()

	if !cache.UpdateProduct(product) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	log.Printf("[admin.products] updated %s", id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}

package product_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Adds a product to the catalog. Manager or admin role required.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 403 {object} models.ApiResponse "Forbidden"
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	now := time.Now()
	product := models.Product{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Rating:      req.Rating,
		Images:      req.Images,
		Category:    req.Category,
		Brand:       req.Brand,
		Stock:       req.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	cache.AddProduct(product)
	log.Printf("[admin.products] created %s (%s)", product.Name, product.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}

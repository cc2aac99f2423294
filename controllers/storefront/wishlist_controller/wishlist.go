package wishlist_controller

import (
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/config"
	"github.com/Verve-Commerce/verve-storefront-backend/middleware"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/Verve-Commerce/verve-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

func buildWishlistResponse(ids []string) models.WishlistResponse {
	response := models.WishlistResponse{
		ProductIDs: ids,
		Products:   make([]models.StorefrontProductResponse, 0, len(ids)),
	}
	for _, id := range ids {
		if product, found := cache.GetProduct(id); found {
			response.Products = append(response.Products, product.ToStorefrontResponse())
		}
	}
	return response
}

// GetWishlist godoc
// @Summary Get the visitor's wishlist
// @Tags Storefront - Wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.WishlistResponse}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/wishlist [get]
func GetWishlist(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	ids, err := services.GetWishlistService().IDs(ctx, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched successfully", buildWishlistResponse(ids)))
}

// ToggleWishlistItem godoc
// @Summary Toggle a product on the wishlist
// @Description Adds the product when absent, removes it when present
// @Tags Storefront - Wishlist
// @Accept json
// @Produce json
// @Param item body models.WishlistToggleRequest true "Product to toggle"
// @Success 200 {object} models.ApiResponse{data=models.WishlistResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/wishlist/toggle [post]
func ToggleWishlistItem(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	var req models.WishlistToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	if _, found := cache.GetProduct(req.ProductID); !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	wishlistService := services.GetWishlistService()
	if _, err := wishlistService.Toggle(ctx, sessionID, req.ProductID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to toggle wishlist item"))
		return
	}

	ids, err := wishlistService.IDs(ctx, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist updated", buildWishlistResponse(ids)))
}

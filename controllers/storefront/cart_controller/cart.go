package cart_controller

import (
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/config"
	"github.com/Verve-Commerce/verve-storefront-backend/middleware"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/Verve-Commerce/verve-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// buildCartResponse enriches the stored lines with catalog data. Lines
// whose product left the catalog are skipped rather than failing the
// whole cart.
func buildCartResponse(items []models.CartItem) models.CartResponse {
	response := models.CartResponse{Items: make([]models.CartLineResponse, 0, len(items))}
	for _, item := range items {
		product, found := cache.GetProduct(item.ProductID)
		if !found {
			continue
		}
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		line := models.CartLineResponse{
			ProductID: item.ProductID,
			Name:      product.Name,
			Image:     image,
			Price:     product.Price,
			Quantity:  item.Quantity,
			Subtotal:  product.Price * float64(item.Quantity),
		}
		response.Items = append(response.Items, line)
		response.ItemCount += item.Quantity
		response.Subtotal += line.Subtotal
	}
	return response
}

// GetCart godoc
// @Summary Get the visitor's cart
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/cart [get]
func GetCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	items, err := services.GetCartService().Items(ctx, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", buildCartResponse(items)))
}

// AddCartItem godoc
// @Summary Add a product to the cart
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Product and quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/cart/items [post]
func AddCartItem(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	var req models.AddCartItemRequest
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

	cartService := services.GetCartService()
	if err := cartService.Add(ctx, sessionID, req.ProductID, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add cart item"))
		return
	}

	items, err := cartService.Items(ctx, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", buildCartResponse(items)))
}

// UpdateCartItem godoc
// @Summary Set a cart line's quantity
// @Description Sets the exact quantity for a product; zero removes the line
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param item body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Router /store/cart/items/{id} [put]
func UpdateCartItem(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)
	productID := c.Param("id")

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cartService := services.GetCartService()
	if err := cartService.SetQuantity(ctx, sessionID, productID, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart item"))
		return
	}

	items, err := cartService.Items(ctx, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", buildCartResponse(items)))
}

// RemoveCartItem godoc
// @Summary Remove a product from the cart
// @Tags Storefront - Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /store/cart/items/{id} [delete]
func RemoveCartItem(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)
	productID := c.Param("id")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cartService := services.GetCartService()
	if err := cartService.Remove(ctx, sessionID, productID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to remove cart item"))
		return
	}

	items, err := cartService.Items(ctx, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", buildCartResponse(items)))
}

// ClearCart godoc
// @Summary Empty the cart
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/cart [delete]
func ClearCart(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := services.GetCartService().Clear(ctx, sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", nil))
}

package order_controller

import (
	"log"
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/config"
	"github.com/Verve-Commerce/verve-storefront-backend/middleware"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/Verve-Commerce/verve-storefront-backend/services"
	"github.com/Verve-Commerce/verve-storefront-backend/utils"
	"github.com/gin-gonic/gin"
)

// PlaceOrder godoc
// @Summary Place an order (checkout)
// @Description Creates an order from the session's cart at current catalog prices, clears the cart, and moves the view to confirmation. The returned order number is opaque and unique for the session lifetime.
// @Tags Storefront - Orders
// @Produce json
// @Success 201 {object} models.ApiResponse{data=object{order_id=string,order_number=string,view=string}} "Order placed"
// @Failure 400 {object} models.ApiResponse "Cart is empty"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/orders [post]
func PlaceOrder(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cartService := services.GetCartService()
	cartItems, err := cartService.Items(ctx, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read cart"))
		return
	}
	if len(cartItems) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart cannot be empty"))
		return
	}

	// Price the lines at current catalog prices. Products that left the
	// catalog since they were added are dropped.
	items := make([]models.OrderItem, 0, len(cartItems))
	for _, line := range cartItems {
		product, found := cache.GetProduct(line.ProductID)
		if !found {
			log.Printf("[order] dropping vanished product %s from checkout", line.ProductID)
			continue
		}
		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    line.Quantity,
			Subtotal:    product.Price * float64(line.Quantity),
		})
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart cannot be empty"))
		return
	}

	// Clear the cart before recording the order: a clear failure after
	// the order exists would let the same cart be replayed into a
	// duplicate.
	if err := cartService.Clear(ctx, sessionID); err != nil {
		log.Printf("[order] failed to clear cart for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	userAgent := c.Request.UserAgent()
	order := cache.CreateOrder(sessionID, items, utils.ParseDeviceType(userAgent), utils.ParseBrowser(userAgent))

	// Record the identifier and land on the confirmation view.
	sessionService := services.GetViewSessionService()
	viewSession, err := sessionService.Load(ctx, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	viewSession.OrderPlaced(order.OrderNumber)
	if err := sessionService.Save(ctx, sessionID, viewSession); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	log.Printf("[order] placed %s (%d items) for session %s", order.OrderNumber, order.ItemCount(), sessionID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order placed successfully", gin.H{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"view":         viewSession.View,
	}))
}

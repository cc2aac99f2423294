package order_controller

import (
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/middleware"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetOrders godoc
// @Summary Get the session's order history
// @Tags Storefront - Orders
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.OrderHistoryResponse}
// @Router /store/orders [get]
func GetOrders(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	orders := cache.OrdersBySession(sessionID)
	responses := make([]models.OrderHistoryResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, o.ToHistoryResponse())
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", responses))
}

// GetOrderDetails godoc
// @Summary Get one of the session's orders
// @Tags Storefront - Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /store/orders/{id} [get]
func GetOrderDetails(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)
	orderID := c.Param("id")

	order, found := cache.GetOrder(orderID)
	if !found || order.SessionID != sessionID {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched successfully", order))
}

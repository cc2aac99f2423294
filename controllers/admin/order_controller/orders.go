package order_controller

import (
	"log"
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetOrders godoc
// @Summary List all orders
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Order}
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", cache.AllOrders()))
}

// GetOrderDetails godoc
// @Summary Get one order
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /admin/orders/{id} [get]
func GetOrderDetails(c *gin.Context) {
	order, found := cache.GetOrder(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched successfully", order))
}

// UpdateOrderStatus godoc
// @Summary Update an order's status
// @Description Moves an order through its lifecycle. Manager or admin role required.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param status body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse "Invalid status"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	order, found := cache.UpdateOrderStatus(c.Param("id"), req.Status)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	log.Printf("[admin.orders] %s -> %s", order.OrderNumber, order.Status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated", order))
}

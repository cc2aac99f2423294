package notification_controller

import (
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetNotifications godoc
// @Summary Get the admin notification feed
// @Description Returns the generated notifications with the derived unread count. The feed is loaded on login and cleared on logout.
// @Tags Admin - Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.NotificationListResponse}
// @Router /admin/notifications [get]
func GetNotifications(c *gin.Context) {
	response := models.NotificationListResponse{
		Notifications: cache.Notifications(),
		UnreadCount:   cache.UnreadNotificationCount(),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notifications fetched successfully", response))
}

// MarkNotificationRead godoc
// @Summary Mark a notification as read
// @Tags Admin - Notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Notification not found"
// @Router /admin/notifications/{id}/read [post]
func MarkNotificationRead(c *gin.Context) {
	if !cache.MarkNotificationRead(c.Param("id")) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Notification not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notification marked as read", nil))
}

package auth_controller

import (
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetStaffMe godoc
// @Summary Get the authenticated staff account
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.StaffResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /admin/me [get]
func GetStaffMe(c *gin.Context) {
	staffID, exists := c.Get("staffID")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	account, found := cache.AccountByID(staffID.(string))
	if !found {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - account not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Staff account fetched", account.ToResponse()))
}

package auth_controller

import (
	"log"
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/config"
	"github.com/Verve-Commerce/verve-storefront-backend/middleware"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/Verve-Commerce/verve-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// StaffLogout godoc
// @Summary Logout staff
// @Description Clears the staff token, empties the notification feed without a network call, and returns the session to the store view
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func StaffLogout(c *gin.Context) {
	if staffID, exists := c.Get("staffID"); exists {
		log.Printf("[staff.logout] staff logging out: %s", staffID)
	}

	// Clear the token cookie
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"staff_token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	// Logout clears the notification feed immediately, no network call.
	services.GetCatalogService().ClearNotifications()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if sessionID, ok := middleware.GetSessionIDFromContext(c); ok {
		sessionService := services.GetViewSessionService()
		if viewSession, err := sessionService.Load(ctx, sessionID); err == nil {
			if err := viewSession.Navigate(models.ViewStore, models.AuthContext{}); err == nil {
				if err := sessionService.Save(ctx, sessionID, viewSession); err != nil {
					log.Printf("[staff.logout] failed to save view session: %v", err)
				}
			}
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}

package view_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/config"
	"github.com/Verve-Commerce/verve-storefront-backend/middleware"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/Verve-Commerce/verve-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

type navigateRequest struct {
	View string `json:"view" binding:"required"`
}

type overlayRequest struct {
	Overlay string `json:"overlay" binding:"required,oneof=cart menu login"`
	Open    bool   `json:"open"`
}

// GetViewState godoc
// @Summary Get the visitor's view state
// @Description Returns the active view, overlay flags and layout hints
// @Tags Storefront - Views
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.ViewStateResponse}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/view [get]
func GetViewState(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	session, err := services.GetViewSessionService().Load(ctx, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load view state"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "View state fetched", session.ToResponse()))
}

// Navigate godoc
// @Summary Navigate to a named view
// @Description Moves the session to one of the six views. All overlays close on a successful transition. Navigating to admin requires an authenticated staff token with a recognized role; otherwise the transition is rejected and the prior view stands.
// @Tags Storefront - Views
// @Accept json
// @Produce json
// @Param navigation body navigateRequest true "Target view"
// @Success 200 {object} models.ApiResponse{data=models.ViewStateResponse}
// @Failure 400 {object} models.ApiResponse "Unknown view"
// @Failure 403 {object} models.ApiResponse "Admin navigation rejected"
// @Router /store/view/navigate [post]
func Navigate(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	target, err := models.ParseView(req.View)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown view"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionService := services.GetViewSessionService()
	session, err := sessionService.Load(ctx, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load view state"))
		return
	}

	auth := middleware.StaffAuthContext(c)
	if err := session.Navigate(target, auth); err != nil {
		if errors.Is(err, models.ErrAdminForbidden) {
			log.Printf("[view] rejected admin navigation for session %s", sessionID)
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Admin area requires a staff login"))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown view"))
		return
	}

	if err := sessionService.Save(ctx, sessionID, session); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save view state"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Navigated", session.ToResponse()))
}

// SetOverlay godoc
// @Summary Open or close an overlay
// @Description Toggles the cart panel, mobile menu or login modal independently of the active view
// @Tags Storefront - Views
// @Accept json
// @Produce json
// @Param overlay body overlayRequest true "Overlay and desired state"
// @Success 200 {object} models.ApiResponse{data=models.ViewStateResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Router /store/view/overlay [post]
func SetOverlay(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)

	var req overlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sessionService := services.GetViewSessionService()
	session, err := sessionService.Load(ctx, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load view state"))
		return
	}

	switch req.Overlay {
	case "cart":
		session.CartOpen = req.Open
	case "menu":
		session.MenuOpen = req.Open
	case "login":
		session.LoginOpen = req.Open
	}

	if err := sessionService.Save(ctx, sessionID, session); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save view state"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Overlay updated", session.ToResponse()))
}

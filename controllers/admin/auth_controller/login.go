package auth_controller

import (
	"log"
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/config"
	"github.com/Verve-Commerce/verve-storefront-backend/middleware"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/Verve-Commerce/verve-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// StaffLogin godoc
// @Summary Login as staff
// @Description Authenticate a staff account with email and password. Returns a JWT, closes the login overlay, lands the session on the admin view, and refreshes the admin notification feed.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.StaffLoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.StaffLoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 403 {object} models.ApiResponse "Account suspended"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/login [post]
func StaffLogin(c *gin.Context) {
	log.Printf("[staff.login] attempt")

	var req models.StaffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	account, found := cache.AccountByEmail(req.Email)
	if !found {
		log.Printf("[staff.login] account not found: %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	if account.Status == "suspended" {
		log.Printf("[staff.login] suspended account attempt: %s", req.Email)
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is suspended"))
		return
	}

	authService := services.GetStaffAuthService()
	if !authService.VerifyPassword(account.PasswordHash, req.Password) {
		log.Printf("[staff.login] invalid password: %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	cache.RecordLogin(account.ID)

	token, err := services.GenerateStaffJWT(account.ID, account.Email, account.Name, account.Role)
	if err != nil {
		log.Printf("[staff.login] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"staff_token",
		token,
		24*60*60,
		"/",
		"",
		false,
		true,
	)

	// Login success closes the login overlay and lands on the admin
	// view, whichever recognized role just authenticated.
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if sessionID, ok := middleware.GetSessionIDFromContext(c); ok {
		sessionService := services.GetViewSessionService()
		if viewSession, err := sessionService.Load(ctx, sessionID); err == nil {
			viewSession.LoginSucceeded()
			if err := sessionService.Save(ctx, sessionID, viewSession); err != nil {
				log.Printf("[staff.login] failed to save view session: %v", err)
			}
		}
	}

	// Notification refresh is keyed to login state changes. It runs off
	// the request path; a failure is logged and swallowed.
	go func() {
		refreshCtx, refreshCancel := config.WithTimeout()
		defer refreshCancel()
		services.GetCatalogService().RefreshNotifications(refreshCtx)
	}()

	log.Printf("[staff.login] success: %s (%s)", account.Email, account.Role)

	response := models.StaffLoginResponse{
		Staff: account.ToResponse(),
		Token: token,
		View:  models.ViewAdmin,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", response))
}

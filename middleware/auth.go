package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/Verve-Commerce/verve-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// extractStaffToken pulls the staff token from the cookie first, then
// the Authorization header.
func extractStaffToken(c *gin.Context) (string, bool) {
	token, err := c.Cookie("staff_token")
	if err == nil && token != "" {
		return token, true
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// StaffAuthMiddleware validates the staff JWT and checks the account is
// still active with a recognized role
func StaffAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractStaffToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
			c.Abort()
			return
		}

		claims, err := services.VerifyStaffJWT(token)
		if err != nil {
			log.Printf("[auth] invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		account, found := cache.AccountByID(claims.StaffID)
		if !found {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - account not found"))
			c.Abort()
			return
		}
		if account.Status == "suspended" {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - account suspended"))
			c.Abort()
			return
		}
		if !models.IsRecognizedRole(account.Role) {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - unrecognized role"))
			c.Abort()
			return
		}

		c.Set("staffID", account.ID)
		c.Set("staffEmail", account.Email)
		c.Set("staffName", account.Name)
		c.Set("staffRole", account.Role)

		c.Next()
	}
}

// StaffAuthContext resolves the caller's auth state without aborting.
// The view controller uses it to gate admin navigation: an absent or
// invalid token simply yields an unauthenticated context.
func StaffAuthContext(c *gin.Context) models.AuthContext {
	token, ok := extractStaffToken(c)
	if !ok {
		return models.AuthContext{}
	}
	claims, err := services.VerifyStaffJWT(token)
	if err != nil {
		return models.AuthContext{}
	}
	account, found := cache.AccountByID(claims.StaffID)
	if !found || account.Status == "suspended" {
		return models.AuthContext{}
	}
	return models.AuthContext{LoggedIn: true, Role: account.Role}
}

// GetStaffRoleFromContext returns the authenticated staff role.
func GetStaffRoleFromContext(c *gin.Context) (string, bool) {
	role, exists := c.Get("staffRole")
	if !exists {
		return "", false
	}
	return role.(string), true
}

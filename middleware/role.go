package middleware

import (
	"log"
	"net/http"

	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// RequireManagerMiddleware restricts catalog and order mutations to
// manager and admin roles
func RequireManagerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := GetStaffRoleFromContext(c)
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - role not found"))
			c.Abort()
			return
		}

		if !models.CanManageCatalog(role) {
			log.Printf("[auth] role %q attempted a manager-only action", role)
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - manager access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdminMiddleware restricts staff management to the admin role
func RequireAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := GetStaffRoleFromContext(c)
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - role not found"))
			c.Abort()
			return
		}

		if role != models.RoleAdmin {
			log.Printf("[auth] non-admin attempted restricted action")
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

package admin_routes

import (
	admin_analytics "github.com/Verve-Commerce/verve-storefront-backend/controllers/admin/analytics_controller"
	admin_auth "github.com/Verve-Commerce/verve-storefront-backend/controllers/admin/auth_controller"
	admin_notification "github.com/Verve-Commerce/verve-storefront-backend/controllers/admin/notification_controller"
	admin_order "github.com/Verve-Commerce/verve-storefront-backend/controllers/admin/order_controller"
	admin_product "github.com/Verve-Commerce/verve-storefront-backend/controllers/admin/product_controller"
	admin_staff "github.com/Verve-Commerce/verve-storefront-backend/controllers/admin/staff_controller"
	"github.com/Verve-Commerce/verve-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up all admin routes with appropriate middleware
func SetupAdminRoutes(rg *gin.RouterGroup) {
	// ════════════════════════════════════════════════════════════
	// Base Admin Group
	// ════════════════════════════════════════════════════════════

	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	// Login needs the visitor session so the storefront view state can
	// transition to the admin view on success.
	admin.POST("/login", middleware.VisitorSessionMiddleware(), admin_auth.StaffLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Any Recognized Role)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.StaffAuthMiddleware())
	{
		// Auth
		protected.POST("/logout", middleware.VisitorSessionMiddleware(), admin_auth.StaffLogout)
		protected.GET("/me", admin_auth.GetStaffMe)

		// Catalog (read)
		protected.GET("/products", admin_product.GetProducts)

		// Orders (read)
		protected.GET("/orders", admin_order.GetOrders)
		protected.GET("/orders/:id", admin_order.GetOrderDetails)

		// Notifications
		protected.GET("/notifications", admin_notification.GetNotifications)
		protected.POST("/notifications/:id/read", admin_notification.MarkNotificationRead)

		// Analytics
		protected.GET("/analytics/overview", admin_analytics.GetOverview)
		protected.GET("/analytics/top-products", admin_analytics.GetTopProducts)
		protected.GET("/analytics/devices", admin_analytics.GetDeviceBreakdown)
		protected.GET("/analytics/browsers", admin_analytics.GetBrowserBreakdown)
		protected.GET("/analytics/most-viewed", admin_analytics.GetMostViewed)
	}

	// ════════════════════════════════════════════════════════════
	// Manager Routes (Catalog + Order Mutations)
	// ════════════════════════════════════════════════════════════

	manager := admin.Group("")
	manager.Use(
		middleware.StaffAuthMiddleware(),
		middleware.RequireManagerMiddleware(),
	)
	{
		manager.POST("/products", admin_product.CreateProduct)
		manager.PATCH("/products/:id", admin_product.UpdateProduct)
		manager.DELETE("/products/:id", admin_product.DeleteProduct)

		manager.PATCH("/orders/:id/status", admin_order.UpdateOrderStatus)
	}

	// ════════════════════════════════════════════════════════════
	// Admin Only Routes
	// ════════════════════════════════════════════════════════════

	adminOnly := admin.Group("")
	adminOnly.Use(
		middleware.StaffAuthMiddleware(),
		middleware.RequireAdminMiddleware(),
	)
	{
		// Staff management
		adminOnly.GET("/staff", admin_staff.GetStaff)
		adminOnly.POST("/staff", admin_staff.CreateStaff)
		adminOnly.POST("/staff/:id/suspend", admin_staff.SuspendStaff)
		adminOnly.POST("/staff/:id/unsuspend", admin_staff.UnsuspendStaff)
	}
}

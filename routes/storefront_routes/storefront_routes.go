package storefront_routes

import (
	store_cart "github.com/Verve-Commerce/verve-storefront-backend/controllers/storefront/cart_controller"
	store_filter "github.com/Verve-Commerce/verve-storefront-backend/controllers/storefront/filter_controller"
	store_order "github.com/Verve-Commerce/verve-storefront-backend/controllers/storefront/order_controller"
	store_product "github.com/Verve-Commerce/verve-storefront-backend/controllers/storefront/product_controller"
	store_view "github.com/Verve-Commerce/verve-storefront-backend/controllers/storefront/view_controller"
	store_wishlist "github.com/Verve-Commerce/verve-storefront-backend/controllers/storefront/wishlist_controller"
	"github.com/Verve-Commerce/verve-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes wires the public storefront. Every route runs behind
// the visitor session middleware so carts, wishlists and view state stick to
// the browser across requests.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")
	store.Use(middleware.VisitorSessionMiddleware())

	// Catalog
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts) // List with filters + sort
		products.GET("/status", store_product.GetCatalogStatus)
		products.GET("/:id", store_product.GetStorefrontProductByID)
	}

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)

	// View state
	view := store.Group("/view")
	{
		view.GET("", store_view.GetViewState)
		view.POST("/navigate", store_view.Navigate)
		view.POST("/overlay", store_view.SetOverlay)
	}

	// Cart
	cart := store.Group("/cart")
	{
		cart.GET("", store_cart.GetCart)
		cart.POST("/items", store_cart.AddCartItem)
		cart.PUT("/items/:id", store_cart.UpdateCartItem)
		cart.DELETE("/items/:id", store_cart.RemoveCartItem)
		cart.DELETE("", store_cart.ClearCart)
	}

	// Wishlist
	wishlist := store.Group("/wishlist")
	{
		wishlist.GET("", store_wishlist.GetWishlist)
		wishlist.POST("/toggle", store_wishlist.ToggleWishlistItem)
	}

	// Checkout + order history
	orders := store.Group("/orders")
	{
		orders.POST("", store_order.PlaceOrder)
		orders.GET("", store_order.GetOrders)
		orders.GET("/:id", store_order.GetOrderDetails)
		orders.GET("/:id/receipt", store_order.DownloadOrderReceiptPDF)
	}
}

// @title Verve Storefront API
// @version 1.0
// @description Verve Storefront Backend API Documentation
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Verve-Commerce/verve-storefront-backend/config"
	_ "github.com/Verve-Commerce/verve-storefront-backend/docs"
	"github.com/Verve-Commerce/verve-storefront-backend/middleware"
	"github.com/Verve-Commerce/verve-storefront-backend/routes/admin_routes"
	"github.com/Verve-Commerce/verve-storefront-backend/routes/storefront_routes"
	"github.com/Verve-Commerce/verve-storefront-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis connection (sessions, carts, wishlists, rate limiting)
	config.ConnectRedis()

	// Product provider config
	config.InitProvider()

	// ✅ Initialize JWT Service for Staff Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Seed staff accounts from STAFF_ACCOUNTS
	if err := services.SeedAccountsFromEnv(); err != nil {
		log.Fatalf("Failed to seed staff accounts: %v", err)
	}
	log.Println("✅ Staff accounts seeded")

	// ✅ Catalog service + initial load. The load runs once; a failure is
	// surfaced to the storefront as the catalog error state, not a crash.
	services.InitCatalogService(services.NewProviderClient())
	go func() {
		ctx, cancel := config.WithCustomTimeout(30 * time.Second)
		defer cancel()
		services.GetCatalogService().EnsureCatalogLoaded(ctx)
	}()

	// ✅ Configure CORS properly for all content types including PDFs
	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// ✅ Setup Admin Routes (at /api/v1/admin prefix)
	adminGroup := api.Group("")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	admin_routes.SetupAdminRoutes(adminGroup)
	log.Println("✅ Admin routes registered")

	// Public storefront (no rate limiter)
	storefront_routes.SetupStorefrontRoutes(api)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}

// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/curioshop/curios-backend/internal/config"
	"github.com/curioshop/curios-backend/internal/handlers"
	"github.com/curioshop/curios-backend/internal/middleware"
	"github.com/curioshop/curios-backend/internal/services"
	"github.com/curioshop/curios-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	catalogService := services.NewCatalogService(db)
	orderService := services.NewOrderService(db)
	storageService, err := services.NewStorageService(&cfg.Storage)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize storage service")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService, storageService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})

	// Account routes
	accounts := r.Group("/accounts")
	accounts.Use(middleware.AccountRateLimit())
	{
		accounts.POST("/register", authHandler.Register)
		accounts.POST("/merchants/register", authHandler.RegisterMerchant)
		accounts.POST("/login", authHandler.Login)
		accounts.POST("/token/refresh", authHandler.Refresh)
		accounts.GET("/me", middleware.AuthRequired(), authHandler.Me)
	}

	// Catalog routes. Reads are open to everyone; mutations pass through the
	// admin-or-read-only policy inside the catalog service.
	curios := r.Group("/curios")
	{
		curios.GET("/list", productHandler.List)
		curios.GET("/detail/:id", productHandler.Detail)

		curios.POST("/create", middleware.OptionalAuth(), productHandler.Create)
		curios.PUT("/update/:id", middleware.OptionalAuth(), productHandler.Update)
		curios.PATCH("/update/:id", middleware.OptionalAuth(), productHandler.Update)
		curios.DELETE("/delete/:id", middleware.OptionalAuth(), productHandler.Delete)
		curios.POST("/upload-image", middleware.OptionalAuth(), productHandler.UploadImage)
	}

	// Order routes, all authenticated
	orders := r.Group("/orders")
	orders.Use(middleware.AuthRequired())
	{
		orders.POST("/create", orderHandler.Create)
		orders.GET("/list", orderHandler.List)
		orders.GET("/detail/:id", orderHandler.Detail)
		orders.PUT("/update/:id", orderHandler.Update)
		orders.PATCH("/update/:id", orderHandler.Update)
		orders.DELETE("/delete/:id", orderHandler.Delete)
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", cfg.Storage.LocalUploadsDir)
	}

	return r
}

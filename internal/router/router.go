// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopstack/storefront-backend/internal/config"
	"github.com/shopstack/storefront-backend/internal/handlers"
	"github.com/shopstack/storefront-backend/internal/kvstore"
	"github.com/shopstack/storefront-backend/internal/middleware"
	"github.com/shopstack/storefront-backend/internal/repository"
	"github.com/shopstack/storefront-backend/internal/services"
	"github.com/shopstack/storefront-backend/internal/utils"
)

func Initialize(store kvstore.Store, cfg *config.Config) (*gin.Engine, error) {
	// Initialize repositories
	productRepo := repository.NewProductRepository(store)
	categoryRepo := repository.NewCategoryRepository(store)
	cartRepo := repository.NewCartRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	paymentRepo := repository.NewPaymentRepository(store)
	userRepo := repository.NewUserRepository(store)

	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	gateway := services.NewPaymentGateway(&cfg.Payment)

	catalogService := services.NewCatalogService(productRepo, categoryRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, productRepo)
	paymentService := services.NewPaymentService(paymentRepo, orderRepo, gateway)
	userService := services.NewUserService(userRepo)
	adminService := services.NewAdminService(userRepo, orderRepo, productRepo, catalogService)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService, storageService)
	categoryHandler := handlers.NewCategoryHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	profileHandler := handlers.NewProfileHandler(userService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Set JWT secret shared with the identity provider
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	authRequired := middleware.AuthRequired(userRepo)

	// Product routes
	products := r.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)

		protected := products.Group("")
		protected.Use(authRequired, middleware.AdminRequired())
		{
			protected.POST("", productHandler.CreateProduct)
			protected.PUT("/:id", productHandler.UpdateProduct)
			protected.DELETE("/:id", productHandler.DeleteProduct)
			protected.POST("/:id/image", middleware.UploadRateLimit(), productHandler.UploadProductImage)
		}
	}

	// Category routes
	categories := r.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.POST("", authRequired, middleware.AdminRequired(), categoryHandler.CreateCategory)
	}

	// Cart routes
	cart := r.Group("/cart")
	cart.Use(authRequired)
	{
		cart.GET("", cartHandler.ViewCart)
		cart.POST("", cartHandler.AddItem)
		cart.PUT("/:productId", cartHandler.UpdateItem)
		cart.DELETE("/:productId", cartHandler.RemoveItem)
	}

	// Order routes
	orders := r.Group("/orders")
	orders.Use(authRequired)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.POST("", orderHandler.CreateOrder)
		orders.PUT("/:id", orderHandler.UpdateOrder)
	}

	// Payment routes
	payments := r.Group("/payments")
	payments.Use(authRequired)
	{
		payments.POST("", paymentHandler.ProcessPayment)
		payments.GET("/:id", paymentHandler.GetPayment)
	}

	// Profile routes
	profile := r.Group("/profile")
	profile.Use(authRequired)
	{
		profile.GET("", profileHandler.GetProfile)
		profile.PUT("", profileHandler.UpdateProfile)
	}

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(authRequired, middleware.AdminRequired())
	{
		admin.GET("/stats", adminHandler.GetStats)
		admin.POST("/seed", adminHandler.SeedCatalog)
	}

	return r, nil
}

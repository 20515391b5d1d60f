package main

import (
	"storefront-service/internal/cart"
	"storefront-service/internal/checkout"
	"storefront-service/internal/handler"
	mid "storefront-service/internal/middleware"
	"storefront-service/internal/store"
	"storefront-service/pkg/config"
	"storefront-service/pkg/database"
	"storefront-service/pkg/imghost"
	"storefront-service/pkg/jwtutil"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting storefront-service", appConfig.LogConfig()...)

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Document store holding the single AppState document
	appStore, err := store.New(database.GetDB(), appConfig.Store.DocumentKey, log)
	if err != nil {
		log.Fatal("Failed to initialize document store", zap.Error(err))
	}

	// Per-client cart records
	cartSvc, err := cart.NewService(database.GetDB(), log)
	if err != nil {
		log.Fatal("Failed to initialize cart store", zap.Error(err))
	}

	checkoutSvc := checkout.NewService(appStore, cartSvc, appConfig.Store.WhatsAppNumber, log)
	uploadClient := imghost.NewClient(appConfig.Upload.Endpoint, appConfig.Upload.APIKey, appConfig.Upload.Timeout, log)

	handler.Setup(appStore, cartSvc, checkoutSvc, uploadClient, appConfig)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Public storefront API
	e.GET("/api/state", handler.GetState)
	e.GET("/api/view", handler.ResolveView)
	e.POST("/api/login", handler.Login)

	cartAPI := e.Group("/api/cart")
	cartAPI.POST("", handler.CreateCart)
	cartAPI.GET("/:key", handler.GetCart)
	cartAPI.POST("/:key/items", handler.AddCartItem)
	cartAPI.PATCH("/:key/items/:productId", handler.UpdateCartItem)
	cartAPI.DELETE("/:key/items/:productId", handler.RemoveCartItem)
	cartAPI.DELETE("/:key", handler.ClearCart)
	cartAPI.POST("/:key/checkout", handler.Checkout)

	// Admin API - Apply auth middleware to validate the admin JWT
	adminAPI := e.Group("/api/admin", mid.AuthMiddleware)
	adminAPI.GET("/orders", handler.ListOrders)
	adminAPI.POST("/upload", handler.UploadImage)
	adminAPI.POST("/:collection", handler.AddAdminItem)
	adminAPI.PUT("/:collection/:id", handler.UpdateAdminItem)
	adminAPI.DELETE("/:collection/:id", handler.DeleteAdminItem)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}

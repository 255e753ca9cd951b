package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hitteshkharyal/Analytics-Dashboard/internal/config"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/database"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/handlers"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/repository"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/seed"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/services"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/session"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Seed demo data on an empty store
	if cfg.SeedDemoData {
		if err := seed.EnsureDemoData(productRepo, orderRepo, false); err != nil {
			log.Fatal("Failed to seed demo data:", err)
		}
	}

	// Initialize cart session store
	cartTTL := time.Duration(cfg.CartTTL) * time.Second
	var carts session.Store
	if cfg.RedisURL != "" {
		carts, err = session.NewRedisStore(cfg.RedisURL, cartTTL)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		log.Println("Cart sessions stored in Redis")
	} else {
		carts = session.NewMemoryStore(cartTTL)
		log.Println("Cart sessions stored in memory")
	}

	// Initialize services
	inventoryService := services.NewInventoryService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo)
	reportService := services.NewReportService(productRepo, orderRepo, cfg.LowStockThreshold)

	// Initialize handlers
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	orderHandler := handlers.NewOrderHandler(orderService, carts)
	reportHandler := handlers.NewReportHandler(reportService)
	siteHandler := handlers.NewSiteHandler(cfg)

	// Setup routes
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", handlers.SessionHeader},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// API endpoints
	api := router.Group("/api")
	{
		// Catalog and stock
		api.GET("/products", inventoryHandler.ListProducts)
		api.POST("/products", inventoryHandler.CreateProduct)
		api.POST("/products/:id/stock", inventoryHandler.AddStock)

		// Session cart and orders
		api.GET("/cart", orderHandler.GetCart)
		api.POST("/cart/items", orderHandler.AddCartItem)
		api.DELETE("/cart", orderHandler.ClearCart)
		api.POST("/orders", orderHandler.FinalizeOrder)
		api.GET("/orders", orderHandler.ListOrders)
		api.GET("/orders/:id", orderHandler.GetOrder)

		// Reports
		api.GET("/reports/dashboard", reportHandler.Dashboard)
		api.GET("/reports/best-sellers", reportHandler.BestSellers)
		api.GET("/reports/top-profit", reportHandler.TopProfit)
		api.GET("/reports/customers-per-hour", reportHandler.CustomersPerHour)
		api.GET("/reports/low-stock", reportHandler.LowStock)
		api.GET("/reports/summary", reportHandler.Summary)

		// Dashboard chrome
		api.GET("/site", siteHandler.SiteInfo)
		api.GET("/dashboard/embed", siteHandler.EmbedConfig)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

package main

import (
	"fmt"
	"log"

	"github.com/hitteshkharyal/Analytics-Dashboard/internal/config"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/database"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/models"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/repository"
	"github.com/hitteshkharyal/Analytics-Dashboard/internal/seed"
)

func main() {
	fmt.Println("Initializing shop database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.OrderItem{},
		&models.Order{},
		&models.Product{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Load the demo catalog and historical orders
	fmt.Println("Seeding demo data...")
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	if err := seed.EnsureDemoData(productRepo, orderRepo, true); err != nil {
		log.Fatal("Failed to seed demo data:", err)
	}

	fmt.Println("Database initialization completed successfully!")
}

package main

import (
	"fmt"
	"log"

	"storefront-backend/config"
	"storefront-backend/controllers"
	"storefront-backend/migrations"
	"storefront-backend/routes"
)

func main() {
	log.Println("🚀 Starting Storefront Backend Service...")

	// Load configuration
	log.Println("📝 Loading configuration...")
	cfg := config.LoadConfig()
	log.Println("✓ Configuration loaded successfully")

	// Connect to database with retry logic
	log.Println("🔌 Connecting to database...")
	config.ConnectDatabase(cfg)

	// Run migrations and seeds
	log.Println("🔄 Running database migrations...")
	db := config.GetDB()
	migrations.AutoMigrate(db, cfg)

	// Initialize controllers
	log.Println("🎮 Initializing controllers...")
	ctrl := routes.Controllers{
		Auth:        controllers.NewAuthController(db, cfg),
		User:        controllers.NewUserController(db),
		UserManager: controllers.NewUserManagerController(db),
		Role:        controllers.NewRoleController(db),
		Permission:  controllers.NewPermissionController(db),
		Category:    controllers.NewCategoryController(db),
		Product:     controllers.NewProductController(db),
		Cart:        controllers.NewCartController(db),
		Order:       controllers.NewOrderController(db),
		Address:     controllers.NewAddressController(db),
	}
	log.Println("✓ Controllers initialized successfully")

	// Setup routes
	log.Println("🛣️  Setting up routes...")
	router := routes.SetupRoutes(cfg, db, ctrl)
	log.Println("✓ Routes configured successfully")

	apiURL := fmt.Sprintf("http://%s:%s", cfg.APIHost, cfg.Port)

	log.Println("════════════════════════════════════════════════════════════")
	log.Printf("✓ Server ready on port %s", cfg.Port)
	log.Printf("📊 Health check: %s/health", apiURL)
	log.Println("════════════════════════════════════════════════════════════")

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Failed to start server:", err)
	}
}

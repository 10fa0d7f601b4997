package main

import (
	"log"
	"time"

	"github.com/Arzish122/fullstack-ecommerce/config"
	"github.com/Arzish122/fullstack-ecommerce/middleware"
	"github.com/Arzish122/fullstack-ecommerce/routes"
	"github.com/Arzish122/fullstack-ecommerce/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("✅ Starting storefront API...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	// Init DB
	db, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	// Gin setup
	r := gin.Default()
	r.Use(middleware.RequestID)

	// CORS settings: the storefront and the admin dashboard are served
	// from other origins.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	// Serve product images
	r.Static("/images", cfg.ImagesDir)

	// Setup routes
	routes.SetupRoutes(r, db)

	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

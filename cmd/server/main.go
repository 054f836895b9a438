package main

import (
	"fmt"
	"log"
	"os"

	"github.com/foodinfo/backend/config"
	httpDelivery "github.com/foodinfo/backend/internal/delivery/http"
	"github.com/foodinfo/backend/internal/infrastructure/usda"
	"github.com/foodinfo/backend/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	// A local .env next to the binary is the development way to supply the
	// USDA key; absence is fine in deployed environments.
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting FoodInfo Backend v%s", httpDelivery.Version)
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	usdaClient := usda.NewClient(cfg.USDA.APIKey, cfg.USDA.BaseURL, cfg.USDA.Timeout)

	if cfg.USDA.APIKey != "" {
		log.Printf("USDA API configured: %s", cfg.USDA.BaseURL)
	} else {
		log.Printf("WARNING: USDA API key not configured - search and lookup will answer 500 until FOODINFO_USDA_API_KEY is set")
	}

	// Initialize usecase layer
	foodService := usecase.NewFoodService(usdaClient)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(foodService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

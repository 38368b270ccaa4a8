package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"retail-insight/ai"
	"retail-insight/config"
	"retail-insight/database"
	"retail-insight/handlers"
	"retail-insight/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	config.Load()
	if config.AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// Persistence is optional; without DATABASE_URL datasets live only in
	// memory for the session.
	if config.AppConfig.DatabaseURL != "" {
		database.Connect(config.AppConfig.DatabaseURL)
		defer database.Close()

		if err := database.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("Failed to ensure database schema: %v", err)
		}
		if err := handlers.RestoreDatasets(context.Background()); err != nil {
			log.Printf("Error restoring persisted datasets: %v", err)
		}
	} else {
		log.Println("DATABASE_URL is not set, running without persistence")
	}

	// The AI boundary is optional too: local analytics stay available when
	// no API key is configured.
	if config.AppConfig.GeminiAPIKey != "" {
		service, err := ai.NewService(
			context.Background(),
			config.AppConfig.GeminiAPIKey,
			config.AppConfig.GeminiModels,
			config.AppConfig.AIAttemptTimeout,
		)
		if err != nil {
			log.Fatalf("Failed to initialize AI service: %v", err)
		}
		defer service.Close()
		handlers.UseAI(service)
	} else {
		log.Println("GEMINI_API_KEY is not set, AI endpoints disabled")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024, // spreadsheet uploads
	})

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	addr := ":3000"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	// Start server
	log.Fatal(app.Listen(addr))
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"app/config"
	"app/routes"
	"app/scheduler"
	"app/store"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Set up the application configuration
	config.AppConfig = config.Config{
		Port:        getenv("PORT", "3000"),
		StoreDriver: getenv("STORE_DRIVER", "sqlite"),
		StorePath:   getenv("STORE_PATH", "juiceshop.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	// Initialize the document store
	driver, err := newDriver()
	if err != nil {
		log.Fatalf("Unable to initialize store: %v", err)
	}
	store.Init(driver)
	defer store.Close()

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start the daily summary scheduler
	sched := scheduler.New()
	sched.Start()
	defer sched.Stop()

	// Start server
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

func newDriver() (store.Driver, error) {
	switch config.AppConfig.StoreDriver {
	case "postgres":
		if config.AppConfig.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is not set")
		}
		return store.NewPostgresDriver(context.Background(), config.AppConfig.DatabaseURL)
	case "memory":
		return store.NewMemoryDriver(nil), nil
	default:
		return store.NewSQLiteDriver(config.AppConfig.StorePath)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"app/handlers"
)

// SetupRoutes registers all API routes on the app.
func SetupRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Inventory
	api.Get("/inventory", handlers.HandleGetInventory)
	api.Get("/inventory/low-stock", handlers.HandleGetLowStock)
	api.Post("/inventory/purchase", handlers.HandleAddStockPurchase)

	// Products & pricing
	api.Get("/products", handlers.HandleGetProducts)
	api.Put("/products/:productId/markup", handlers.HandleSetProductMarkup)

	// Recipes
	api.Get("/recipes", handlers.HandleGetRecipes)
	api.Put("/recipes/:productId/ingredients", handlers.HandleUpdateRecipeQty)

	// Point of sale
	api.Get("/pos/products/:productId/max-makeable", handlers.HandleGetMaxMakeable)
	api.Post("/pos/sales", handlers.HandleRecordSale)

	// Dashboard
	api.Get("/dashboard/summary", handlers.HandleGetTodaySummary)
	api.Get("/dashboard/top-seller", handlers.HandleGetTopSeller)

	// Demand forecast
	api.Get("/ai/predictions", handlers.HandleGetPredictions)

	// WhatsApp queue
	api.Get("/whatsapp/logs", handlers.HandleGetWhatsAppLogs)
	api.Post("/whatsapp/daily-summary", handlers.HandleSendDailySummary)
}

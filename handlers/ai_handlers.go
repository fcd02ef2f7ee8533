package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"app/ledger"
	"app/models"
	"app/store"
)

// HandleGetPredictions returns tomorrow's demand forecast for every
// product. The forecast is a local heuristic over the trailing 14 days of
// sales; no external service is involved.
func HandleGetPredictions(c *fiber.Ctx) error {
	var preds []models.Prediction
	err := store.View(c.Context(), func(doc *models.Document) error {
		preds = ledger.PredictAll(doc, time.Now())
		return nil
	})
	if err != nil {
		log.Printf("Error computing predictions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Store error"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": preds})
}

package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"app/ledger"
	"app/models"
	"app/store"
	"app/utils"
)

// HandleGetTodaySummary returns the sale count and total amount for the
// current calendar day.
func HandleGetTodaySummary(c *fiber.Ctx) error {
	var summary models.TodaySummary
	err := store.View(c.Context(), func(doc *models.Document) error {
		summary = ledger.TodaySummary(doc, time.Now())
		return nil
	})
	if err != nil {
		log.Printf("Error fetching today summary: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Store error"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"totalSales":      summary.TotalSales,
		"totalAmount":     summary.TotalAmount,
		"formattedAmount": utils.FormatINR(summary.TotalAmount),
	}})
}

// HandleGetTopSeller returns the all-time best selling juice.
func HandleGetTopSeller(c *fiber.Ctx) error {
	var top *models.TopSeller
	err := store.View(c.Context(), func(doc *models.Document) error {
		top = ledger.TopSellingProduct(doc)
		return nil
	})
	if err != nil {
		log.Printf("Error fetching top seller: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Store error"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": top})
}

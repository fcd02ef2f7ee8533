package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"app/ledger"
	"app/models"
	"app/store"
)

// HandleGetInventory returns the current ingredient stock.
func HandleGetInventory(c *fiber.Ctx) error {
	var items []models.Ingredient
	err := store.View(c.Context(), func(doc *models.Document) error {
		items = doc.Inventory
		return nil
	})
	if err != nil {
		log.Printf("Error fetching inventory: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Store error"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": items})
}

// HandleGetLowStock returns the ingredients at or below their reorder level.
func HandleGetLowStock(c *fiber.Ctx) error {
	var items []models.Ingredient
	err := store.View(c.Context(), func(doc *models.Document) error {
		items = ledger.LowStockItems(doc)
		return nil
	})
	if err != nil {
		log.Printf("Error fetching low stock items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Store error"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": items})
}

// HandleAddStockPurchase records a stock purchase for an ingredient and
// folds it into the weighted-average unit cost.
func HandleAddStockPurchase(c *fiber.Ctx) error {
	var req models.StockPurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if req.IngredientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "ingredientId is required"})
	}

	var updated models.Ingredient
	err := store.Update(c.Context(), func(doc *models.Document) error {
		if err := ledger.RecordPurchase(doc, req.IngredientID, req.Qty, req.TotalCost); err != nil {
			return err
		}
		for _, inv := range doc.Inventory {
			if inv.ID == req.IngredientID {
				updated = inv
			}
		}
		return nil
	})
	if err != nil {
		return respondLedgerError(c, "addStockPurchase", err)
	}

	log.Printf("Stock purchase recorded: %s qty=%.2f cost=%.2f", req.IngredientID, req.Qty, req.TotalCost)
	return c.JSON(fiber.Map{"status": "success", "data": updated})
}

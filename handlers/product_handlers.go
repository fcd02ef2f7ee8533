package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"app/ledger"
	"app/models"
	"app/store"
)

// HandleGetProducts returns all products with their derived selling prices.
func HandleGetProducts(c *fiber.Ctx) error {
	var products []models.ProductView
	err := store.View(c.Context(), func(doc *models.Document) error {
		products = ledger.ProductViews(doc)
		return nil
	})
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Store error"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": products})
}

// HandleSetProductMarkup updates a product's markup multiplier.
func HandleSetProductMarkup(c *fiber.Ctx) error {
	productID := c.Params("productId")

	var req models.MarkupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	var price float64
	err := store.Update(c.Context(), func(doc *models.Document) error {
		if err := ledger.SetMarkup(doc, productID, req.Markup); err != nil {
			return err
		}
		price = ledger.SellingPrice(doc, productID)
		return nil
	})
	if err != nil {
		return respondLedgerError(c, "setProductMarkup", err)
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"productId":    productID,
		"markup":       req.Markup,
		"sellingPrice": price,
	}})
}

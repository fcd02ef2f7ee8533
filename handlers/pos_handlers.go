package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"app/ledger"
	"app/models"
	"app/store"
)

// HandleGetMaxMakeable returns how many cups of a product the current
// stock can produce.
func HandleGetMaxMakeable(c *fiber.Ctx) error {
	productID := c.Params("productId")

	var max int
	var known bool
	err := store.View(c.Context(), func(doc *models.Document) error {
		for _, p := range doc.Products {
			if p.ID == productID {
				known = true
			}
		}
		max = ledger.MaxMakeable(doc, productID)
		return nil
	})
	if err != nil {
		log.Printf("Error computing makeable quantity: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Store error"})
	}
	if !known {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{"productId": productID, "maxMakeable": max}})
}

// HandleRecordSale validates and records a checkout. Stock is checked for
// every line before anything is deducted; a failed sale changes nothing.
func HandleRecordSale(c *fiber.Ctx) error {
	var req models.RecordSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	var sale *models.Sale
	err := store.Update(c.Context(), func(doc *models.Document) error {
		var err error
		sale, err = ledger.RecordSale(doc, req.Items, req.PaymentMode, req.CustomerPhone, time.Now())
		return err
	})
	if err != nil {
		return respondLedgerError(c, "recordSale", err)
	}

	log.Printf("Sale recorded: %s amount=%.2f items=%d", sale.ID, sale.Amount, len(sale.Items))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": sale})
}

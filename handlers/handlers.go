package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"app/ledger"
)

// respondLedgerError maps core errors onto HTTP statuses: bad input 400,
// unknown ids 404, stock shortfalls 409, anything else 500.
func respondLedgerError(c *fiber.Ctx, op string, err error) error {
	var validation ledger.ValidationError
	var stock ledger.InsufficientStockError

	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": validation.Error()})
	case errors.As(err, &stock):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": stock.Error()})
	case ledger.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": err.Error()})
	default:
		log.Printf("Error in %s: %v", op, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Store error"})
	}
}

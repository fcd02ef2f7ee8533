package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"app/ledger"
	"app/models"
	"app/store"
)

// HandleGetRecipes returns all recipes with ingredient details and the
// current cost per cup.
func HandleGetRecipes(c *fiber.Ctx) error {
	var recipes []models.RecipeView
	err := store.View(c.Context(), func(doc *models.Document) error {
		recipes = ledger.RecipeViews(doc)
		return nil
	})
	if err != nil {
		log.Printf("Error fetching recipes: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Store error"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": recipes})
}

// HandleUpdateRecipeQty sets the per-cup quantity of an ingredient in a
// product's recipe, adding the line when new. There is no delete: a zero
// quantity neutralizes a line instead.
func HandleUpdateRecipeQty(c *fiber.Ctx) error {
	productID := c.Params("productId")

	var req models.RecipeQtyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if req.IngredientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "ingredientId is required"})
	}

	var costPerCup float64
	err := store.Update(c.Context(), func(doc *models.Document) error {
		if err := ledger.UpsertRecipeLine(doc, productID, req.IngredientID, req.Qty); err != nil {
			return err
		}
		costPerCup = ledger.ProductCost(doc, productID)
		return nil
	})
	if err != nil {
		return respondLedgerError(c, "updateRecipeQty", err)
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"productId":  productID,
		"costPerCup": costPerCup,
	}})
}

// Package ledger implements the inventory, costing, pricing, sales and
// forecasting engine of the shop. Every function operates on the whole
// store document so that callers keep the read-whole/write-whole contract
// of the persistence layer.
package ledger

import (
	"fmt"
	"math"

	"app/models"
	"app/utils"
)

// ProductCost returns the ingredient cost of producing one cup of the
// product, summed over its recipe at current average ingredient costs.
// A product without a recipe costs 0; recipe lines referencing unknown
// ingredients contribute 0.
func ProductCost(doc *models.Document, productID string) float64 {
	recipe := findRecipe(doc, productID)
	if recipe == nil {
		return 0
	}
	var cost float64
	for _, line := range recipe.Ingredients {
		if inv := findIngredient(doc, line.IngredientID); inv != nil {
			cost += inv.AvgCostPerUnit * line.Qty
		}
	}
	return utils.Round2(cost)
}

// RecordPurchase adds purchased stock to an ingredient and folds the
// purchase into its weighted-average unit cost. This is the only place
// AvgCostPerUnit is ever recomputed.
func RecordPurchase(doc *models.Document, ingredientID string, qty, totalCost float64) error {
	if qty <= 0 || math.IsNaN(qty) || math.IsInf(qty, 0) {
		return ValidationError{Field: "qty", Message: "must be a positive number"}
	}
	if totalCost < 0 || math.IsNaN(totalCost) || math.IsInf(totalCost, 0) {
		return ValidationError{Field: "totalCost", Message: "must be a non-negative number"}
	}

	inv := findIngredient(doc, ingredientID)
	if inv == nil {
		return fmt.Errorf("%w: %s", ErrIngredientNotFound, ingredientID)
	}

	unitCost := totalCost / qty
	combined := inv.Qty + qty
	if combined > 0 {
		inv.AvgCostPerUnit = utils.Round2((inv.Qty*inv.AvgCostPerUnit + qty*unitCost) / combined)
	}
	inv.Qty = utils.Round2(combined)
	return nil
}

func findIngredient(doc *models.Document, id string) *models.Ingredient {
	for i := range doc.Inventory {
		if doc.Inventory[i].ID == id {
			return &doc.Inventory[i]
		}
	}
	return nil
}

func findProduct(doc *models.Document, id string) *models.Product {
	for i := range doc.Products {
		if doc.Products[i].ID == id {
			return &doc.Products[i]
		}
	}
	return nil
}

func findRecipe(doc *models.Document, productID string) *models.Recipe {
	for i := range doc.Recipes {
		if doc.Recipes[i].ProductID == productID {
			return &doc.Recipes[i]
		}
	}
	return nil
}

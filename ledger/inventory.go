package ledger

import (
	"fmt"
	"math"

	"app/models"
)

// MaxMakeable returns the maximum whole cups of a product the current
// inventory can produce. A missing recipe, an empty recipe or a missing
// referenced ingredient yields 0. Lines with a zero per-cup quantity are
// non-limiting and are skipped.
func MaxMakeable(doc *models.Document, productID string) int {
	recipe := findRecipe(doc, productID)
	if recipe == nil || len(recipe.Ingredients) == 0 {
		return 0
	}
	max := math.MaxInt
	limited := false
	for _, line := range recipe.Ingredients {
		inv := findIngredient(doc, line.IngredientID)
		if inv == nil {
			return 0
		}
		if line.Qty == 0 {
			continue
		}
		possible := int(math.Floor(inv.Qty / line.Qty))
		if possible < max {
			max = possible
		}
		limited = true
	}
	if !limited {
		return 0
	}
	return max
}

// UpsertRecipeLine sets the per-cup quantity of an ingredient in a
// product's recipe, adding the line when it does not exist yet. Lines are
// never deleted; setting qty to 0 neutralizes an ingredient instead.
func UpsertRecipeLine(doc *models.Document, productID, ingredientID string, qty float64) error {
	if qty < 0 || math.IsNaN(qty) || math.IsInf(qty, 0) {
		return ValidationError{Field: "qty", Message: "must be a non-negative number"}
	}
	recipe := findRecipe(doc, productID)
	if recipe == nil {
		return fmt.Errorf("%w: %s", ErrRecipeNotFound, productID)
	}
	for i := range recipe.Ingredients {
		if recipe.Ingredients[i].IngredientID == ingredientID {
			recipe.Ingredients[i].Qty = qty
			return nil
		}
	}
	recipe.Ingredients = append(recipe.Ingredients, models.RecipeLine{IngredientID: ingredientID, Qty: qty})
	return nil
}

// LowStockItems returns the ingredients at or below their reorder threshold.
func LowStockItems(doc *models.Document) []models.Ingredient {
	items := make([]models.Ingredient, 0)
	for _, inv := range doc.Inventory {
		if inv.Qty <= inv.Reorder {
			items = append(items, inv)
		}
	}
	return items
}

// RecipeViews returns all recipes joined with product and ingredient
// details plus the current per-cup cost.
func RecipeViews(doc *models.Document) []models.RecipeView {
	views := make([]models.RecipeView, 0, len(doc.Recipes))
	for _, r := range doc.Recipes {
		view := models.RecipeView{
			ProductID:   r.ProductID,
			ProductName: r.ProductID,
			Ingredients: make([]models.RecipeLineView, 0, len(r.Ingredients)),
			CostPerCup:  ProductCost(doc, r.ProductID),
		}
		if p := findProduct(doc, r.ProductID); p != nil {
			view.ProductName = p.Name
		}
		for _, line := range r.Ingredients {
			lv := models.RecipeLineView{
				IngredientID:   line.IngredientID,
				IngredientName: line.IngredientID,
				Qty:            line.Qty,
			}
			if inv := findIngredient(doc, line.IngredientID); inv != nil {
				lv.IngredientName = inv.Name
				lv.Unit = inv.Unit
			}
			view.Ingredients = append(view.Ingredients, lv)
		}
		views = append(views, view)
	}
	return views
}

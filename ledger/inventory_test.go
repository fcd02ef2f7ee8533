package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/models"
)

func TestMaxMakeableTakesMinimumAcrossLines(t *testing.T) {
	doc := seedDoc()

	// Mango limits: 10kg / 0.25kg per cup = 40 cups, well below the
	// sugar, ice and cup limits.
	assert.Equal(t, 40, MaxMakeable(doc, "p_mango"))
	assert.Equal(t, 40, MaxMakeable(doc, "p_orange")) // orange: 12/0.3
}

func TestMaxMakeableWithoutRecipe(t *testing.T) {
	doc := seedDoc()
	assert.Equal(t, 0, MaxMakeable(doc, "p_unknown"))
}

func TestMaxMakeableEmptyRecipe(t *testing.T) {
	doc := seedDoc()
	doc.Recipes = append(doc.Recipes, models.Recipe{ProductID: "p_empty"})
	assert.Equal(t, 0, MaxMakeable(doc, "p_empty"))
}

func TestMaxMakeableMissingIngredient(t *testing.T) {
	doc := seedDoc()
	doc.Recipes[0].Ingredients = append(doc.Recipes[0].Ingredients, models.RecipeLine{IngredientID: "i_missing", Qty: 0.5})
	assert.Equal(t, 0, MaxMakeable(doc, "p_mango"))
}

func TestMaxMakeableZeroQtyLineIsNonLimiting(t *testing.T) {
	doc := seedDoc()
	require.NoError(t, UpsertRecipeLine(doc, "p_mango", "i_sugar", 0))
	assert.Equal(t, 40, MaxMakeable(doc, "p_mango"))

	// A recipe consisting only of zero lines can't bound production.
	doc.Recipes = append(doc.Recipes, models.Recipe{
		ProductID:   "p_free",
		Ingredients: []models.RecipeLine{{IngredientID: "i_ice", Qty: 0}},
	})
	assert.Equal(t, 0, MaxMakeable(doc, "p_free"))
}

func TestMaxMakeableShrinksAsStockShrinks(t *testing.T) {
	doc := seedDoc()
	prev := MaxMakeable(doc, "p_mango")
	for i := 0; i < 5; i++ {
		inv := findIngredient(doc, "i_mango")
		inv.Qty -= 1.5
		current := MaxMakeable(doc, "p_mango")
		assert.LessOrEqual(t, current, prev)
		prev = current
	}
}

func TestUpsertRecipeLineOverwritesExisting(t *testing.T) {
	doc := seedDoc()
	require.NoError(t, UpsertRecipeLine(doc, "p_mango", "i_mango", 0.5))

	recipe := findRecipe(doc, "p_mango")
	assert.Len(t, recipe.Ingredients, 4)
	assert.InDelta(t, 0.5, recipe.Ingredients[0].Qty, 1e-9)
	assert.Equal(t, 20, MaxMakeable(doc, "p_mango"))
}

func TestUpsertRecipeLineAddsNewLine(t *testing.T) {
	doc := seedDoc()
	require.NoError(t, UpsertRecipeLine(doc, "p_sugarcane", "i_orange", 0.1))

	recipe := findRecipe(doc, "p_sugarcane")
	assert.Len(t, recipe.Ingredients, 4)
	assert.Equal(t, "i_orange", recipe.Ingredients[3].IngredientID)
}

func TestUpsertRecipeLineUnknownProduct(t *testing.T) {
	doc := seedDoc()
	err := UpsertRecipeLine(doc, "p_unknown", "i_mango", 0.1)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestUpsertRecipeLineRejectsNegativeQty(t *testing.T) {
	doc := seedDoc()
	err := UpsertRecipeLine(doc, "p_mango", "i_mango", -0.1)
	var validation ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestLowStockItems(t *testing.T) {
	doc := seedDoc()
	assert.Empty(t, LowStockItems(doc))

	findIngredient(doc, "i_sugar").Qty = 2 // at threshold counts as low
	findIngredient(doc, "i_ice").Qty = 1

	low := LowStockItems(doc)
	require.Len(t, low, 2)
	assert.Equal(t, "i_sugar", low[0].ID)
	assert.Equal(t, "i_ice", low[1].ID)
}

func TestRecipeViewsJoinNamesAndCost(t *testing.T) {
	doc := seedDoc()
	views := RecipeViews(doc)
	require.Len(t, views, 3)

	mango := views[0]
	assert.Equal(t, "Mango Juice", mango.ProductName)
	assert.InDelta(t, 33.9, mango.CostPerCup, 1e-9)
	require.Len(t, mango.Ingredients, 4)
	assert.Equal(t, "Mango", mango.Ingredients[0].IngredientName)
	assert.Equal(t, "kg", mango.Ingredients[0].Unit)
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDocument returns the initial store contents for a fresh shop:
// three juices, their recipes, a starter inventory and the default
// notification templates.
func DefaultDocument() *Document {
	now := time.Now()
	return &Document{
		Products: []Product{
			{ID: "p_mango", Name: "Mango Juice", Image: "https://images.unsplash.com/photo-1524156868115-e696b44983db?w=1600&auto=format&fit=crop&q=80", Markup: 1.6},
			{ID: "p_orange", Name: "Orange Juice", Image: "https://images.unsplash.com/photo-1547514701-42782101795e?q=80&w=1200&auto=format&fit=crop", Markup: 1.5},
			{ID: "p_sugarcane", Name: "Sugarcane Juice", Image: "https://images.unsplash.com/photo-1677146334971-3fb697b4060e?w=1600&auto=format&fit=crop&q=80", Markup: 1.7},
		},
		Inventory: []Ingredient{
			{ID: "i_mango", Name: "Mango", Unit: "kg", Qty: 10, Reorder: 3, AvgCostPerUnit: 120},
			{ID: "i_orange", Name: "Orange", Unit: "kg", Qty: 12, Reorder: 4, AvgCostPerUnit: 90},
			{ID: "i_sugar", Name: "Sugar", Unit: "kg", Qty: 8, Reorder: 2, AvgCostPerUnit: 45},
			{ID: "i_ice", Name: "Ice", Unit: "kg", Qty: 15, Reorder: 5, AvgCostPerUnit: 10},
			{ID: "i_cups", Name: "Cups", Unit: "pcs", Qty: 200, Reorder: 50, AvgCostPerUnit: 2},
		},
		Recipes: []Recipe{
			{ProductID: "p_mango", Ingredients: []RecipeLine{
				{IngredientID: "i_mango", Qty: 0.25},
				{IngredientID: "i_sugar", Qty: 0.02},
				{IngredientID: "i_ice", Qty: 0.1},
				{IngredientID: "i_cups", Qty: 1},
			}},
			{ProductID: "p_orange", Ingredients: []RecipeLine{
				{IngredientID: "i_orange", Qty: 0.3},
				{IngredientID: "i_sugar", Qty: 0.02},
				{IngredientID: "i_ice", Qty: 0.1},
				{IngredientID: "i_cups", Qty: 1},
			}},
			{ProductID: "p_sugarcane", Ingredients: []RecipeLine{
				{IngredientID: "i_sugar", Qty: 0.04},
				{IngredientID: "i_ice", Qty: 0.15},
				{IngredientID: "i_cups", Qty: 1},
			}},
		},
		Sales: []Sale{},
		WhatsAppLogs: []WhatsAppLog{
			{
				ID:       uuid.NewString(),
				Time:     now,
				To:       "",
				Message:  "Welcome to Juice Shop AI POS ready! Enjoy your day.",
				Template: TemplateSystem,
				Status:   StatusSent,
			},
		},
		Settings: Settings{
			OwnerPhone:            "",
			BillTemplate:          "Thanks for visiting! Your total: ₹{amount}.",
			DailyTemplate:         "Today's Sales: ₹{amount}. Top Juice: {juice}.",
			TimezoneOffsetMinutes: offsetMinutes(now),
			LastSummaryDate:       "",
		},
	}
}

func offsetMinutes(t time.Time) int {
	_, secs := t.Zone()
	return secs / 60
}

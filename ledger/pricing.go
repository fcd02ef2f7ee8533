package ledger

import (
	"fmt"
	"math"

	"app/models"
	"app/utils"
)

// SellingPrice derives the current price of one cup from the recipe cost
// and the product's markup multiplier. Unknown products price at 0.
func SellingPrice(doc *models.Document, productID string) float64 {
	product := findProduct(doc, productID)
	if product == nil {
		return 0
	}
	return utils.Round2(ProductCost(doc, productID) * product.Markup)
}

// SetMarkup updates a product's markup multiplier.
func SetMarkup(doc *models.Document, productID string, markup float64) error {
	if markup < 0 || math.IsNaN(markup) || math.IsInf(markup, 0) {
		return ValidationError{Field: "markup", Message: "must be a non-negative number"}
	}
	product := findProduct(doc, productID)
	if product == nil {
		return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	product.Markup = markup
	return nil
}

// ProductViews returns all products with their derived selling prices.
func ProductViews(doc *models.Document) []models.ProductView {
	views := make([]models.ProductView, 0, len(doc.Products))
	for _, p := range doc.Products {
		views = append(views, models.ProductView{
			Product:      p,
			SellingPrice: SellingPrice(doc, p.ID),
		})
	}
	return views
}

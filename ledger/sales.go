package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"app/models"
	"app/utils"
)

// RecordSale validates and records a sale. Every line is checked against
// the current makeable quantity before any stock is touched, so a failing
// sale leaves the document completely unchanged. On success the recipe
// ingredients are deducted, the sale is appended and, when a customer
// phone is present, a bill notification is queued.
func RecordSale(doc *models.Document, items []models.SaleItemRequest, paymentMode, customerPhone string, now time.Time) (*models.Sale, error) {
	if len(items) == 0 {
		return nil, ValidationError{Field: "items", Message: "at least one item is required"}
	}
	for _, it := range items {
		if it.Qty <= 0 {
			return nil, ValidationError{Field: "qty", Message: "must be a positive integer"}
		}
		product := findProduct(doc, it.ProductID)
		if product == nil {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, it.ProductID)
		}
		if it.Qty > MaxMakeable(doc, it.ProductID) {
			return nil, InsufficientStockError{Product: product.Name}
		}
	}

	// All lines validated; deduct stock per recipe.
	for _, it := range items {
		recipe := findRecipe(doc, it.ProductID)
		if recipe == nil {
			continue
		}
		for _, line := range recipe.Ingredients {
			if inv := findIngredient(doc, line.IngredientID); inv != nil {
				inv.Qty = utils.Round2(inv.Qty - line.Qty*float64(it.Qty))
			}
		}
	}

	saleItems := make([]models.SaleItem, 0, len(items))
	var amount float64
	for _, it := range items {
		price := SellingPrice(doc, it.ProductID)
		saleItems = append(saleItems, models.SaleItem{ProductID: it.ProductID, Qty: it.Qty, Price: price})
		amount += price * float64(it.Qty)
	}

	sale := models.Sale{
		ID:            uuid.NewString(),
		Time:          now,
		Items:         saleItems,
		Amount:        utils.Round2(amount),
		PaymentMode:   paymentMode,
		CustomerPhone: customerPhone,
	}
	doc.Sales = append(doc.Sales, sale)

	if customerPhone != "" {
		doc.WhatsAppLogs = append(doc.WhatsAppLogs, models.WhatsAppLog{
			ID:       uuid.NewString(),
			Time:     now,
			To:       customerPhone,
			Message:  utils.RenderAmount(doc.Settings.BillTemplate, sale.Amount),
			Template: models.TemplateCustomerBill,
			Status:   models.StatusQueued,
		})
	}

	return &sale, nil
}

// TodaySummary returns the count and total amount of sales recorded since
// local midnight of now's day.
func TodaySummary(doc *models.Document, now time.Time) models.TodaySummary {
	start := startOfDay(now)
	var summary models.TodaySummary
	var total float64
	for _, s := range doc.Sales {
		if !s.Time.Before(start) {
			summary.TotalSales++
			total += s.Amount
		}
	}
	summary.TotalAmount = utils.Round2(total)
	return summary
}

// TopSellingProduct returns the product with the highest cumulative
// quantity sold across all recorded sales. Ties resolve to the product
// listed first. Returns nil when the shop has no products.
func TopSellingProduct(doc *models.Document) *models.TopSeller {
	counts := make(map[string]int)
	for _, s := range doc.Sales {
		for _, it := range s.Items {
			counts[it.ProductID] += it.Qty
		}
	}
	var best *models.TopSeller
	for _, p := range doc.Products {
		qty := counts[p.ID]
		if best == nil || qty > best.Qty {
			best = &models.TopSeller{ID: p.ID, Name: p.Name, Qty: qty}
		}
	}
	return best
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package ledger

import (
	"math"
	"time"

	"app/models"
)

const (
	historyDays       = 14
	defaultBaseline   = 10
	dayDemandFactor   = 1.15
	nightDemandFactor = 0.95

	dayComment   = "Hot hours ahead, expect higher demand."
	nightComment = "Mild weather, average demand."
)

// SalesHistory returns the quantity of a product sold on each of the
// trailing 14 local calendar days, oldest day first.
func SalesHistory(doc *models.Document, productID string, now time.Time) []int {
	history := make([]int, 0, historyDays)
	for d := historyDays - 1; d >= 0; d-- {
		start := startOfDay(now).AddDate(0, 0, -d)
		end := start.AddDate(0, 0, 1)
		qty := 0
		for _, s := range doc.Sales {
			if s.Time.Before(start) || !s.Time.Before(end) {
				continue
			}
			for _, it := range s.Items {
				if it.ProductID == productID {
					qty += it.Qty
				}
			}
		}
		history = append(history, qty)
	}
	return history
}

// Predict projects tomorrow's demand for a product from its recent daily
// history: mean plus linear trend, scaled by a day/night demand factor.
// The factor is a deliberately mocked stand-in for an external weather
// signal. Confidence grows with trend magnitude and is clamped to
// [0.5, 0.95].
func Predict(doc *models.Document, productID string, now time.Time) models.Prediction {
	history := SalesHistory(doc, productID, now)

	avg := float64(defaultBaseline)
	if len(history) > 0 {
		sum := 0
		for _, q := range history {
			sum += q
		}
		avg = float64(sum) / float64(len(history))
	}

	trend := 0.0
	if len(history) > 3 {
		trend = float64(history[len(history)-1]-history[0]) / float64(len(history)-1)
	}

	factor, comment := demandFactor(now)
	base := avg + trend
	predicted := int(math.Round(base * factor))
	if predicted < 0 {
		predicted = 0
	}
	confidence := 0.6 + math.Abs(trend)*0.05
	if confidence < 0.5 {
		confidence = 0.5
	}
	if confidence > 0.95 {
		confidence = 0.95
	}

	pred := models.Prediction{
		ProductID:    productID,
		ProductName:  productID,
		PredictedQty: predicted,
		Confidence:   confidence,
		Comment:      comment,
	}
	if p := findProduct(doc, productID); p != nil {
		pred.ProductName = p.Name
	}
	return pred
}

// PredictAll returns predictions for every product in the shop.
func PredictAll(doc *models.Document, now time.Time) []models.Prediction {
	preds := make([]models.Prediction, 0, len(doc.Products))
	for _, p := range doc.Products {
		preds = append(preds, Predict(doc, p.ID, now))
	}
	return preds
}

// demandFactor mocks a weather signal: daytime hours boost cold drink
// sales, the rest of the day dampens them.
func demandFactor(now time.Time) (float64, string) {
	hour := now.Hour()
	if hour >= 11 && hour <= 18 {
		return dayDemandFactor, dayComment
	}
	return nightDemandFactor, nightComment
}

package models

import (
	"time"
)

// Notification statuses for WhatsApp log records.
const (
	StatusQueued = "QUEUED"
	StatusSent   = "SENT"
)

// Notification template tags.
const (
	TemplateSystem       = "System"
	TemplateCustomerBill = "Customer Bill"
	TemplateDailySummary = "Daily Summary"
)

// --- Core Models ---

// Product is a sellable juice. The selling price is never stored; it is
// derived from the recipe cost and the markup multiplier.
type Product struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Image  string  `json:"image"`
	Markup float64 `json:"markup"`
}

// Ingredient is a raw material tracked in inventory. AvgCostPerUnit is a
// quantity-weighted average recomputed on every stock purchase.
type Ingredient struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Unit           string  `json:"unit"`
	Qty            float64 `json:"qty"`
	Reorder        float64 `json:"reorder"`
	AvgCostPerUnit float64 `json:"avgCostPerUnit"`
}

// RecipeLine defines how much of one ingredient a single cup consumes.
type RecipeLine struct {
	IngredientID string  `json:"ingredientId"`
	Qty          float64 `json:"qty"`
}

// Recipe maps a product to its ingredient consumption, one recipe per product.
type Recipe struct {
	ProductID   string       `json:"productId"`
	Ingredients []RecipeLine `json:"ingredients"`
}

// SaleItem is an individual line within a Sale.
type SaleItem struct {
	ProductID string  `json:"productId"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

// Sale is a recorded transaction. Sales are append-only and never edited.
type Sale struct {
	ID            string     `json:"id"`
	Time          time.Time  `json:"time"`
	Items         []SaleItem `json:"items"`
	Amount        float64    `json:"amount"`
	PaymentMode   string     `json:"paymentMode"`
	CustomerPhone string     `json:"customerPhone"`
}

// WhatsAppLog is an outbound message record. The core only appends QUEUED
// records; an external sender drains the queue and may mark them SENT.
type WhatsAppLog struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	To       string    `json:"to"`
	Message  string    `json:"message"`
	Template string    `json:"template"`
	Status   string    `json:"status"`
}

// Settings holds the singleton shop configuration. LastSummaryDate is a
// YYYY-MM-DD key guarding against duplicate automatic daily summaries.
type Settings struct {
	OwnerPhone            string `json:"ownerPhone"`
	BillTemplate          string `json:"billTemplate"`
	DailyTemplate         string `json:"dailyTemplate"`
	TimezoneOffsetMinutes int    `json:"timezoneOffsetMinutes"`
	LastSummaryDate       string `json:"lastSummaryDate"`
}

// Document is the whole persisted store. Every operation reads it in full,
// mutates the in-memory copy and writes it back in full.
type Document struct {
	Products     []Product     `json:"Products"`
	Inventory    []Ingredient  `json:"Inventory"`
	Recipes      []Recipe      `json:"Recipes"`
	Sales        []Sale        `json:"Sales"`
	WhatsAppLogs []WhatsAppLog `json:"WhatsApp_Logs"`
	Settings     Settings      `json:"Settings"`
}

// --- Derived Views ---

// ProductView is a Product with its current derived selling price.
type ProductView struct {
	Product
	SellingPrice float64 `json:"sellingPrice"`
}

// RecipeLineView is a recipe line joined with ingredient details.
type RecipeLineView struct {
	IngredientID   string  `json:"ingredientId"`
	IngredientName string  `json:"ingredientName"`
	Unit           string  `json:"unit"`
	Qty            float64 `json:"qty"`
}

// RecipeView is a recipe joined with product and ingredient names plus the
// current cost of producing one cup.
type RecipeView struct {
	ProductID   string           `json:"productId"`
	ProductName string           `json:"productName"`
	Ingredients []RecipeLineView `json:"ingredients"`
	CostPerCup  float64          `json:"costPerCup"`
}

// Prediction is the demand forecast for one product.
type Prediction struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	PredictedQty int     `json:"predictedQty"`
	Confidence   float64 `json:"confidence"`
	Comment      string  `json:"comment"`
}

// TodaySummary aggregates the current calendar day's sales.
type TodaySummary struct {
	TotalSales  int     `json:"totalSales"`
	TotalAmount float64 `json:"totalAmount"`
}

// TopSeller is the product with the highest cumulative quantity sold.
type TopSeller struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// --- Request Payloads ---

type StockPurchaseRequest struct {
	IngredientID string  `json:"ingredientId"`
	Qty          float64 `json:"qty"`
	TotalCost    float64 `json:"totalCost"`
}

type MarkupRequest struct {
	Markup float64 `json:"markup"`
}

type RecipeQtyRequest struct {
	IngredientID string  `json:"ingredientId"`
	Qty          float64 `json:"qty"`
}

type SaleItemRequest struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

type RecordSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	PaymentMode   string            `json:"paymentMode"`
	CustomerPhone string            `json:"customerPhone"`
}

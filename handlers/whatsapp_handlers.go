package handlers

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"app/ledger"
	"app/models"
	"app/store"
	"app/utils"
)

// HandleGetWhatsAppLogs returns the outbound message queue newest first,
// paginated.
func HandleGetWhatsAppLogs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "20"))

	var logs []models.WhatsAppLog
	err := store.View(c.Context(), func(doc *models.Document) error {
		logs = ledger.Logs(doc)
		return nil
	})
	if err != nil {
		log.Printf("Error fetching WhatsApp logs: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Store error"})
	}

	pagination := utils.CreatePagination(len(logs), page, pageSize)
	start, end := pagination.Bounds()

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   logs[start:end],
		"meta":   pagination,
	})
}

// HandleSendDailySummary queues the owner's daily summary immediately.
// Unlike the 9 PM scheduler this manual trigger is never throttled.
func HandleSendDailySummary(c *fiber.Ctx) error {
	var queued models.WhatsAppLog
	err := store.Update(c.Context(), func(doc *models.Document) error {
		ledger.EnqueueDailySummary(doc, time.Now())
		queued = doc.WhatsAppLogs[len(doc.WhatsAppLogs)-1]
		return nil
	})
	if err != nil {
		log.Printf("Error queueing daily summary: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Store error"})
	}

	log.Printf("Daily summary queued for %s", queued.To)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": queued})
}

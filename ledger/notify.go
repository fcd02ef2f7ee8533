package ledger

import (
	"time"

	"github.com/google/uuid"

	"app/models"
	"app/utils"
)

const summaryHour = 21

// Logs returns the WhatsApp log records newest first.
func Logs(doc *models.Document) []models.WhatsAppLog {
	logs := make([]models.WhatsAppLog, len(doc.WhatsAppLogs))
	copy(logs, doc.WhatsAppLogs)
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	return logs
}

// EnqueueDailySummary queues the owner's daily summary message: today's
// total sale amount and the all-time top selling juice.
func EnqueueDailySummary(doc *models.Document, now time.Time) {
	summary := TodaySummary(doc, now)
	topName := ""
	if top := TopSellingProduct(doc); top != nil {
		topName = top.Name
	}
	doc.WhatsAppLogs = append(doc.WhatsAppLogs, models.WhatsAppLog{
		ID:       uuid.NewString(),
		Time:     now,
		To:       doc.Settings.OwnerPhone,
		Message:  utils.RenderDailySummary(doc.Settings.DailyTemplate, summary.TotalAmount, topName),
		Template: models.TemplateDailySummary,
		Status:   models.StatusQueued,
	})
}

// MaybeScheduleDailySummary enqueues the automatic daily summary when the
// local hour has reached 21:00 and none was queued today. The date-key
// guard makes repeated invocations within the same day no-ops, so callers
// may poll freely. Reports whether a summary was queued.
func MaybeScheduleDailySummary(doc *models.Document, now time.Time) bool {
	todayKey := DateKey(now)
	if now.Hour() < summaryHour || doc.Settings.LastSummaryDate == todayKey {
		return false
	}
	EnqueueDailySummary(doc, now)
	doc.Settings.LastSummaryDate = todayKey
	return true
}

// DateKey formats a time as the YYYY-MM-DD key used for the once-per-day
// summary guard.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"app/ledger"
	"app/models"
	"app/store"
)

// Scheduler polls the daily-summary check. The check itself is idempotent
// per calendar day (guarded by the lastSummaryDate key), so the poll runs
// once at startup and then on a fixed interval without further state.
type Scheduler struct {
	cron *cron.Cron
}

// New creates the scheduler.
func New() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

// Start runs the summary check immediately and every ten minutes after.
func (s *Scheduler) Start() {
	s.runDailySummaryCheck()

	if _, err := s.cron.AddFunc("*/10 * * * *", s.runDailySummaryCheck); err != nil {
		log.Printf("Error scheduling daily summary check: %v", err)
		return
	}
	s.cron.Start()
	log.Println("Daily summary scheduler started")
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runDailySummaryCheck() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	queued := false
	err := store.Update(ctx, func(doc *models.Document) error {
		queued = ledger.MaybeScheduleDailySummary(doc, time.Now())
		return nil
	})
	if err != nil {
		log.Printf("Error running daily summary check: %v", err)
		return
	}
	if queued {
		log.Println("Automatic daily summary queued")
	}
}

package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"studyhub/backend/metrics"
	"studyhub/backend/repository"
)

type reminderStore interface {
	DueReminders(ctx context.Context, now time.Time, limit int) ([]repository.DueReminder, error)
	MarkReminderSent(ctx context.Context, noteID string, at time.Time) error
}

// ReminderWorker polls for notes whose reminder is due and emails their owners.
type ReminderWorker struct {
	store     reminderStore
	mailer    Mailer
	logger    *log.Logger
	interval  time.Duration
	batchSize int
	now       func() time.Time
}

func NewReminderWorker(store reminderStore, mailer Mailer, logger *log.Logger, interval time.Duration) *ReminderWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ReminderWorker{
		store:     store,
		mailer:    mailer,
		logger:    logger,
		interval:  interval,
		batchSize: 100,
		now:       time.Now,
	}
}

// Start runs until ctx is cancelled.
func (w *ReminderWorker) Start(ctx context.Context) {
	w.logger.Printf("Reminder worker started (interval %s)", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.RunOnce(ctx); err != nil {
			w.logger.Printf("reminder run failed: %v", err)
		}

		select {
		case <-ctx.Done():
			w.logger.Printf("Reminder worker stopped")
			return
		case <-ticker.C:
		}
	}
}

// RunOnce sends every reminder due now and returns how many were delivered.
// A failed send leaves the note unmarked so the next run retries it.
func (w *ReminderWorker) RunOnce(ctx context.Context) (int, error) {
	now := w.now()
	due, err := w.store.DueReminders(ctx, now, w.batchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, r := range due {
		err := w.mailer.Send(ctx, Message{
			ToName:    r.User.DisplayName(),
			ToAddress: r.User.Email,
			Subject:   "Reminder: " + r.Note.Title,
			Body:      reminderBody(r),
		})
		metrics.RecordReminder(err)
		if err != nil {
			w.logger.Printf("reminder for note %s failed: %v", r.Note.ID, err)
			continue
		}

		if err := w.store.MarkReminderSent(ctx, r.Note.ID, now); err != nil {
			w.logger.Printf("could not mark note %s as reminded: %v", r.Note.ID, err)
			continue
		}
		sent++
	}
	return sent, nil
}

func reminderBody(r repository.DueReminder) string {
	when := ""
	if r.Note.ReminderDate != nil {
		when = r.Note.ReminderDate.UTC().Format("2006-01-02 15:04 MST")
	}
	return fmt.Sprintf("Hi %s,\n\nYou asked to be reminded about \"%s\" at %s.\n\n%s\n",
		r.User.DisplayName(), r.Note.Title, when, r.Note.Content)
}

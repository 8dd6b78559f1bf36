package services

import (
	"fmt"
	"log"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"

	"openshelf/internal/core/domain"
)

// ReminderService runs the daily due-date sweep: it publishes dispatcher
// events for loans that are overdue and for loans due the next day.
// The sweep only reads state and notifies — it never mutates a loan.
type ReminderService struct {
	catalog  Catalog
	ledger   Ledger
	policies *domain.PolicyTable
	notifier *NotificationService
	cron     *cron.Cron
	spec     string
}

// NewReminderService creates a reminder service with a cron spec such as
// "30 8 * * *" (daily at 08:30)
func NewReminderService(catalog Catalog, ledger Ledger, policies *domain.PolicyTable, notifier *NotificationService, spec string) *ReminderService {
	return &ReminderService{
		catalog:  catalog,
		ledger:   ledger,
		policies: policies,
		notifier: notifier,
		cron:     cron.New(),
		spec:     spec,
	}
}

// Start schedules the sweep and launches the cron runner
func (s *ReminderService) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.RunSweep(time.Now())
	})
	if err != nil {
		return errors.Wrapf(err, "scheduling reminder sweep %q", s.spec)
	}

	s.cron.Start()
	log.Printf("🚀 ReminderService started (schedule: %s)", s.spec)
	return nil
}

// Stop halts the cron runner
func (s *ReminderService) Stop() {
	s.cron.Stop()
	log.Println("🛑 ReminderService stopped")
}

// RunSweep publishes overdue and due-tomorrow reminders for all open
// loans as of the given time
func (s *ReminderService) RunSweep(now time.Time) {
	overdue, dueSoon := 0, 0

	for _, rec := range s.ledger.ActiveLoans("") {
		item := s.catalog.FindItemByID(rec.ItemID)
		patron := s.catalog.FindPatronByID(rec.PatronID)
		if item == nil || patron == nil {
			continue
		}

		switch {
		case rec.Overdue(now):
			fine := 0.0
			if policy, err := s.policies.Lookup(patron.Tier); err == nil {
				fine = domain.CalculateFine(rec, now, policy)
			}
			s.notifier.Publish(item, fmt.Sprintf("%s: '%s' is %d day(s) overdue, fine so far LKR %.2f",
				patron.Name, item.Title, rec.OverdueDays(now), fine))
			overdue++

		case dueTomorrow(rec.DueDate, now):
			s.notifier.Publish(item, fmt.Sprintf("%s: '%s' is due back tomorrow (%s)",
				patron.Name, item.Title, rec.DueDate.Format("2006-01-02")))
			dueSoon++
		}
	}

	if overdue > 0 || dueSoon > 0 {
		log.Printf("📅 Reminder sweep: %d overdue, %d due tomorrow", overdue, dueSoon)
	}
}

func dueTomorrow(due, now time.Time) bool {
	tomorrow := now.AddDate(0, 0, 1)
	return due.Year() == tomorrow.Year() && due.YearDay() == tomorrow.YearDay()
}

package services

import (
	"context"
	"log"

	"shelftrack/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// ReminderService runs a daily sweep over overdue issuances and logs them
// so operators can chase returns. Opt-in via REMINDER_CRON_ENABLED; it does
// not touch the HTTP contract.
type ReminderService struct {
	issuanceRepo repositories.IssuanceRepository
	cron         *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(issuanceRepo repositories.IssuanceRepository) *ReminderService {
	return &ReminderService{
		issuanceRepo: issuanceRepo,
		cron:         cron.New(),
	}
}

// Start schedules the daily overdue sweep (08:30)
func (s *ReminderService) Start() {
	if _, err := s.cron.AddFunc("30 8 * * *", s.sweepOverdue); err != nil {
		log.Printf("❌ Failed to schedule overdue sweep: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🚀 ReminderService started (daily overdue sweep at 08:30)")
}

// Stop stops the scheduler
func (s *ReminderService) Stop() {
	s.cron.Stop()
	log.Println("🛑 ReminderService stopped")
}

func (s *ReminderService) sweepOverdue() {
	overdue, err := s.issuanceRepo.ListOverdue(context.Background())
	if err != nil {
		log.Printf("❌ Overdue sweep query error: %v", err)
		return
	}

	if len(overdue) == 0 {
		log.Println("✅ Overdue sweep: no overdue issuances")
		return
	}

	log.Printf("⚠️ Overdue sweep: %d overdue issuance(s)", len(overdue))
	for _, iss := range overdue {
		memberName := ""
		bookName := ""
		if iss.Member != nil {
			memberName = iss.Member.MemName
		}
		if iss.Book != nil {
			bookName = iss.Book.BookName
		}
		log.Printf("⚠️ Overdue: issuance #%d book=%q member=%q due=%s",
			iss.IssuanceID, bookName, memberName,
			iss.TargetReturnDate.Format("2006-01-02"))
	}
}

package scheduler

import (
	"context"
	"time"

	"cycle_companion_bot/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ReminderScheduler drives the reminder service from cron. Each tick
// works on a fresh snapshot: predictions are re-derived inside the
// service on every run, never carried over between ticks.
type ReminderScheduler struct {
	cronEngine              *cron.Cron
	reminderService         app.ReminderService
	logger                  *logrus.Entry
	cronSpecDailyCheckIn    string
	cronSpecPredictionCheck string
}

func NewReminderScheduler(
	reminderService app.ReminderService,
	logger *logrus.Entry,
	cronSpecDailyCheckIn string, // e.g., "0 20 * * *" (8:00 PM daily)
	cronSpecPredictionCheck string, // e.g., "0 9 * * *" (9:00 AM daily)
) *ReminderScheduler {
	return &ReminderScheduler{
		cronEngine:              cron.New(cron.WithLocation(time.Local)), // server's local time for cron
		reminderService:         reminderService,
		logger:                  logger,
		cronSpecDailyCheckIn:    cronSpecDailyCheckIn,
		cronSpecPredictionCheck: cronSpecPredictionCheck,
	}
}

func (s *ReminderScheduler) Start() {
	s.logger.Info("Starting reminder scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpecDailyCheckIn, func() {
		s.logger.Info("Cron job triggered for daily check-ins.")
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := s.reminderService.SendDailyCheckIns(ctx); err != nil {
			s.logger.WithError(err).Error("Error during daily check-in processing")
		}
	})
	if err != nil {
		s.logger.WithError(err).Fatal("Could not add daily check-in cron job")
	}

	_, err = s.cronEngine.AddFunc(s.cronSpecPredictionCheck, func() {
		s.logger.Info("Cron job triggered for prediction-based reminders.")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := s.reminderService.SendPredictionReminders(ctx); err != nil {
			s.logger.WithError(err).Error("Error during prediction reminder processing")
		}
	})
	if err != nil {
		s.logger.WithError(err).Fatal("Could not add prediction reminder cron job")
	}

	s.cronEngine.Start()
	s.logger.Info("Reminder scheduler started with jobs.")
}

func (s *ReminderScheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler...")
	ctx := s.cronEngine.Stop() // stops scheduling, waits for running jobs
	<-ctx.Done()
	s.logger.Info("Reminder scheduler gracefully stopped.")
}

// internal/app/reminder_service.go
package app

import (
	"context"
	"fmt"
	"time"

	"cycle_companion_bot/internal/domain/dates"
	"cycle_companion_bot/internal/domain/period"
	"cycle_companion_bot/internal/domain/prediction"
	"cycle_companion_bot/internal/domain/reminder"
	domainTelegram "cycle_companion_bot/internal/domain/telegram"
	idb "cycle_companion_bot/internal/infra/database"

	"github.com/sirupsen/logrus"
)

// ReminderService defines the reminder operations the scheduler drives.
type ReminderService interface {
	// SendDailyCheckIns messages every chat with the daily check-in enabled.
	SendDailyCheckIns(ctx context.Context) error
	// SendPredictionReminders recomputes predictions per chat from a
	// fresh entry snapshot and sends period / fertile-window reminders
	// that are due today. Predictions are always re-derived from
	// scratch, never cached between runs.
	SendPredictionReminders(ctx context.Context) error

	// Settings management for the reminder opt-ins.
	GetSettings(ctx context.Context, chatID int64) (*reminder.Settings, error)
	SetDailyCheckIn(ctx context.Context, chatID int64, enabled bool) (*reminder.Settings, error)
	SetPeriodReminder(ctx context.Context, chatID int64, enabled bool, leadDays int) (*reminder.Settings, error)
}

// ReminderServiceImpl implements ReminderService.
type ReminderServiceImpl struct {
	periodRepo      period.Repository
	settingsRepo    reminder.Repository
	telegramClient  domainTelegram.Client
	logger          *logrus.Entry
	defaultLeadDays int
	now             func() time.Time // injectable for deterministic tests
}

func NewReminderServiceImpl(
	pr period.Repository,
	sr reminder.Repository,
	tc domainTelegram.Client,
	logger *logrus.Entry,
	defaultLeadDays int,
) *ReminderServiceImpl {
	if defaultLeadDays <= 0 {
		defaultLeadDays = reminder.DefaultLeadDays
	}
	return &ReminderServiceImpl{
		periodRepo:      pr,
		settingsRepo:    sr,
		telegramClient:  tc,
		logger:          logger,
		defaultLeadDays: defaultLeadDays,
		now:             time.Now,
	}
}

func (s *ReminderServiceImpl) SendDailyCheckIns(ctx context.Context) error {
	enabled, err := s.settingsRepo.ListEnabled(ctx)
	if err != nil {
		return fmt.Errorf("failed to list reminder settings: %w", err)
	}

	for _, st := range enabled {
		if !st.DailyCheckInEnabled {
			continue
		}
		chatLogger := s.logger.WithField("chat_id", st.ChatID)
		msg := "How are you feeling today? Log your symptoms and mood with /log_symptoms or /mood."
		if err := s.telegramClient.SendMessage(st.ChatID, msg, nil); err != nil {
			chatLogger.WithError(err).Error("Failed to send daily check-in")
			continue
		}
		chatLogger.Debug("Daily check-in sent")
	}
	return nil
}

func (s *ReminderServiceImpl) SendPredictionReminders(ctx context.Context) error {
	enabled, err := s.settingsRepo.ListEnabled(ctx)
	if err != nil {
		return fmt.Errorf("failed to list reminder settings: %w", err)
	}

	today := s.now()
	for _, st := range enabled {
		if !st.PeriodReminderEnabled {
			continue
		}
		chatLogger := s.logger.WithField("chat_id", st.ChatID)

		entries, err := s.periodRepo.ListByChat(ctx, st.ChatID)
		if err != nil {
			chatLogger.WithError(err).Error("Failed to load period entries for reminder check")
			continue
		}

		preds := prediction.ComputePredictions(entries, today)
		if preds.NextPeriod == nil {
			chatLogger.Debug("Not enough history for predictions; skipping reminder")
			continue
		}

		leadDays := st.LeadDays
		if leadDays <= 0 {
			leadDays = s.defaultLeadDays
		}
		if msg, due := periodReminderMessage(preds.NextPeriod, leadDays, today); due {
			if err := s.telegramClient.SendMessage(st.ChatID, msg, nil); err != nil {
				chatLogger.WithError(err).Error("Failed to send period reminder")
			} else {
				chatLogger.WithField("predicted_start", preds.NextPeriod.Start).Info("Period reminder sent")
			}
		}

		if msg, due := fertileReminderMessage(preds.FertileWindow, today); due {
			if err := s.telegramClient.SendMessage(st.ChatID, msg, nil); err != nil {
				chatLogger.WithError(err).Error("Failed to send fertile-window reminder")
			} else {
				chatLogger.Info("Fertile-window reminder sent")
			}
		}
	}
	return nil
}

// periodReminderMessage decides whether the period reminder is due
// today: inside [range start - lead days, range end]. Phrasing of
// "today" and "overdue" lives here, not in the engine.
func periodReminderMessage(next *prediction.NextPeriod, leadDays int, today time.Time) (string, bool) {
	rangeStart, ok := dates.SafeParse(next.Range.Start)
	if !ok {
		return "", false
	}
	rangeEnd, ok := dates.SafeParse(next.Range.End)
	if !ok {
		return "", false
	}

	daysToWindow := dates.DiffDays(rangeStart, today)
	if daysToWindow > leadDays || dates.DiffDays(rangeEnd, today) < 0 {
		return "", false
	}

	switch {
	case next.DaysUntilStart > 1:
		return fmt.Sprintf("Your period is likely to start in %d days (around %s, %s confidence).",
			next.DaysUntilStart, next.Start, next.Confidence), true
	case next.DaysUntilStart == 1:
		return fmt.Sprintf("Your period is likely to start tomorrow (%s confidence).", next.Confidence), true
	case next.DaysUntilStart == 0:
		return "Your period is predicted to start today.", true
	default:
		return fmt.Sprintf("Your period was predicted to start %d days ago. Log it with /log_period if it has.",
			-next.DaysUntilStart), true
	}
}

// fertileReminderMessage fires only on the first day of the window.
func fertileReminderMessage(window *prediction.FertileWindow, today time.Time) (string, bool) {
	if window == nil {
		return "", false
	}
	start, ok := dates.SafeParse(window.Start)
	if !ok {
		return "", false
	}
	if dates.DiffDays(start, today) != 0 {
		return "", false
	}
	return fmt.Sprintf("Your fertile window is predicted to start today and last through %s.", window.End), true
}

func (s *ReminderServiceImpl) GetSettings(ctx context.Context, chatID int64) (*reminder.Settings, error) {
	st, err := s.settingsRepo.Get(ctx, chatID)
	if err == nil {
		return st, nil
	}
	if err == idb.ErrSettingsNotFound {
		st = reminder.NewSettings(chatID)
		st.LeadDays = s.defaultLeadDays
		return st, nil
	}
	return nil, fmt.Errorf("failed to get reminder settings: %w", err)
}

func (s *ReminderServiceImpl) SetDailyCheckIn(ctx context.Context, chatID int64, enabled bool) (*reminder.Settings, error) {
	st, err := s.GetSettings(ctx, chatID)
	if err != nil {
		return nil, err
	}
	st.DailyCheckInEnabled = enabled
	if err := s.settingsRepo.Upsert(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save reminder settings: %w", err)
	}
	return st, nil
}

func (s *ReminderServiceImpl) SetPeriodReminder(ctx context.Context, chatID int64, enabled bool, leadDays int) (*reminder.Settings, error) {
	st, err := s.GetSettings(ctx, chatID)
	if err != nil {
		return nil, err
	}
	st.PeriodReminderEnabled = enabled
	if leadDays > 0 {
		st.LeadDays = leadDays
	}
	if err := s.settingsRepo.Upsert(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to save reminder settings: %w", err)
	}
	return st, nil
}

// internal/domain/reminder/settings.go
package reminder

import "time"

// DefaultLeadDays is how many days before the predicted period window
// the period reminder starts firing, unless the chat overrides it.
const DefaultLeadDays = 2

// Settings is the per-chat reminder configuration record.
type Settings struct {
	ChatID                int64
	DailyCheckInEnabled   bool
	PeriodReminderEnabled bool
	LeadDays              int // days of advance notice for the period reminder
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NewSettings returns the default (everything off) settings for a chat.
func NewSettings(chatID int64) *Settings {
	return &Settings{
		ChatID:   chatID,
		LeadDays: DefaultLeadDays,
	}
}

package period

import (
	"time"

	"cycle_companion_bot/internal/domain/dates"
)

// Flow is the self-reported bleeding intensity for a period entry.
// It is display metadata only; the prediction engine ignores it.
type Flow string

const (
	FlowLight  Flow = "light"
	FlowMedium Flow = "medium"
	FlowHeavy  Flow = "heavy"
)

// Entry represents one logged menstrual period.
type Entry struct {
	ID        string        // opaque unique identifier (UUID)
	ChatID    int64         // Telegram chat the entry belongs to
	StartDate dates.ISODate // first day of bleeding, required
	EndDate   dates.ISODate // last day of bleeding, "" while the period is still open
	Flow      Flow          // "" when not recorded
	Notes     string
	CreatedAt time.Time
}

// Open reports whether the entry has no end date logged yet.
func (e *Entry) Open() bool {
	return e.EndDate == ""
}

package symptom

import (
	"time"

	"cycle_companion_bot/internal/domain/dates"
)

// Mood is a single mood selection for a calendar day.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodSad       Mood = "sad"
	MoodAnxious   Mood = "anxious"
	MoodIrritable Mood = "irritable"
	MoodCalm      Mood = "calm"
	MoodEnergetic Mood = "energetic"
	MoodTired     Mood = "tired"
)

// KnownMoods lists every accepted mood value, in display order.
var KnownMoods = []Mood{
	MoodHappy, MoodSad, MoodAnxious, MoodIrritable, MoodCalm, MoodEnergetic, MoodTired,
}

// ValidMood reports whether m is one of the accepted mood values.
func ValidMood(m Mood) bool {
	for _, known := range KnownMoods {
		if m == known {
			return true
		}
	}
	return false
}

// Entry represents symptoms (and optionally a mood) logged for one day.
type Entry struct {
	ID        string
	ChatID    int64
	Date      dates.ISODate
	Symptoms  []string
	Mood      Mood // "" when no mood was attached to this log
	Notes     string
	CreatedAt time.Time
}

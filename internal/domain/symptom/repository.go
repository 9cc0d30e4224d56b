package symptom

import (
	"context"

	"cycle_companion_bot/internal/domain/dates"
)

// Repository defines the operations for persisting and retrieving symptom entries.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	GetByID(ctx context.Context, id string) (*Entry, error)
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, id string) error
	ListByChat(ctx context.Context, chatID int64) ([]*Entry, error)
}

// MoodRepository stores the standalone mood-per-day map, independent of
// symptom entries (a mood can be set for a day with no symptoms logged).
type MoodRepository interface {
	SetForDate(ctx context.Context, chatID int64, date dates.ISODate, mood Mood) error
	GetForDate(ctx context.Context, chatID int64, date dates.ISODate) (Mood, error)
	ListByChat(ctx context.Context, chatID int64) (map[dates.ISODate]Mood, error)
}

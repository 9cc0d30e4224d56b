package reminder

import "context"

// Repository defines the operations for per-chat reminder settings.
type Repository interface {
	Get(ctx context.Context, chatID int64) (*Settings, error)
	Upsert(ctx context.Context, settings *Settings) error
	// ListEnabled returns settings rows with at least one reminder switched on.
	ListEnabled(ctx context.Context) ([]*Settings, error)
}

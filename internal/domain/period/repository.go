package period

import (
	"context"
)

// Repository defines the operations for persisting and retrieving period entries.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	GetByID(ctx context.Context, id string) (*Entry, error)
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, id string) error
	// ListByChat returns all entries for a chat in no guaranteed order;
	// consumers that need chronology sort by StartDate themselves.
	ListByChat(ctx context.Context, chatID int64) ([]*Entry, error)
}

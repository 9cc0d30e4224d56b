package activity

import "context"

// Repository defines the operations for persisting and retrieving
// sexual activity entries.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	GetByID(ctx context.Context, id string) (*Entry, error)
	Delete(ctx context.Context, id string) error
	ListByChat(ctx context.Context, chatID int64) ([]*Entry, error)
}

package database

import (
	"context"
	"database/sql"
	"fmt"

	"cycle_companion_bot/internal/domain/activity"
	"cycle_companion_bot/internal/domain/dates"
)

type PostgresActivityRepository struct {
	db *sql.DB
}

func NewPostgresActivityRepository(db *sql.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) Create(ctx context.Context, e *activity.Entry) error {
	query := `INSERT INTO activity_entries (id, chat_id, entry_date, protection, notes)
               VALUES ($1, $2, $3, $4, $5)
               RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		e.ID, e.ChatID, string(e.Date), string(e.Protection), e.Notes,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating activity entry: %w", err)
	}
	return nil
}

func (r *PostgresActivityRepository) GetByID(ctx context.Context, id string) (*activity.Entry, error) {
	query := `SELECT id, chat_id, entry_date, protection, notes, created_at
               FROM activity_entries WHERE id = $1`

	e, err := scanActivityEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrActivityEntryNotFound
		}
		return nil, fmt.Errorf("error getting activity entry by ID: %w", err)
	}
	return e, nil
}

func (r *PostgresActivityRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM activity_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting activity entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking delete result: %w", err)
	}
	if affected == 0 {
		return ErrActivityEntryNotFound
	}
	return nil
}

func (r *PostgresActivityRepository) ListByChat(ctx context.Context, chatID int64) ([]*activity.Entry, error) {
	query := `SELECT id, chat_id, entry_date, protection, notes, created_at
               FROM activity_entries WHERE chat_id = $1 ORDER BY entry_date`

	rows, err := r.db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("error listing activity entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*activity.Entry, 0)
	for rows.Next() {
		e, err := scanActivityEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning activity entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity entries: %w", err)
	}
	return entries, nil
}

func scanActivityEntry(row rowScanner) (*activity.Entry, error) {
	e := &activity.Entry{}
	var date, protection string
	if err := row.Scan(&e.ID, &e.ChatID, &date, &protection, &e.Notes, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Date = dates.ISODate(date)
	e.Protection = activity.Protection(protection)
	return e, nil
}

package database

import (
	"context"
	"database/sql"
	"fmt"

	"cycle_companion_bot/internal/domain/dates"
	"cycle_companion_bot/internal/domain/period"

	_ "github.com/lib/pq" // PostgreSQL driver
)

type PostgresPeriodRepository struct {
	db *sql.DB
}

func NewPostgresPeriodRepository(db *sql.DB) *PostgresPeriodRepository {
	return &PostgresPeriodRepository{db: db}
}

func (r *PostgresPeriodRepository) Create(ctx context.Context, e *period.Entry) error {
	query := `INSERT INTO period_entries (id, chat_id, start_date, end_date, flow, notes)
               VALUES ($1, $2, $3, $4, $5, $6)
               RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		e.ID, e.ChatID, string(e.StartDate), nullString(string(e.EndDate)), nullString(string(e.Flow)), e.Notes,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating period entry: %w", err)
	}
	return nil
}

func (r *PostgresPeriodRepository) GetByID(ctx context.Context, id string) (*period.Entry, error) {
	query := `SELECT id, chat_id, start_date, end_date, flow, notes, created_at
               FROM period_entries WHERE id = $1`

	e, err := scanPeriodEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPeriodEntryNotFound
		}
		return nil, fmt.Errorf("error getting period entry by ID: %w", err)
	}
	return e, nil
}

func (r *PostgresPeriodRepository) Update(ctx context.Context, e *period.Entry) error {
	query := `UPDATE period_entries
               SET start_date = $1, end_date = $2, flow = $3, notes = $4
               WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		string(e.StartDate), nullString(string(e.EndDate)), nullString(string(e.Flow)), e.Notes, e.ID)
	if err != nil {
		return fmt.Errorf("error updating period entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking update result: %w", err)
	}
	if affected == 0 {
		return ErrPeriodEntryNotFound
	}
	return nil
}

func (r *PostgresPeriodRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM period_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting period entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking delete result: %w", err)
	}
	if affected == 0 {
		return ErrPeriodEntryNotFound
	}
	return nil
}

func (r *PostgresPeriodRepository) ListByChat(ctx context.Context, chatID int64) ([]*period.Entry, error) {
	query := `SELECT id, chat_id, start_date, end_date, flow, notes, created_at
               FROM period_entries WHERE chat_id = $1 ORDER BY start_date`

	rows, err := r.db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("error listing period entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*period.Entry, 0)
	for rows.Next() {
		e, err := scanPeriodEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning period entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period entries: %w", err)
	}
	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPeriodEntry(row rowScanner) (*period.Entry, error) {
	e := &period.Entry{}
	var start string
	var end, flow sql.NullString
	if err := row.Scan(&e.ID, &e.ChatID, &start, &end, &flow, &e.Notes, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.StartDate = dates.ISODate(start)
	if end.Valid {
		e.EndDate = dates.ISODate(end.String)
	}
	if flow.Valid {
		e.Flow = period.Flow(flow.String)
	}
	return e, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

package database

import (
	"context"
	"database/sql"
	"fmt"

	"cycle_companion_bot/internal/domain/dates"
	"cycle_companion_bot/internal/domain/symptom"

	"github.com/lib/pq"
)

type PostgresSymptomRepository struct {
	db *sql.DB
}

func NewPostgresSymptomRepository(db *sql.DB) *PostgresSymptomRepository {
	return &PostgresSymptomRepository{db: db}
}

func (r *PostgresSymptomRepository) Create(ctx context.Context, e *symptom.Entry) error {
	query := `INSERT INTO symptom_entries (id, chat_id, entry_date, symptoms, mood, notes)
               VALUES ($1, $2, $3, $4, $5, $6)
               RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		e.ID, e.ChatID, string(e.Date), pq.Array(e.Symptoms), nullString(string(e.Mood)), e.Notes,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating symptom entry: %w", err)
	}
	return nil
}

func (r *PostgresSymptomRepository) GetByID(ctx context.Context, id string) (*symptom.Entry, error) {
	query := `SELECT id, chat_id, entry_date, symptoms, mood, notes, created_at
               FROM symptom_entries WHERE id = $1`

	e, err := scanSymptomEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSymptomEntryNotFound
		}
		return nil, fmt.Errorf("error getting symptom entry by ID: %w", err)
	}
	return e, nil
}

func (r *PostgresSymptomRepository) Update(ctx context.Context, e *symptom.Entry) error {
	query := `UPDATE symptom_entries
               SET entry_date = $1, symptoms = $2, mood = $3, notes = $4
               WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		string(e.Date), pq.Array(e.Symptoms), nullString(string(e.Mood)), e.Notes, e.ID)
	if err != nil {
		return fmt.Errorf("error updating symptom entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking update result: %w", err)
	}
	if affected == 0 {
		return ErrSymptomEntryNotFound
	}
	return nil
}

func (r *PostgresSymptomRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM symptom_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting symptom entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking delete result: %w", err)
	}
	if affected == 0 {
		return ErrSymptomEntryNotFound
	}
	return nil
}

func (r *PostgresSymptomRepository) ListByChat(ctx context.Context, chatID int64) ([]*symptom.Entry, error) {
	query := `SELECT id, chat_id, entry_date, symptoms, mood, notes, created_at
               FROM symptom_entries WHERE chat_id = $1 ORDER BY entry_date`

	rows, err := r.db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("error listing symptom entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*symptom.Entry, 0)
	for rows.Next() {
		e, err := scanSymptomEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning symptom entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating symptom entries: %w", err)
	}
	return entries, nil
}

func scanSymptomEntry(row rowScanner) (*symptom.Entry, error) {
	e := &symptom.Entry{}
	var date string
	var mood sql.NullString
	if err := row.Scan(&e.ID, &e.ChatID, &date, pq.Array(&e.Symptoms), &mood, &e.Notes, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Date = dates.ISODate(date)
	if mood.Valid {
		e.Mood = symptom.Mood(mood.String)
	}
	return e, nil
}

package database

import (
	"context"
	"database/sql"
	"fmt"

	"cycle_companion_bot/internal/domain/dates"
	"cycle_companion_bot/internal/domain/ovulation"
)

type PostgresOvulationRepository struct {
	db *sql.DB
}

func NewPostgresOvulationRepository(db *sql.DB) *PostgresOvulationRepository {
	return &PostgresOvulationRepository{db: db}
}

func (r *PostgresOvulationRepository) Create(ctx context.Context, e *ovulation.Entry) error {
	query := `INSERT INTO ovulation_entries (id, chat_id, entry_date, test_result, bbt, notes)
               VALUES ($1, $2, $3, $4, $5, $6)
               RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		e.ID, e.ChatID, string(e.Date), nullString(string(e.TestResult)), nullFloat(e.BBT), e.Notes,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating ovulation entry: %w", err)
	}
	return nil
}

func (r *PostgresOvulationRepository) GetByID(ctx context.Context, id string) (*ovulation.Entry, error) {
	query := `SELECT id, chat_id, entry_date, test_result, bbt, notes, created_at
               FROM ovulation_entries WHERE id = $1`

	e, err := scanOvulationEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrOvulationEntryNotFound
		}
		return nil, fmt.Errorf("error getting ovulation entry by ID: %w", err)
	}
	return e, nil
}

func (r *PostgresOvulationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ovulation_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting ovulation entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking delete result: %w", err)
	}
	if affected == 0 {
		return ErrOvulationEntryNotFound
	}
	return nil
}

func (r *PostgresOvulationRepository) ListByChat(ctx context.Context, chatID int64) ([]*ovulation.Entry, error) {
	query := `SELECT id, chat_id, entry_date, test_result, bbt, notes, created_at
               FROM ovulation_entries WHERE chat_id = $1 ORDER BY entry_date`

	rows, err := r.db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("error listing ovulation entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*ovulation.Entry, 0)
	for rows.Next() {
		e, err := scanOvulationEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning ovulation entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ovulation entries: %w", err)
	}
	return entries, nil
}

func scanOvulationEntry(row rowScanner) (*ovulation.Entry, error) {
	e := &ovulation.Entry{}
	var date string
	var testResult sql.NullString
	var bbt sql.NullFloat64
	if err := row.Scan(&e.ID, &e.ChatID, &date, &testResult, &bbt, &e.Notes, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Date = dates.ISODate(date)
	if testResult.Valid {
		e.TestResult = ovulation.TestResult(testResult.String)
	}
	if bbt.Valid {
		e.BBT = bbt.Float64
	}
	return e, nil
}

func nullFloat(f float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: f, Valid: f != 0}
}

package database

import (
	"context"
	"database/sql"
	"fmt"

	"cycle_companion_bot/internal/domain/dates"
	"cycle_companion_bot/internal/domain/symptom"
)

// PostgresMoodRepository stores the standalone mood-per-day map.
type PostgresMoodRepository struct {
	db *sql.DB
}

func NewPostgresMoodRepository(db *sql.DB) *PostgresMoodRepository {
	return &PostgresMoodRepository{db: db}
}

func (r *PostgresMoodRepository) SetForDate(ctx context.Context, chatID int64, date dates.ISODate, mood symptom.Mood) error {
	query := `INSERT INTO moods_by_date (chat_id, mood_date, mood)
               VALUES ($1, $2, $3)
               ON CONFLICT (chat_id, mood_date) DO UPDATE SET mood = EXCLUDED.mood, updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, chatID, string(date), string(mood)); err != nil {
		return fmt.Errorf("error setting mood for date: %w", err)
	}
	return nil
}

func (r *PostgresMoodRepository) GetForDate(ctx context.Context, chatID int64, date dates.ISODate) (symptom.Mood, error) {
	query := `SELECT mood FROM moods_by_date WHERE chat_id = $1 AND mood_date = $2`

	var mood string
	err := r.db.QueryRowContext(ctx, query, chatID, string(date)).Scan(&mood)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrMoodNotFound
		}
		return "", fmt.Errorf("error getting mood for date: %w", err)
	}
	return symptom.Mood(mood), nil
}

func (r *PostgresMoodRepository) ListByChat(ctx context.Context, chatID int64) (map[dates.ISODate]symptom.Mood, error) {
	query := `SELECT mood_date, mood FROM moods_by_date WHERE chat_id = $1`

	rows, err := r.db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("error listing moods: %w", err)
	}
	defer rows.Close()

	moods := make(map[dates.ISODate]symptom.Mood)
	for rows.Next() {
		var date, mood string
		if err := rows.Scan(&date, &mood); err != nil {
			return nil, fmt.Errorf("error scanning mood row: %w", err)
		}
		moods[dates.ISODate(date)] = symptom.Mood(mood)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating moods: %w", err)
	}
	return moods, nil
}

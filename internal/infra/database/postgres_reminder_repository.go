package database

import (
	"context"
	"database/sql"
	"fmt"

	"cycle_companion_bot/internal/domain/reminder"
)

type PostgresReminderRepository struct {
	db *sql.DB
}

func NewPostgresReminderRepository(db *sql.DB) *PostgresReminderRepository {
	return &PostgresReminderRepository{db: db}
}

func (r *PostgresReminderRepository) Get(ctx context.Context, chatID int64) (*reminder.Settings, error) {
	query := `SELECT chat_id, daily_check_in_enabled, period_reminder_enabled, lead_days, created_at, updated_at
               FROM reminder_settings WHERE chat_id = $1`

	s := &reminder.Settings{}
	err := r.db.QueryRowContext(ctx, query, chatID).Scan(
		&s.ChatID, &s.DailyCheckInEnabled, &s.PeriodReminderEnabled, &s.LeadDays, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("error getting reminder settings: %w", err)
	}
	return s, nil
}

func (r *PostgresReminderRepository) Upsert(ctx context.Context, s *reminder.Settings) error {
	query := `INSERT INTO reminder_settings (chat_id, daily_check_in_enabled, period_reminder_enabled, lead_days)
               VALUES ($1, $2, $3, $4)
               ON CONFLICT (chat_id) DO UPDATE
               SET daily_check_in_enabled = EXCLUDED.daily_check_in_enabled,
                   period_reminder_enabled = EXCLUDED.period_reminder_enabled,
                   lead_days = EXCLUDED.lead_days,
                   updated_at = NOW()
               RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		s.ChatID, s.DailyCheckInEnabled, s.PeriodReminderEnabled, s.LeadDays,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting reminder settings: %w", err)
	}
	return nil
}

func (r *PostgresReminderRepository) ListEnabled(ctx context.Context) ([]*reminder.Settings, error) {
	query := `SELECT chat_id, daily_check_in_enabled, period_reminder_enabled, lead_days, created_at, updated_at
               FROM reminder_settings
               WHERE daily_check_in_enabled = TRUE OR period_reminder_enabled = TRUE
               ORDER BY chat_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing enabled reminder settings: %w", err)
	}
	defer rows.Close()

	settings := make([]*reminder.Settings, 0)
	for rows.Next() {
		s := &reminder.Settings{}
		if err := rows.Scan(&s.ChatID, &s.DailyCheckInEnabled, &s.PeriodReminderEnabled, &s.LeadDays, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning reminder settings: %w", err)
		}
		settings = append(settings, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminder settings: %w", err)
	}
	return settings, nil
}

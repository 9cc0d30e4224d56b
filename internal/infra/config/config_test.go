package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "test-token")
	t.Setenv("DATABASE_URL", "postgres://localhost/cycle_test")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("CRON_SPEC_DAILY_CHECK_IN", "")
	t.Setenv("CRON_SPEC_PREDICTION_CHECK", "")
	t.Setenv("DEFAULT_LEAD_DAYS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.TelegramToken)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0 20 * * *", cfg.CronSpecDailyCheckIn)
	assert.Equal(t, "0 9 * * *", cfg.CronSpecPredictionCheck)
	assert.Equal(t, 2, cfg.DefaultLeadDays)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("TELEGRAM_TOKEN", "")
		t.Setenv("DATABASE_URL", "postgres://localhost/cycle_test")
		_, err := Load()
		assert.ErrorContains(t, err, "TELEGRAM_TOKEN")
	})

	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("TELEGRAM_TOKEN", "test-token")
		t.Setenv("DATABASE_URL", "")
		_, err := Load()
		assert.ErrorContains(t, err, "DATABASE_URL")
	})
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("CRON_SPEC_PREDICTION_CHECK", "30 8 * * *")
	t.Setenv("DEFAULT_LEAD_DAYS", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "30 8 * * *", cfg.CronSpecPredictionCheck)
	assert.Equal(t, 3, cfg.DefaultLeadDays)
}

func TestLoadInvalidLeadDays(t *testing.T) {
	for _, bad := range []string{"abc", "0", "-1"} {
		setRequiredEnv(t)
		t.Setenv("DEFAULT_LEAD_DAYS", bad)
		_, err := Load()
		assert.Error(t, err, "DEFAULT_LEAD_DAYS=%s must be rejected", bad)
	}
}

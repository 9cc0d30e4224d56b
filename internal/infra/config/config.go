package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	TelegramToken string
	DatabaseURL   string
	LogLevel      string
	Environment   string
	// CronSpecDailyCheckIn fires the evening check-in reminder job.
	CronSpecDailyCheckIn string
	// CronSpecPredictionCheck fires the morning job that re-derives
	// predictions and sends period / fertile-window reminders.
	CronSpecPredictionCheck string
	// DefaultLeadDays is the advance notice for period reminders when a
	// chat has not configured its own.
	DefaultLeadDays int
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.CronSpecDailyCheckIn = os.Getenv("CRON_SPEC_DAILY_CHECK_IN")
	if cfg.CronSpecDailyCheckIn == "" {
		cfg.CronSpecDailyCheckIn = "0 20 * * *" // Default: 8:00 PM daily
	}

	cfg.CronSpecPredictionCheck = os.Getenv("CRON_SPEC_PREDICTION_CHECK")
	if cfg.CronSpecPredictionCheck == "" {
		cfg.CronSpecPredictionCheck = "0 9 * * *" // Default: 9:00 AM daily
	}

	cfg.DefaultLeadDays = 2
	if leadStr := os.Getenv("DEFAULT_LEAD_DAYS"); leadStr != "" {
		lead, err := strconv.Atoi(leadStr)
		if err != nil || lead < 1 {
			return nil, fmt.Errorf("invalid DEFAULT_LEAD_DAYS: %q", leadStr)
		}
		cfg.DefaultLeadDays = lead
	}

	return cfg, nil
}

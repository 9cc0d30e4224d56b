package ovulation

import (
	"time"

	"cycle_companion_bot/internal/domain/dates"
)

// TestResult is the outcome of an ovulation predictor test.
// "" means no test was taken that day.
type TestResult string

const (
	TestPositive TestResult = "positive"
	TestNegative TestResult = "negative"
)

// ValidTestResult reports whether r is an accepted test outcome.
func ValidTestResult(r TestResult) bool {
	return r == TestPositive || r == TestNegative
}

// Plausible bounds for a basal body temperature reading, in Celsius.
const (
	MinBBT = 30.0
	MaxBBT = 45.0
)

// Entry represents the ovulation signals logged for one day: an
// optional test result and an optional basal body temperature.
// BBT is 0 when no temperature was recorded.
type Entry struct {
	ID         string
	ChatID     int64
	Date       dates.ISODate
	TestResult TestResult
	BBT        float64
	Notes      string
	CreatedAt  time.Time
}

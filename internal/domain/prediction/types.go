// Package prediction is the cycle statistics and prediction engine.
//
// It is a pure, stateless computation over a snapshot of period
// entries: no I/O, no stored state, no errors. Malformed entries are
// silently excluded from the relevant sample set, and insufficient
// history is reported through CycleStats.HasEnoughData rather than as
// a failure. It is safe to call concurrently; the input slice is
// never mutated.
package prediction

import "cycle_companion_bot/internal/domain/dates"

// Confidence is the coarse reliability band attached to a prediction.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// DayRange is an inclusive day-count interval.
type DayRange struct {
	Min int
	Max int
}

// DateRange is an inclusive calendar-date interval.
type DateRange struct {
	Start dates.ISODate
	End   dates.ISODate
}

// CycleStats holds the robust statistics derived from the logged
// period history. When HasEnoughData is false the numeric fields are
// not meaningful (they keep their zero values) except PeriodLengthDays
// and CycleVariability, which always carry their clamped defaults, and
// LastPeriodStart, which is set whenever at least one entry exists.
type CycleStats struct {
	HasEnoughData    bool
	CycleLengthDays  int // typical start-to-start gap, clamped to [21,45]
	CycleLengthRange DayRange
	PeriodLengthDays int // typical bleeding duration, clamped to [2,10]
	LastPeriodStart  dates.ISODate
	CycleCount       int // number of valid start-to-start gaps used
	CycleVariability int // clamped MAD of the cycle-length samples, in days
}

// NextPeriod is the forward projection of the next period start.
type NextPeriod struct {
	Start dates.ISODate
	Range DateRange // anchored to the last logged start, not to Start
	// DaysUntilStart is negative when the predicted start has already
	// passed; the presentation layer decides how to phrase "overdue".
	DaysUntilStart       int
	Confidence           Confidence
	ConfidencePercentage int
}

// Ovulation is the estimated ovulation day (luteal-phase heuristic).
type Ovulation struct {
	Date                 dates.ISODate
	Confidence           Confidence
	ConfidencePercentage int
}

// FertileWindow is the 6-day conception window ending on ovulation day.
type FertileWindow struct {
	Start                dates.ISODate
	End                  dates.ISODate
	Confidence           Confidence
	ConfidencePercentage int
}

// Predictions is the full engine output. The three forward-looking
// fields are nil whenever the history is insufficient; that is the
// normal state for new users, not an error.
type Predictions struct {
	Stats         CycleStats
	NextPeriod    *NextPeriod
	Ovulation     *Ovulation
	FertileWindow *FertileWindow
}

package prediction

import (
	"time"

	"cycle_companion_bot/internal/domain/dates"
	"cycle_companion_bot/internal/domain/period"
)

// lutealPhaseDays is the assumed gap between ovulation and the next
// period. Luteal-phase length is comparatively constant across people
// and cycles, while follicular-phase length varies, so ovulation is
// counted back from the predicted next period rather than forward
// from the last one.
const lutealPhaseDays = 14

// fertileWindowDays is how many days before ovulation the fertile
// window opens (sperm viability).
const fertileWindowDays = 5

// ComputePredictions projects the logged history forward into the next
// period window, ovulation day and fertile window, relative to the
// given reference day. When the history is insufficient the result
// carries stats only, with all three projection fields nil.
func ComputePredictions(entries []*period.Entry, today time.Time) Predictions {
	stats := ComputeCycleStats(entries)
	predictions := Predictions{Stats: stats}

	if stats.CycleLengthDays == 0 || stats.LastPeriodStart == "" {
		return predictions
	}
	lastStart, ok := dates.SafeParse(stats.LastPeriodStart)
	if !ok {
		return predictions
	}

	nextStart := dates.AddDays(lastStart, stats.CycleLengthDays)

	// The window is anchored to the last logged start so its width is
	// exactly the stats' uncertainty range.
	rangeStart := dates.AddDays(lastStart, stats.CycleLengthRange.Min)
	rangeEnd := dates.AddDays(lastStart, stats.CycleLengthRange.Max)

	ovulationDate := dates.AddDays(nextStart, -lutealPhaseDays)

	level, percentage := scoreConfidence(stats.CycleCount, stats.CycleVariability)

	// Layering the fixed luteal assumption on top of cycle-length
	// uncertainty costs the ovulation-derived numbers a little extra.
	ovulationPercentage := percentage - 10
	if ovulationPercentage < 0 {
		ovulationPercentage = 0
	}

	predictions.NextPeriod = &NextPeriod{
		Start: dates.Format(nextStart),
		Range: DateRange{
			Start: dates.Format(rangeStart),
			End:   dates.Format(rangeEnd),
		},
		DaysUntilStart:       dates.DiffDays(nextStart, today),
		Confidence:           level,
		ConfidencePercentage: percentage,
	}
	predictions.Ovulation = &Ovulation{
		Date:                 dates.Format(ovulationDate),
		Confidence:           level,
		ConfidencePercentage: ovulationPercentage,
	}
	predictions.FertileWindow = &FertileWindow{
		Start:                dates.Format(dates.AddDays(ovulationDate, -fertileWindowDays)),
		End:                  dates.Format(ovulationDate),
		Confidence:           level,
		ConfidencePercentage: ovulationPercentage,
	}

	return predictions
}

// ComputePredictionsNow is ComputePredictions relative to the current day.
func ComputePredictionsNow(entries []*period.Entry) Predictions {
	return ComputePredictions(entries, time.Now())
}

package prediction

import (
	"sort"
	"time"

	"cycle_companion_bot/internal/domain/dates"
	"cycle_companion_bot/internal/domain/period"
)

// Physiological clamp bounds. A median outside these ranges is pulled
// back in rather than rejected, so one stretch of odd logging cannot
// push predictions into impossible territory.
const (
	minCycleLengthDays  = 21
	maxCycleLengthDays  = 45
	minPeriodLengthDays = 2
	maxPeriodLengthDays = 10
	defaultPeriodDays   = 5

	// A period-length sample above this is treated as an entry error.
	maxPlausiblePeriodDays = 15

	// Uncertainty floor/ceiling: at least 2 days of slack even for a
	// perfectly regular history, at most 7 so the window stays usable.
	minUncertaintyDays = 2
	maxUncertaintyDays = 7
)

// ComputeCycleStats derives robust cycle and period length statistics
// from an arbitrary, unordered collection of period entries. It never
// fails: malformed entries drop out of the sample sets and too little
// data yields HasEnoughData=false.
func ComputeCycleStats(entries []*period.Entry) CycleStats {
	sorted := make([]*period.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate < sorted[j].StartDate
	})

	starts := make([]int, 0, len(sorted)) // day numbers of parseable starts
	for _, e := range sorted {
		if t, ok := dates.SafeParse(e.StartDate); ok {
			starts = append(starts, dates.DiffDays(t, dayZero()))
		}
	}

	var cycleDiffs []int
	for i := 1; i < len(starts); i++ {
		// Non-positive gaps come from duplicate or malformed entries
		// and are discarded, not reported.
		if diff := starts[i] - starts[i-1]; diff > 0 {
			cycleDiffs = append(cycleDiffs, diff)
		}
	}

	var periodLengths []int
	for _, e := range sorted {
		if e.EndDate == "" {
			continue
		}
		start, ok := dates.SafeParse(e.StartDate)
		if !ok {
			continue
		}
		end, ok := dates.SafeParse(e.EndDate)
		if !ok {
			continue
		}
		days := dates.DiffDays(end, start) + 1 // inclusive
		if days > 0 && days <= maxPlausiblePeriodDays {
			periodLengths = append(periodLengths, days)
		}
	}

	baseCycle, haveCycle := median(cycleDiffs)
	basePeriod, havePeriod := median(periodLengths)
	if !havePeriod {
		basePeriod = defaultPeriodDays
	}

	// MAD over stddev: with short, outlier-prone histories a single
	// anomalous cycle must not blow up the uncertainty.
	mad := 0
	if haveCycle {
		deviations := make([]int, len(cycleDiffs))
		for i, d := range cycleDiffs {
			deviations[i] = abs(d - baseCycle)
		}
		mad, _ = median(deviations)
	}
	uncertainty := clamp(mad, minUncertaintyDays, maxUncertaintyDays)

	stats := CycleStats{
		PeriodLengthDays: clamp(basePeriod, minPeriodLengthDays, maxPeriodLengthDays),
		CycleCount:       len(cycleDiffs),
		CycleVariability: uncertainty,
	}

	if haveCycle {
		length := clamp(baseCycle, minCycleLengthDays, maxCycleLengthDays)
		stats.CycleLengthDays = length
		stats.CycleLengthRange = DayRange{
			Min: clamp(length-uncertainty, minCycleLengthDays, maxCycleLengthDays),
			Max: clamp(length+uncertainty, minCycleLengthDays, maxCycleLengthDays),
		}
	}
	stats.HasEnoughData = len(cycleDiffs) >= 1 && stats.CycleLengthDays > 0

	if len(sorted) > 0 {
		stats.LastPeriodStart = sorted[len(sorted)-1].StartDate
	}

	return stats
}

// median returns the middle value of the samples; for an even count it
// is the rounded mean of the two middle values. ok is false for an
// empty sample set.
func median(values []int) (result int, ok bool) {
	if len(values) == 0 {
		return 0, false
	}
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], true
	}
	// Samples are non-negative day counts, so +1 rounds .5 halves up.
	return (sorted[mid-1] + sorted[mid] + 1) / 2, true
}

func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// dayZero is an arbitrary fixed reference for turning calendar dates
// into comparable day numbers; only differences of the numbers matter.
func dayZero() time.Time {
	return time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
}

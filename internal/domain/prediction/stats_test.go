package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cycle_companion_bot/internal/domain/dates"
	"cycle_companion_bot/internal/domain/period"
)

func entry(start, end dates.ISODate) *period.Entry {
	return &period.Entry{ID: string(start), ChatID: 1, StartDate: start, EndDate: end}
}

func TestComputeCycleStatsRegularHistory(t *testing.T) {
	// Three starts with two exact 28-day gaps and no end dates.
	entries := []*period.Entry{
		entry("2024-01-01", ""),
		entry("2024-01-29", ""),
		entry("2024-02-26", ""),
	}

	stats := ComputeCycleStats(entries)

	assert.True(t, stats.HasEnoughData)
	assert.Equal(t, 28, stats.CycleLengthDays)
	assert.Equal(t, 2, stats.CycleCount)
	assert.Equal(t, 5, stats.PeriodLengthDays, "period length defaults to 5 with no end dates")
	assert.Equal(t, dates.ISODate("2024-02-26"), stats.LastPeriodStart)
	// Zero spread still leaves the 2-day uncertainty floor.
	assert.Equal(t, 2, stats.CycleVariability)
	assert.Equal(t, DayRange{Min: 26, Max: 30}, stats.CycleLengthRange)
}

func TestComputeCycleStatsEmptyHistory(t *testing.T) {
	stats := ComputeCycleStats(nil)

	assert.False(t, stats.HasEnoughData)
	assert.Zero(t, stats.CycleLengthDays)
	assert.Zero(t, stats.CycleCount)
	assert.Equal(t, dates.ISODate(""), stats.LastPeriodStart)
}

func TestComputeCycleStatsSingleEntry(t *testing.T) {
	stats := ComputeCycleStats([]*period.Entry{entry("2024-01-01", "")})

	assert.False(t, stats.HasEnoughData)
	assert.Zero(t, stats.CycleLengthDays)
	assert.Equal(t, dates.ISODate("2024-01-01"), stats.LastPeriodStart,
		"last start is defined even without enough data")
}

func TestComputeCycleStatsSortsInternally(t *testing.T) {
	ordered := []*period.Entry{
		entry("2024-01-01", "2024-01-05"),
		entry("2024-01-29", "2024-02-02"),
		entry("2024-02-26", ""),
	}
	shuffled := []*period.Entry{ordered[2], ordered[0], ordered[1]}
	reversed := []*period.Entry{ordered[2], ordered[1], ordered[0]}

	want := ComputeCycleStats(ordered)
	assert.Equal(t, want, ComputeCycleStats(shuffled))
	assert.Equal(t, want, ComputeCycleStats(reversed))
}

func TestComputeCycleStatsDuplicateStartsDiscarded(t *testing.T) {
	// A zero gap is a malformed duplicate, not a cycle.
	entries := []*period.Entry{
		entry("2024-01-01", ""),
		entry("2024-01-01", ""),
	}

	stats := ComputeCycleStats(entries)

	assert.False(t, stats.HasEnoughData)
	assert.Zero(t, stats.CycleCount)
	assert.Equal(t, dates.ISODate("2024-01-01"), stats.LastPeriodStart)
}

func TestComputeCycleStatsUnparseableStartSkipped(t *testing.T) {
	entries := []*period.Entry{
		entry("2024-01-01", ""),
		entry("garbage", ""),
		entry("2024-01-29", ""),
	}

	stats := ComputeCycleStats(entries)

	// The malformed entry drops out of the gap samples; the remaining
	// pair still forms one valid 28-day cycle.
	assert.True(t, stats.HasEnoughData)
	assert.Equal(t, 1, stats.CycleCount)
	assert.Equal(t, 28, stats.CycleLengthDays)
}

func TestComputeCycleStatsClampsCycleLength(t *testing.T) {
	t.Run("long gaps clamp to 45", func(t *testing.T) {
		entries := []*period.Entry{
			entry("2024-01-01", ""),
			entry("2024-03-01", ""), // 60-day gap
			entry("2024-04-30", ""), // 60-day gap
		}
		stats := ComputeCycleStats(entries)
		assert.True(t, stats.HasEnoughData)
		assert.Equal(t, 45, stats.CycleLengthDays)
		assert.LessOrEqual(t, stats.CycleLengthRange.Max, 45)
		assert.GreaterOrEqual(t, stats.CycleLengthRange.Min, 21)
	})

	t.Run("short gaps clamp to 21", func(t *testing.T) {
		entries := []*period.Entry{
			entry("2024-01-01", ""),
			entry("2024-01-11", ""), // 10-day gap
			entry("2024-01-21", ""), // 10-day gap
		}
		stats := ComputeCycleStats(entries)
		assert.True(t, stats.HasEnoughData)
		assert.Equal(t, 21, stats.CycleLengthDays)
		assert.GreaterOrEqual(t, stats.CycleLengthRange.Min, 21)
	})
}

func TestComputeCycleStatsPeriodLengths(t *testing.T) {
	t.Run("median of valid samples", func(t *testing.T) {
		entries := []*period.Entry{
			entry("2024-01-01", "2024-01-04"), // 4 days
			entry("2024-01-29", "2024-02-03"), // 6 days
			entry("2024-02-26", "2024-03-02"), // 6 days
		}
		stats := ComputeCycleStats(entries)
		assert.Equal(t, 6, stats.PeriodLengthDays)
	})

	t.Run("implausibly long sample excluded", func(t *testing.T) {
		entries := []*period.Entry{
			entry("2024-01-01", "2024-01-21"), // 21 days, entry error
			entry("2024-01-29", "2024-02-02"), // 5 days
			entry("2024-02-26", "2024-03-01"), // 5 days
		}
		stats := ComputeCycleStats(entries)
		assert.Equal(t, 5, stats.PeriodLengthDays)
	})

	t.Run("end before start excluded", func(t *testing.T) {
		entries := []*period.Entry{
			entry("2024-01-10", "2024-01-01"),
			entry("2024-02-07", ""),
		}
		stats := ComputeCycleStats(entries)
		assert.Equal(t, 5, stats.PeriodLengthDays, "falls back to the default")
	})

	t.Run("long valid sample clamps to 10", func(t *testing.T) {
		entries := []*period.Entry{
			entry("2024-01-01", "2024-01-12"), // 12 days: valid sample, clamped result
			entry("2024-01-29", "2024-02-09"),
		}
		stats := ComputeCycleStats(entries)
		assert.Equal(t, 10, stats.PeriodLengthDays)
	})
}

func TestComputeCycleStatsOutlierResistance(t *testing.T) {
	// One skipped cycle (a 56-day gap) must not move the baseline off 28.
	entries := []*period.Entry{
		entry("2024-01-01", ""),
		entry("2024-01-29", ""),
		entry("2024-02-26", ""),
		entry("2024-04-22", ""), // 56-day outlier gap
		entry("2024-05-20", ""),
	}

	stats := ComputeCycleStats(entries)

	assert.Equal(t, 28, stats.CycleLengthDays)
	assert.Equal(t, 4, stats.CycleCount)
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   int
		ok     bool
	}{
		{name: "empty", values: nil, want: 0, ok: false},
		{name: "single", values: []int{7}, want: 7, ok: true},
		{name: "odd count", values: []int{30, 28, 26}, want: 28, ok: true},
		{name: "even count rounds half up", values: []int{28, 29}, want: 29, ok: true},
		{name: "even count exact", values: []int{28, 30}, want: 29, ok: true},
		{name: "unsorted input", values: []int{45, 21, 28}, want: 28, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := median(tt.values)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

package prediction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cycle_companion_bot/internal/domain/dates"
	"cycle_companion_bot/internal/domain/period"
)

func day(t *testing.T, d dates.ISODate) time.Time {
	t.Helper()
	parsed, err := dates.Parse(d)
	require.NoError(t, err)
	return parsed
}

func TestComputePredictionsRegularHistory(t *testing.T) {
	entries := []*period.Entry{
		entry("2024-01-01", ""),
		entry("2024-01-29", ""),
		entry("2024-02-26", ""),
	}

	preds := ComputePredictions(entries, day(t, "2024-03-01"))

	require.NotNil(t, preds.NextPeriod)
	require.NotNil(t, preds.Ovulation)
	require.NotNil(t, preds.FertileWindow)

	assert.Equal(t, dates.ISODate("2024-03-25"), preds.NextPeriod.Start)
	assert.Equal(t, 24, preds.NextPeriod.DaysUntilStart)
	assert.Equal(t, dates.ISODate("2024-03-11"), preds.Ovulation.Date)
	assert.Equal(t, dates.ISODate("2024-03-06"), preds.FertileWindow.Start)
	assert.Equal(t, dates.ISODate("2024-03-11"), preds.FertileWindow.End)

	// cycleCount=2 gives a base of 20, the 2-day uncertainty floor
	// costs 10, so the period prediction sits at 10% (low).
	assert.Equal(t, ConfidenceLow, preds.NextPeriod.Confidence)
	assert.Equal(t, 10, preds.NextPeriod.ConfidencePercentage)
	assert.Equal(t, 0, preds.Ovulation.ConfidencePercentage)
	assert.Equal(t, 0, preds.FertileWindow.ConfidencePercentage)
}

func TestComputePredictionsRangeAnchoredToLastStart(t *testing.T) {
	entries := []*period.Entry{
		entry("2024-01-01", ""),
		entry("2024-01-29", ""),
		entry("2024-02-26", ""),
	}

	preds := ComputePredictions(entries, day(t, "2024-03-01"))
	require.NotNil(t, preds.NextPeriod)

	lastStart := day(t, "2024-02-26")
	wantStart := dates.Format(dates.AddDays(lastStart, preds.Stats.CycleLengthRange.Min))
	wantEnd := dates.Format(dates.AddDays(lastStart, preds.Stats.CycleLengthRange.Max))

	assert.Equal(t, wantStart, preds.NextPeriod.Range.Start)
	assert.Equal(t, wantEnd, preds.NextPeriod.Range.End)
}

func TestComputePredictionsOvulationOffset(t *testing.T) {
	histories := [][]*period.Entry{
		{entry("2024-01-01", ""), entry("2024-01-29", ""), entry("2024-02-26", "")},
		{entry("2024-01-01", ""), entry("2024-02-05", ""), entry("2024-03-11", "")}, // 35-day cycles
		{entry("2024-01-01", ""), entry("2024-01-24", "")},                          // 23-day cycle
	}

	for _, entries := range histories {
		preds := ComputePredictions(entries, day(t, "2024-03-01"))
		require.NotNil(t, preds.NextPeriod)
		require.NotNil(t, preds.Ovulation)

		nextStart := day(t, preds.NextPeriod.Start)
		assert.Equal(t, dates.Format(dates.AddDays(nextStart, -14)), preds.Ovulation.Date,
			"ovulation is always 14 days before the predicted start, independent of cycle length")
		assert.Equal(t, dates.Format(dates.AddDays(nextStart, -19)), preds.FertileWindow.Start)
		assert.Equal(t, preds.Ovulation.Date, preds.FertileWindow.End)
	}
}

func TestComputePredictionsInsufficientData(t *testing.T) {
	t.Run("no entries", func(t *testing.T) {
		preds := ComputePredictions(nil, day(t, "2024-03-01"))
		assert.False(t, preds.Stats.HasEnoughData)
		assert.Nil(t, preds.NextPeriod)
		assert.Nil(t, preds.Ovulation)
		assert.Nil(t, preds.FertileWindow)
	})

	t.Run("single entry", func(t *testing.T) {
		preds := ComputePredictions([]*period.Entry{entry("2024-01-01", "")}, day(t, "2024-03-01"))
		assert.False(t, preds.Stats.HasEnoughData)
		assert.Equal(t, dates.ISODate("2024-01-01"), preds.Stats.LastPeriodStart)
		assert.Nil(t, preds.NextPeriod)
		assert.Nil(t, preds.Ovulation)
		assert.Nil(t, preds.FertileWindow)
	})

	t.Run("duplicate dates only", func(t *testing.T) {
		preds := ComputePredictions([]*period.Entry{
			entry("2024-01-01", ""),
			entry("2024-01-01", ""),
		}, day(t, "2024-03-01"))
		assert.False(t, preds.Stats.HasEnoughData)
		assert.Nil(t, preds.NextPeriod)
	})
}

func TestComputePredictionsOverdue(t *testing.T) {
	entries := []*period.Entry{
		entry("2024-01-01", ""),
		entry("2024-01-29", ""),
	}

	// Predicted start is 2024-02-26; looking at it from well past that.
	preds := ComputePredictions(entries, day(t, "2024-03-05"))

	require.NotNil(t, preds.NextPeriod)
	assert.Equal(t, dates.ISODate("2024-02-26"), preds.NextPeriod.Start)
	assert.Equal(t, -8, preds.NextPeriod.DaysUntilStart,
		"an overdue prediction stays negative; the UI decides how to phrase it")
}

func TestComputePredictionsPermutationIndependent(t *testing.T) {
	ordered := []*period.Entry{
		entry("2023-11-06", "2023-11-10"),
		entry("2023-12-05", "2023-12-09"),
		entry("2024-01-01", "2024-01-06"),
		entry("2024-01-29", ""),
	}
	permutations := [][]*period.Entry{
		{ordered[3], ordered[2], ordered[1], ordered[0]},
		{ordered[1], ordered[3], ordered[0], ordered[2]},
		{ordered[2], ordered[0], ordered[3], ordered[1]},
	}

	today := day(t, "2024-02-10")
	want := ComputePredictions(ordered, today)
	for _, perm := range permutations {
		assert.Equal(t, want, ComputePredictions(perm, today))
	}
}

func TestComputePredictionsDoesNotMutateInput(t *testing.T) {
	entries := []*period.Entry{
		entry("2024-02-26", ""),
		entry("2024-01-01", ""),
		entry("2024-01-29", ""),
	}

	ComputePredictions(entries, day(t, "2024-03-01"))

	assert.Equal(t, dates.ISODate("2024-02-26"), entries[0].StartDate,
		"the engine must sort a copy, not the caller's slice")
	assert.Equal(t, dates.ISODate("2024-01-01"), entries[1].StartDate)
}

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cycle_companion_bot/internal/domain/dates"
	"cycle_companion_bot/internal/domain/period"
	"cycle_companion_bot/internal/domain/prediction"
)

func TestBuildCalendarMarksPeriodDays(t *testing.T) {
	entries := []*period.Entry{
		{ID: "a", ChatID: 1, StartDate: "2024-01-01", EndDate: "2024-01-03"},
		{ID: "b", ChatID: 1, StartDate: "2024-01-29"}, // open entry marks its start day only
	}

	marks := BuildCalendarMarks(entries, prediction.Predictions{})

	for _, d := range []dates.ISODate{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-29"} {
		assert.True(t, marks[d].Period, "expected %s to be a period day", d)
	}
	assert.False(t, marks["2024-01-04"].Period)
	assert.False(t, marks["2024-01-30"].Period)
}

func TestBuildCalendarMarksPredictions(t *testing.T) {
	preds := prediction.Predictions{
		NextPeriod: &prediction.NextPeriod{
			Start: "2024-03-25",
			Range: prediction.DateRange{Start: "2024-03-23", End: "2024-03-27"},
		},
		Ovulation: &prediction.Ovulation{Date: "2024-03-11"},
		FertileWindow: &prediction.FertileWindow{
			Start: "2024-03-06",
			End:   "2024-03-11",
		},
	}

	marks := BuildCalendarMarks(nil, preds)

	for _, d := range dates.Enumerate("2024-03-23", "2024-03-27") {
		assert.True(t, marks[d].PredictedPeriod, "expected %s in the predicted window", d)
	}
	for _, d := range dates.Enumerate("2024-03-06", "2024-03-11") {
		assert.True(t, marks[d].Fertile, "expected %s in the fertile window", d)
	}
	assert.True(t, marks["2024-03-11"].Ovulation)
	assert.False(t, marks["2024-03-22"].PredictedPeriod)
	assert.False(t, marks["2024-03-12"].Fertile)
}

func TestBuildCalendarMarksOverlap(t *testing.T) {
	// A logged period day can also fall inside a predicted window;
	// both flags survive on the same mark.
	entries := []*period.Entry{
		{ID: "a", ChatID: 1, StartDate: "2024-03-23", EndDate: "2024-03-24"},
	}
	preds := prediction.Predictions{
		NextPeriod: &prediction.NextPeriod{
			Start: "2024-03-25",
			Range: prediction.DateRange{Start: "2024-03-23", End: "2024-03-27"},
		},
	}

	marks := BuildCalendarMarks(entries, preds)

	require.Contains(t, marks, dates.ISODate("2024-03-23"))
	assert.True(t, marks["2024-03-23"].Period)
	assert.True(t, marks["2024-03-23"].PredictedPeriod)
}

func TestBuildCalendarMarksMalformedEntry(t *testing.T) {
	entries := []*period.Entry{
		{ID: "a", ChatID: 1, StartDate: "garbage", EndDate: "2024-01-03"},
	}

	marks := BuildCalendarMarks(entries, prediction.Predictions{})

	assert.Empty(t, marks, "unparseable entries mark nothing")
}

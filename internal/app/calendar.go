package app

import (
	"cycle_companion_bot/internal/domain/dates"
	"cycle_companion_bot/internal/domain/period"
	"cycle_companion_bot/internal/domain/prediction"
)

// DayMark describes everything a calendar view needs to highlight one day.
type DayMark struct {
	Period          bool // a logged bleeding day
	PredictedPeriod bool // inside the predicted next-period window
	Fertile         bool // inside the predicted fertile window
	Ovulation       bool // the predicted ovulation day
}

// BuildCalendarMarks expands logged entries and predictions into a
// per-day mark map for calendar rendering. Entry enumeration is capped
// by the dates package, so one corrupt entry cannot mark years of days.
func BuildCalendarMarks(entries []*period.Entry, preds prediction.Predictions) map[dates.ISODate]DayMark {
	marks := make(map[dates.ISODate]DayMark)

	for _, e := range entries {
		end := e.EndDate
		if end == "" {
			end = e.StartDate
		}
		for _, d := range dates.Enumerate(e.StartDate, end) {
			m := marks[d]
			m.Period = true
			marks[d] = m
		}
	}

	if preds.NextPeriod != nil {
		for _, d := range dates.Enumerate(preds.NextPeriod.Range.Start, preds.NextPeriod.Range.End) {
			m := marks[d]
			m.PredictedPeriod = true
			marks[d] = m
		}
	}
	if preds.FertileWindow != nil {
		for _, d := range dates.Enumerate(preds.FertileWindow.Start, preds.FertileWindow.End) {
			m := marks[d]
			m.Fertile = true
			marks[d] = m
		}
	}
	if preds.Ovulation != nil {
		m := marks[preds.Ovulation.Date]
		m.Ovulation = true
		marks[preds.Ovulation.Date] = m
	}

	return marks
}

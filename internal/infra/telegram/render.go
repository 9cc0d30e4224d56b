package telegram

import (
	"fmt"
	"strings"
	"time"

	"cycle_companion_bot/internal/app"
	"cycle_companion_bot/internal/domain/dates"
	"cycle_companion_bot/internal/domain/prediction"
)

func renderStats(stats prediction.CycleStats) string {
	if !stats.HasEnoughData {
		if stats.LastPeriodStart != "" {
			return fmt.Sprintf(
				"Not enough data for statistics yet - log at least two periods.\nLast period started %s.",
				stats.LastPeriodStart)
		}
		return "Not enough data for statistics yet - log at least two periods with /log_period."
	}

	var b strings.Builder
	b.WriteString("Your cycle statistics:\n")
	b.WriteString(fmt.Sprintf("- Typical cycle length: %d days (likely %d-%d)\n",
		stats.CycleLengthDays, stats.CycleLengthRange.Min, stats.CycleLengthRange.Max))
	b.WriteString(fmt.Sprintf("- Typical period length: %d days\n", stats.PeriodLengthDays))
	b.WriteString(fmt.Sprintf("- Cycles tracked: %d\n", stats.CycleCount))
	b.WriteString(fmt.Sprintf("- Variability: +/-%d days\n", stats.CycleVariability))
	b.WriteString(fmt.Sprintf("- Last period started: %s", stats.LastPeriodStart))
	return b.String()
}

func renderPredictions(preds prediction.Predictions) string {
	if preds.NextPeriod == nil {
		return "Not enough data for predictions yet - log at least two periods with /log_period."
	}

	var b strings.Builder
	next := preds.NextPeriod
	switch {
	case next.DaysUntilStart > 1:
		b.WriteString(fmt.Sprintf("Next period: likely %s (in %d days)\n", next.Start, next.DaysUntilStart))
	case next.DaysUntilStart == 1:
		b.WriteString(fmt.Sprintf("Next period: likely tomorrow (%s)\n", next.Start))
	case next.DaysUntilStart == 0:
		b.WriteString("Next period: predicted for today\n")
	default:
		b.WriteString(fmt.Sprintf("Next period: was predicted for %s (%d days ago)\n", next.Start, -next.DaysUntilStart))
	}
	b.WriteString(fmt.Sprintf("Expected window: %s to %s\n", next.Range.Start, next.Range.End))
	b.WriteString(fmt.Sprintf("Confidence: %s (%d%%)\n\n", next.Confidence, next.ConfidencePercentage))

	if preds.Ovulation != nil {
		b.WriteString(fmt.Sprintf("Ovulation: around %s (%d%%)\n", preds.Ovulation.Date, preds.Ovulation.ConfidencePercentage))
	}
	if preds.FertileWindow != nil {
		b.WriteString(fmt.Sprintf("Fertile window: %s to %s (%d%%)", preds.FertileWindow.Start, preds.FertileWindow.End, preds.FertileWindow.ConfidencePercentage))
	}
	return b.String()
}

// renderCalendar draws the month containing ref as a monospace grid.
func renderCalendar(marks map[dates.ISODate]app.DayMark, ref time.Time) string {
	first, last := dates.MonthBounds(ref)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("*%s %d*\n", first.Month(), first.Year()))
	b.WriteString("```\nMo  Tu  We  Th  Fr  Sa  Su\n")

	// Monday-first offset for the 1st of the month.
	offset := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("    ", offset))

	col := offset
	for d := first; !d.After(last); d = dates.AddDays(d, 1) {
		b.WriteString(fmt.Sprintf("%2d%s ", d.Day(), daySymbol(marks[dates.Format(d)])))
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	if col%7 != 0 {
		b.WriteString("\n")
	}
	b.WriteString("```\n")
	b.WriteString("# period  + predicted  ~ fertile  @ ovulation")
	return b.String()
}

func daySymbol(m app.DayMark) string {
	switch {
	case m.Period:
		return "#"
	case m.Ovulation:
		return "@"
	case m.Fertile:
		return "~"
	case m.PredictedPeriod:
		return "+"
	default:
		return " "
	}
}

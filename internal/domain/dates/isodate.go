// internal/domain/dates/isodate.go
package dates

import "time"

// Layout is the calendar-date format used everywhere in the app.
// All date arithmetic is timezone-naive: dates are parsed at UTC
// midnight and only whole-day differences are ever taken.
const Layout = "2006-01-02"

// maxEnumerateDays caps Enumerate so a malformed range can never
// produce an unbounded slice.
const maxEnumerateDays = 400

// ISODate is a calendar date in strict YYYY-MM-DD form, with no time
// component. The zero value ("") means "not set". Lexical comparison
// of two valid ISODates matches chronological order.
type ISODate string

// Parse converts an ISODate into a time.Time at UTC midnight.
func Parse(d ISODate) (time.Time, error) {
	return time.Parse(Layout, string(d))
}

// SafeParse is Parse with an ok flag instead of an error, for the
// engine's "skip malformed entries silently" contract.
func SafeParse(d ISODate) (time.Time, bool) {
	t, err := Parse(d)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Valid reports whether d is a parseable YYYY-MM-DD date.
func Valid(d ISODate) bool {
	_, ok := SafeParse(d)
	return ok
}

// Format renders a time.Time as an ISODate, dropping any time component.
func Format(t time.Time) ISODate {
	return ISODate(t.Format(Layout))
}

// AddDays returns t shifted by n calendar days (n may be negative).
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DiffDays returns the calendar-day difference a - b, ignoring any
// time-of-day or zone component on either argument.
func DiffDays(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ad.Sub(bd).Hours() / 24)
}

// Enumerate returns every date from start through end inclusive. An
// unparseable bound yields an empty slice, and the result is capped at
// maxEnumerateDays entries.
func Enumerate(start, end ISODate) []ISODate {
	startTime, ok := SafeParse(start)
	if !ok {
		return nil
	}
	endTime, ok := SafeParse(end)
	if !ok {
		return nil
	}

	var out []ISODate
	cursor := startTime
	for i := 0; i < maxEnumerateDays; i++ {
		out = append(out, Format(cursor))
		if !endTime.After(cursor) {
			break
		}
		cursor = AddDays(cursor, 1)
	}
	return out
}

// MonthBounds returns the first and last day of the month containing t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

package database

import "fmt"

// Sentinel errors shared by the Postgres repositories. Callers compare
// against these instead of inspecting driver errors.
var ErrPeriodEntryNotFound = fmt.Errorf("period entry not found")
var ErrSymptomEntryNotFound = fmt.Errorf("symptom entry not found")
var ErrMoodNotFound = fmt.Errorf("no mood recorded for this date")
var ErrSettingsNotFound = fmt.Errorf("reminder settings not found")
var ErrActivityEntryNotFound = fmt.Errorf("activity entry not found")
var ErrOvulationEntryNotFound = fmt.Errorf("ovulation entry not found")

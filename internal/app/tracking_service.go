package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cycle_companion_bot/internal/domain/activity"
	"cycle_companion_bot/internal/domain/dates"
	"cycle_companion_bot/internal/domain/ovulation"
	"cycle_companion_bot/internal/domain/period"
	"cycle_companion_bot/internal/domain/symptom"

	"github.com/google/uuid"
)

// Custom application-level errors for the tracking service.
var ErrInvalidDate = fmt.Errorf("date must be a valid YYYY-MM-DD calendar date")
var ErrUnknownFlow = fmt.Errorf("flow must be one of light, medium or heavy")
var ErrUnknownMood = fmt.Errorf("unknown mood value")
var ErrUnknownProtection = fmt.Errorf("protection must be one of protected, unprotected or none")
var ErrUnknownTestResult = fmt.Errorf("test result must be positive or negative")
var ErrInvalidTemperature = fmt.Errorf("temperature must be between 30 and 45 degrees Celsius")
var ErrNoOpenPeriod = fmt.Errorf("no open period entry to close")
var ErrEntryNotOwned = fmt.Errorf("entry does not belong to this chat")

// TrackingService handles the business logic for logging periods,
// symptoms and moods. Date-format validation happens here, at the
// data-model boundary, so the prediction engine can rely on lexical
// ordering of the stored ISO dates.
type TrackingService struct {
	periodRepo    period.Repository
	symptomRepo   symptom.Repository
	moodRepo      symptom.MoodRepository
	activityRepo  activity.Repository
	ovulationRepo ovulation.Repository
}

func NewTrackingService(
	pr period.Repository,
	sr symptom.Repository,
	mr symptom.MoodRepository,
	ar activity.Repository,
	or ovulation.Repository,
) *TrackingService {
	return &TrackingService{
		periodRepo:    pr,
		symptomRepo:   sr,
		moodRepo:      mr,
		activityRepo:  ar,
		ovulationRepo: or,
	}
}

// LogPeriod records a new period entry. End date and flow are optional;
// a missing end date leaves the entry open for ClosePeriod.
func (s *TrackingService) LogPeriod(ctx context.Context, chatID int64, start, end dates.ISODate, flow period.Flow, notes string) (*period.Entry, error) {
	if !dates.Valid(start) {
		return nil, ErrInvalidDate
	}
	if end != "" && !dates.Valid(end) {
		return nil, ErrInvalidDate
	}
	if flow != "" && flow != period.FlowLight && flow != period.FlowMedium && flow != period.FlowHeavy {
		return nil, ErrUnknownFlow
	}

	entry := &period.Entry{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		StartDate: start,
		EndDate:   end,
		Flow:      flow,
		Notes:     notes,
		CreatedAt: time.Now(),
	}
	if err := s.periodRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create period entry: %w", err)
	}
	return entry, nil
}

// ClosePeriod sets the end date on the chat's most recent open entry.
func (s *TrackingService) ClosePeriod(ctx context.Context, chatID int64, end dates.ISODate) (*period.Entry, error) {
	if !dates.Valid(end) {
		return nil, ErrInvalidDate
	}

	entries, err := s.periodRepo.ListByChat(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list period entries: %w", err)
	}

	var latest *period.Entry
	for _, e := range entries {
		if !e.Open() {
			continue
		}
		if latest == nil || e.StartDate > latest.StartDate {
			latest = e
		}
	}
	if latest == nil {
		return nil, ErrNoOpenPeriod
	}

	latest.EndDate = end
	if err := s.periodRepo.Update(ctx, latest); err != nil {
		return nil, fmt.Errorf("failed to close period entry: %w", err)
	}
	return latest, nil
}

// SetPeriodFlow updates the flow intensity on an existing entry.
func (s *TrackingService) SetPeriodFlow(ctx context.Context, chatID int64, entryID string, flow period.Flow) (*period.Entry, error) {
	if flow != period.FlowLight && flow != period.FlowMedium && flow != period.FlowHeavy {
		return nil, ErrUnknownFlow
	}

	entry, err := s.periodRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get period entry %s: %w", entryID, err)
	}
	if entry.ChatID != chatID {
		return nil, ErrEntryNotOwned
	}

	entry.Flow = flow
	if err := s.periodRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update period entry %s: %w", entryID, err)
	}
	return entry, nil
}

// DeletePeriod removes an entry after checking chat ownership.
func (s *TrackingService) DeletePeriod(ctx context.Context, chatID int64, entryID string) error {
	entry, err := s.periodRepo.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to get period entry %s: %w", entryID, err)
	}
	if entry.ChatID != chatID {
		return ErrEntryNotOwned
	}
	if err := s.periodRepo.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("failed to delete period entry %s: %w", entryID, err)
	}
	return nil
}

// ListPeriods returns the chat's entries sorted by start date ascending.
func (s *TrackingService) ListPeriods(ctx context.Context, chatID int64) ([]*period.Entry, error) {
	entries, err := s.periodRepo.ListByChat(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list period entries: %w", err)
	}
	sortEntriesByStart(entries)
	return entries, nil
}

// LogSymptoms records the symptoms for one day, optionally with a
// mood. Logging the same day twice replaces the earlier entry rather
// than stacking duplicates. The mood is mirrored into the per-day mood
// map so calendar views see it without scanning symptom entries.
func (s *TrackingService) LogSymptoms(ctx context.Context, chatID int64, date dates.ISODate, symptoms []string, mood symptom.Mood, notes string) (*symptom.Entry, error) {
	if !dates.Valid(date) {
		return nil, ErrInvalidDate
	}
	if mood != "" && !symptom.ValidMood(mood) {
		return nil, ErrUnknownMood
	}

	existing, err := s.symptomRepo.ListByChat(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list symptom entries: %w", err)
	}

	var entry *symptom.Entry
	for _, e := range existing {
		if e.Date == date {
			entry = e
			break
		}
	}

	if entry != nil {
		entry.Symptoms = symptoms
		entry.Mood = mood
		entry.Notes = notes
		if err := s.symptomRepo.Update(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to update symptom entry: %w", err)
		}
	} else {
		entry = &symptom.Entry{
			ID:        uuid.NewString(),
			ChatID:    chatID,
			Date:      date,
			Symptoms:  symptoms,
			Mood:      mood,
			Notes:     notes,
			CreatedAt: time.Now(),
		}
		if err := s.symptomRepo.Create(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create symptom entry: %w", err)
		}
	}

	if mood != "" {
		if err := s.moodRepo.SetForDate(ctx, chatID, date, mood); err != nil {
			return entry, fmt.Errorf("symptom entry saved but mood map update failed: %w", err)
		}
	}
	return entry, nil
}

// DeleteSymptoms removes a symptom entry after checking chat ownership.
func (s *TrackingService) DeleteSymptoms(ctx context.Context, chatID int64, entryID string) error {
	entry, err := s.symptomRepo.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to get symptom entry %s: %w", entryID, err)
	}
	if entry.ChatID != chatID {
		return ErrEntryNotOwned
	}
	if err := s.symptomRepo.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("failed to delete symptom entry %s: %w", entryID, err)
	}
	return nil
}

// SetMood records the mood for a single day.
func (s *TrackingService) SetMood(ctx context.Context, chatID int64, date dates.ISODate, mood symptom.Mood) error {
	if !dates.Valid(date) {
		return ErrInvalidDate
	}
	if !symptom.ValidMood(mood) {
		return ErrUnknownMood
	}
	if err := s.moodRepo.SetForDate(ctx, chatID, date, mood); err != nil {
		return fmt.Errorf("failed to set mood for %s: %w", date, err)
	}
	return nil
}

// ListSymptoms returns the chat's symptom entries sorted by date ascending.
func (s *TrackingService) ListSymptoms(ctx context.Context, chatID int64) ([]*symptom.Entry, error) {
	entries, err := s.symptomRepo.ListByChat(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list symptom entries: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}

// ListMoods returns the chat's per-day mood map, including moods set
// on days with no symptom entry.
func (s *TrackingService) ListMoods(ctx context.Context, chatID int64) (map[dates.ISODate]symptom.Mood, error) {
	moods, err := s.moodRepo.ListByChat(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moods: %w", err)
	}
	return moods, nil
}

// LogActivity records a sexual activity entry. An empty protection
// value defaults to "none", matching the logging form's preselection.
func (s *TrackingService) LogActivity(ctx context.Context, chatID int64, date dates.ISODate, protection activity.Protection, notes string) (*activity.Entry, error) {
	if !dates.Valid(date) {
		return nil, ErrInvalidDate
	}
	if protection == "" {
		protection = activity.ProtectionNone
	}
	if !activity.ValidProtection(protection) {
		return nil, ErrUnknownProtection
	}

	entry := &activity.Entry{
		ID:         uuid.NewString(),
		ChatID:     chatID,
		Date:       date,
		Protection: protection,
		Notes:      notes,
		CreatedAt:  time.Now(),
	}
	if err := s.activityRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create activity entry: %w", err)
	}
	return entry, nil
}

// ListActivity returns the chat's activity entries sorted by date ascending.
func (s *TrackingService) ListActivity(ctx context.Context, chatID int64) ([]*activity.Entry, error) {
	entries, err := s.activityRepo.ListByChat(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity entries: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}

// DeleteActivity removes an activity entry after checking chat ownership.
func (s *TrackingService) DeleteActivity(ctx context.Context, chatID int64, entryID string) error {
	entry, err := s.activityRepo.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to get activity entry %s: %w", entryID, err)
	}
	if entry.ChatID != chatID {
		return ErrEntryNotOwned
	}
	if err := s.activityRepo.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("failed to delete activity entry %s: %w", entryID, err)
	}
	return nil
}

// LogOvulation records the ovulation signals for one day: an optional
// predictor test result and an optional basal body temperature (0
// meaning not measured).
func (s *TrackingService) LogOvulation(ctx context.Context, chatID int64, date dates.ISODate, testResult ovulation.TestResult, bbt float64, notes string) (*ovulation.Entry, error) {
	if !dates.Valid(date) {
		return nil, ErrInvalidDate
	}
	if testResult != "" && !ovulation.ValidTestResult(testResult) {
		return nil, ErrUnknownTestResult
	}
	if bbt != 0 && (bbt < ovulation.MinBBT || bbt > ovulation.MaxBBT) {
		return nil, ErrInvalidTemperature
	}

	entry := &ovulation.Entry{
		ID:         uuid.NewString(),
		ChatID:     chatID,
		Date:       date,
		TestResult: testResult,
		BBT:        bbt,
		Notes:      notes,
		CreatedAt:  time.Now(),
	}
	if err := s.ovulationRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create ovulation entry: %w", err)
	}
	return entry, nil
}

// ListOvulation returns the chat's ovulation entries sorted by date ascending.
func (s *TrackingService) ListOvulation(ctx context.Context, chatID int64) ([]*ovulation.Entry, error) {
	entries, err := s.ovulationRepo.ListByChat(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ovulation entries: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}

// DeleteOvulation removes an ovulation entry after checking chat ownership.
func (s *TrackingService) DeleteOvulation(ctx context.Context, chatID int64, entryID string) error {
	entry, err := s.ovulationRepo.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to get ovulation entry %s: %w", entryID, err)
	}
	if entry.ChatID != chatID {
		return ErrEntryNotOwned
	}
	if err := s.ovulationRepo.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("failed to delete ovulation entry %s: %w", entryID, err)
	}
	return nil
}

func sortEntriesByStart(entries []*period.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartDate < entries[j].StartDate
	})
}

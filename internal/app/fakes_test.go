package app

import (
	"context"
	"sync"

	"cycle_companion_bot/internal/domain/activity"
	"cycle_companion_bot/internal/domain/dates"
	"cycle_companion_bot/internal/domain/ovulation"
	"cycle_companion_bot/internal/domain/period"
	"cycle_companion_bot/internal/domain/reminder"
	"cycle_companion_bot/internal/domain/symptom"
	idb "cycle_companion_bot/internal/infra/database"

	"gopkg.in/telebot.v3"
)

// In-memory repository fakes for service tests.

type fakePeriodRepo struct {
	mu      sync.Mutex
	entries map[string]*period.Entry
}

func newFakePeriodRepo() *fakePeriodRepo {
	return &fakePeriodRepo{entries: make(map[string]*period.Entry)}
}

func (r *fakePeriodRepo) Create(_ context.Context, e *period.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *e
	r.entries[e.ID] = &stored
	return nil
}

func (r *fakePeriodRepo) GetByID(_ context.Context, id string) (*period.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, idb.ErrPeriodEntryNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakePeriodRepo) Update(_ context.Context, e *period.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[e.ID]; !ok {
		return idb.ErrPeriodEntryNotFound
	}
	stored := *e
	r.entries[e.ID] = &stored
	return nil
}

func (r *fakePeriodRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return idb.ErrPeriodEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *fakePeriodRepo) ListByChat(_ context.Context, chatID int64) ([]*period.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*period.Entry, 0)
	for _, e := range r.entries {
		if e.ChatID == chatID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeSymptomRepo struct {
	mu      sync.Mutex
	entries map[string]*symptom.Entry
}

func newFakeSymptomRepo() *fakeSymptomRepo {
	return &fakeSymptomRepo{entries: make(map[string]*symptom.Entry)}
}

func (r *fakeSymptomRepo) Create(_ context.Context, e *symptom.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *e
	r.entries[e.ID] = &stored
	return nil
}

func (r *fakeSymptomRepo) GetByID(_ context.Context, id string) (*symptom.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, idb.ErrSymptomEntryNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeSymptomRepo) Update(_ context.Context, e *symptom.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[e.ID]; !ok {
		return idb.ErrSymptomEntryNotFound
	}
	stored := *e
	r.entries[e.ID] = &stored
	return nil
}

func (r *fakeSymptomRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return idb.ErrSymptomEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *fakeSymptomRepo) ListByChat(_ context.Context, chatID int64) ([]*symptom.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*symptom.Entry, 0)
	for _, e := range r.entries {
		if e.ChatID == chatID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

type moodKey struct {
	chatID int64
	date   dates.ISODate
}

type fakeMoodRepo struct {
	mu    sync.Mutex
	moods map[moodKey]symptom.Mood
}

func newFakeMoodRepo() *fakeMoodRepo {
	return &fakeMoodRepo{moods: make(map[moodKey]symptom.Mood)}
}

func (r *fakeMoodRepo) SetForDate(_ context.Context, chatID int64, date dates.ISODate, mood symptom.Mood) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.moods[moodKey{chatID, date}] = mood
	return nil
}

func (r *fakeMoodRepo) GetForDate(_ context.Context, chatID int64, date dates.ISODate) (symptom.Mood, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	mood, ok := r.moods[moodKey{chatID, date}]
	if !ok {
		return "", idb.ErrMoodNotFound
	}
	return mood, nil
}

func (r *fakeMoodRepo) ListByChat(_ context.Context, chatID int64) (map[dates.ISODate]symptom.Mood, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[dates.ISODate]symptom.Mood)
	for k, v := range r.moods {
		if k.chatID == chatID {
			out[k.date] = v
		}
	}
	return out, nil
}

type fakeActivityRepo struct {
	mu      sync.Mutex
	entries map[string]*activity.Entry
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{entries: make(map[string]*activity.Entry)}
}

func (r *fakeActivityRepo) Create(_ context.Context, e *activity.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *e
	r.entries[e.ID] = &stored
	return nil
}

func (r *fakeActivityRepo) GetByID(_ context.Context, id string) (*activity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, idb.ErrActivityEntryNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeActivityRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return idb.ErrActivityEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *fakeActivityRepo) ListByChat(_ context.Context, chatID int64) ([]*activity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*activity.Entry, 0)
	for _, e := range r.entries {
		if e.ChatID == chatID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeOvulationRepo struct {
	mu      sync.Mutex
	entries map[string]*ovulation.Entry
}

func newFakeOvulationRepo() *fakeOvulationRepo {
	return &fakeOvulationRepo{entries: make(map[string]*ovulation.Entry)}
}

func (r *fakeOvulationRepo) Create(_ context.Context, e *ovulation.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *e
	r.entries[e.ID] = &stored
	return nil
}

func (r *fakeOvulationRepo) GetByID(_ context.Context, id string) (*ovulation.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, idb.ErrOvulationEntryNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeOvulationRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return idb.ErrOvulationEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *fakeOvulationRepo) ListByChat(_ context.Context, chatID int64) ([]*ovulation.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*ovulation.Entry, 0)
	for _, e := range r.entries {
		if e.ChatID == chatID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings map[int64]*reminder.Settings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[int64]*reminder.Settings)}
}

func (r *fakeSettingsRepo) Get(_ context.Context, chatID int64) (*reminder.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.settings[chatID]
	if !ok {
		return nil, idb.ErrSettingsNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, s *reminder.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *s
	r.settings[s.ChatID] = &stored
	return nil
}

func (r *fakeSettingsRepo) ListEnabled(_ context.Context) ([]*reminder.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*reminder.Settings, 0)
	for _, s := range r.settings {
		if s.DailyCheckInEnabled || s.PeriodReminderEnabled {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

type sentMessage struct {
	chatID int64
	text   string
}

type fakeTelegramClient struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (c *fakeTelegramClient) SendMessage(chatID int64, text string, _ *telebot.SendOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

func (c *fakeTelegramClient) messages() []sentMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]sentMessage(nil), c.sent...)
}

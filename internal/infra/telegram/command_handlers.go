package telegram

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"cycle_companion_bot/internal/app"
	"cycle_companion_bot/internal/domain/activity"
	"cycle_companion_bot/internal/domain/dates"
	"cycle_companion_bot/internal/domain/ovulation"
	"cycle_companion_bot/internal/domain/period"
	"cycle_companion_bot/internal/domain/prediction"
	"cycle_companion_bot/internal/domain/symptom"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const startMessage = `Welcome to Cycle Companion!

Log your cycle and I will predict your next period, ovulation day and fertile window.

Commands:
/log_period <start> [end] [flow] - log a period (dates as YYYY-MM-DD)
/end_period <date> - close your open period
/periods - show your logged periods
/delete_last_period - remove the most recent entry
/log_symptoms <date> <symptoms,comma,separated> - log symptoms
/symptoms - show your symptom and mood history
/delete_last_symptoms - remove the most recent symptom entry
/mood <date> <mood> - log a mood (happy, sad, anxious, irritable, calm, energetic, tired)
/log_activity <date> [protected|unprotected|none] - log sexual activity
/activity - show your activity history
/delete_last_activity - remove the most recent activity entry
/log_ovulation <date> [positive|negative] [temperature] - log ovulation signals
/ovulation - show your ovulation signal history
/delete_last_ovulation - remove the most recent ovulation entry
/learn - educational articles about your cycle
/faq - frequently asked questions
/stats - your cycle statistics
/predict - next period, ovulation and fertile window
/calendar - this month at a glance
/reminders - reminder settings
/daily_reminder on|off - evening check-in reminder
/period_reminder on|off [days] - heads-up before your predicted period`

// RegisterTrackingHandlers registers the period/symptom/mood logging
// commands and the insight commands (/stats, /predict, /calendar).
func RegisterTrackingHandlers(ctx context.Context, b *telebot.Bot, trackingService *app.TrackingService, baseLogger *logrus.Entry) {
	b.Handle("/start", func(c telebot.Context) error {
		return c.Send(startMessage)
	})

	b.Handle("/log_period", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler": "/log_period",
			"chat_id": c.Sender().ID,
		})

		args := c.Args()
		// Expected format: /log_period <start> [end] [flow]
		if len(args) < 1 || len(args) > 3 {
			return c.Send("Usage: /log_period <start YYYY-MM-DD> [end YYYY-MM-DD] [light|medium|heavy]")
		}

		start := dates.ISODate(args[0])
		var end dates.ISODate
		var flow period.Flow

		// The second argument may be an end date or a flow level.
		rest := args[1:]
		if len(rest) > 0 && dates.Valid(dates.ISODate(rest[0])) {
			end = dates.ISODate(rest[0])
			rest = rest[1:]
		}
		if len(rest) > 0 {
			flow = period.Flow(strings.ToLower(rest[0]))
		}

		entry, err := trackingService.LogPeriod(ctx, c.Sender().ID, start, end, flow, "")
		if err != nil {
			logWithError := handlerLogger.WithError(err)
			switch err {
			case app.ErrInvalidDate:
				logWithError.Warn("Invalid date in /log_period")
				return c.Send("That date doesn't look right. Please use YYYY-MM-DD, e.g. 2024-03-25.")
			case app.ErrUnknownFlow:
				logWithError.Warn("Invalid flow in /log_period")
				return c.Send("Flow must be one of: light, medium, heavy.")
			default:
				logWithError.Error("Failed to log period")
				return c.Send("Something went wrong saving your period. Please try again.")
			}
		}

		handlerLogger.WithField("entry_id", entry.ID).Info("Period logged")

		if entry.Flow == "" {
			// Offer the flow selection buttons for the fresh entry.
			markup := &telebot.ReplyMarkup{}
			btnLight := markup.Data("Light", flowCallbackData(period.FlowLight, entry.ID))
			btnMedium := markup.Data("Medium", flowCallbackData(period.FlowMedium, entry.ID))
			btnHeavy := markup.Data("Heavy", flowCallbackData(period.FlowHeavy, entry.ID))
			markup.Inline(markup.Row(btnLight, btnMedium, btnHeavy))
			return c.Send(fmt.Sprintf("Period starting %s logged. How heavy is the flow?", entry.StartDate), markup)
		}
		return c.Send(fmt.Sprintf("Period starting %s logged.", entry.StartDate))
	})

	b.Handle("/end_period", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler": "/end_period",
			"chat_id": c.Sender().ID,
		})

		args := c.Args()
		if len(args) != 1 {
			return c.Send("Usage: /end_period <date YYYY-MM-DD>")
		}

		entry, err := trackingService.ClosePeriod(ctx, c.Sender().ID, dates.ISODate(args[0]))
		if err != nil {
			logWithError := handlerLogger.WithError(err)
			switch err {
			case app.ErrInvalidDate:
				return c.Send("That date doesn't look right. Please use YYYY-MM-DD.")
			case app.ErrNoOpenPeriod:
				return c.Send("You have no open period entry. Log one first with /log_period.")
			default:
				logWithError.Error("Failed to close period")
				return c.Send("Something went wrong. Please try again.")
			}
		}

		handlerLogger.WithField("entry_id", entry.ID).Info("Period closed")
		return c.Send(fmt.Sprintf("Period %s to %s recorded.", entry.StartDate, entry.EndDate))
	})

	b.Handle("/periods", func(c telebot.Context) error {
		entries, err := trackingService.ListPeriods(ctx, c.Sender().ID)
		if err != nil {
			baseLogger.WithError(err).Error("Failed to list periods")
			return c.Send("Something went wrong loading your entries.")
		}
		if len(entries) == 0 {
			return c.Send("No periods logged yet. Start with /log_period <date>.")
		}

		var response strings.Builder
		response.WriteString("Your logged periods:\n")
		for _, e := range entries {
			if e.Open() {
				response.WriteString(fmt.Sprintf("- started %s (ongoing)", e.StartDate))
			} else {
				response.WriteString(fmt.Sprintf("- %s to %s", e.StartDate, e.EndDate))
			}
			if e.Flow != "" {
				response.WriteString(fmt.Sprintf(", %s flow", e.Flow))
			}
			response.WriteString("\n")
		}
		return c.Send(response.String())
	})

	b.Handle("/delete_last_period", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler": "/delete_last_period",
			"chat_id": c.Sender().ID,
		})

		entries, err := trackingService.ListPeriods(ctx, c.Sender().ID)
		if err != nil {
			handlerLogger.WithError(err).Error("Failed to list periods for deletion")
			return c.Send("Something went wrong. Please try again.")
		}
		if len(entries) == 0 {
			return c.Send("Nothing to delete: no periods logged yet.")
		}

		last := entries[len(entries)-1]
		if err := trackingService.DeletePeriod(ctx, c.Sender().ID, last.ID); err != nil {
			handlerLogger.WithError(err).Error("Failed to delete period")
			return c.Send("Something went wrong deleting the entry.")
		}
		handlerLogger.WithField("entry_id", last.ID).Info("Period deleted")
		return c.Send(fmt.Sprintf("Deleted the period starting %s.", last.StartDate))
	})

	b.Handle("/log_symptoms", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler": "/log_symptoms",
			"chat_id": c.Sender().ID,
		})

		args := c.Args()
		if len(args) < 2 {
			return c.Send("Usage: /log_symptoms <date YYYY-MM-DD> <symptoms,comma,separated>")
		}

		date := dates.ISODate(args[0])
		var symptoms []string
		for _, s := range strings.Split(strings.Join(args[1:], " "), ",") {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				symptoms = append(symptoms, trimmed)
			}
		}

		if _, err := trackingService.LogSymptoms(ctx, c.Sender().ID, date, symptoms, "", ""); err != nil {
			logWithError := handlerLogger.WithError(err)
			if err == app.ErrInvalidDate {
				return c.Send("That date doesn't look right. Please use YYYY-MM-DD.")
			}
			logWithError.Error("Failed to log symptoms")
			return c.Send("Something went wrong saving your symptoms.")
		}
		handlerLogger.WithField("symptom_count", len(symptoms)).Info("Symptoms logged")
		return c.Send(fmt.Sprintf("Symptoms for %s logged: %s.", date, strings.Join(symptoms, ", ")))
	})

	b.Handle("/symptoms", func(c telebot.Context) error {
		entries, err := trackingService.ListSymptoms(ctx, c.Sender().ID)
		if err != nil {
			baseLogger.WithError(err).Error("Failed to list symptoms")
			return c.Send("Something went wrong loading your entries.")
		}
		moods, err := trackingService.ListMoods(ctx, c.Sender().ID)
		if err != nil {
			baseLogger.WithError(err).Error("Failed to list moods")
			return c.Send("Something went wrong loading your entries.")
		}
		if len(entries) == 0 && len(moods) == 0 {
			return c.Send("No symptoms logged yet. Start with /log_symptoms <date> <symptoms>.")
		}

		var response strings.Builder
		response.WriteString("Your symptom history:\n")
		logged := make(map[dates.ISODate]bool, len(entries))
		for _, e := range entries {
			logged[e.Date] = true
			response.WriteString(fmt.Sprintf("- %s: %s", e.Date, strings.Join(e.Symptoms, ", ")))
			if mood, ok := moods[e.Date]; ok {
				response.WriteString(fmt.Sprintf(" (mood: %s)", mood))
			}
			response.WriteString("\n")
		}

		// Moods set on days without a symptom entry.
		var moodOnly []dates.ISODate
		for d := range moods {
			if !logged[d] {
				moodOnly = append(moodOnly, d)
			}
		}
		sort.Slice(moodOnly, func(i, j int) bool { return moodOnly[i] < moodOnly[j] })
		for _, d := range moodOnly {
			response.WriteString(fmt.Sprintf("- %s: mood %s\n", d, moods[d]))
		}
		return c.Send(response.String())
	})

	b.Handle("/delete_last_symptoms", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler": "/delete_last_symptoms",
			"chat_id": c.Sender().ID,
		})

		entries, err := trackingService.ListSymptoms(ctx, c.Sender().ID)
		if err != nil {
			handlerLogger.WithError(err).Error("Failed to list symptoms for deletion")
			return c.Send("Something went wrong. Please try again.")
		}
		if len(entries) == 0 {
			return c.Send("Nothing to delete: no symptoms logged yet.")
		}

		last := entries[len(entries)-1]
		if err := trackingService.DeleteSymptoms(ctx, c.Sender().ID, last.ID); err != nil {
			handlerLogger.WithError(err).Error("Failed to delete symptom entry")
			return c.Send("Something went wrong deleting the entry.")
		}
		handlerLogger.WithField("entry_id", last.ID).Info("Symptom entry deleted")
		return c.Send(fmt.Sprintf("Deleted the symptom entry for %s.", last.Date))
	})

	b.Handle("/mood", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler": "/mood",
			"chat_id": c.Sender().ID,
		})

		args := c.Args()
		if len(args) != 2 {
			return c.Send("Usage: /mood <date YYYY-MM-DD> <mood>\nMoods: happy, sad, anxious, irritable, calm, energetic, tired")
		}

		date := dates.ISODate(args[0])
		mood := symptom.Mood(strings.ToLower(args[1]))
		if err := trackingService.SetMood(ctx, c.Sender().ID, date, mood); err != nil {
			logWithError := handlerLogger.WithError(err)
			switch err {
			case app.ErrInvalidDate:
				return c.Send("That date doesn't look right. Please use YYYY-MM-DD.")
			case app.ErrUnknownMood:
				return c.Send("Moods: happy, sad, anxious, irritable, calm, energetic, tired.")
			default:
				logWithError.Error("Failed to set mood")
				return c.Send("Something went wrong saving your mood.")
			}
		}
		handlerLogger.Info("Mood logged")
		return c.Send(fmt.Sprintf("Mood for %s set to %s.", date, mood))
	})

	b.Handle("/log_activity", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler": "/log_activity",
			"chat_id": c.Sender().ID,
		})

		args := c.Args()
		if len(args) < 1 {
			return c.Send("Usage: /log_activity <date YYYY-MM-DD> [protected|unprotected|none] [notes]")
		}

		date := dates.ISODate(args[0])
		var protection activity.Protection
		rest := args[1:]
		if len(rest) > 0 && activity.ValidProtection(activity.Protection(strings.ToLower(rest[0]))) {
			protection = activity.Protection(strings.ToLower(rest[0]))
			rest = rest[1:]
		}
		notes := strings.Join(rest, " ")

		entry, err := trackingService.LogActivity(ctx, c.Sender().ID, date, protection, notes)
		if err != nil {
			logWithError := handlerLogger.WithError(err)
			if err == app.ErrInvalidDate {
				return c.Send("That date doesn't look right. Please use YYYY-MM-DD.")
			}
			logWithError.Error("Failed to log activity")
			return c.Send("Something went wrong saving your entry.")
		}
		handlerLogger.WithField("entry_id", entry.ID).Info("Activity logged")
		return c.Send(fmt.Sprintf("Activity for %s logged (%s).", entry.Date, entry.Protection))
	})

	b.Handle("/activity", func(c telebot.Context) error {
		entries, err := trackingService.ListActivity(ctx, c.Sender().ID)
		if err != nil {
			baseLogger.WithError(err).Error("Failed to list activity")
			return c.Send("Something went wrong loading your entries.")
		}
		if len(entries) == 0 {
			return c.Send("No activity logged yet. Start with /log_activity <date>.")
		}

		var response strings.Builder
		response.WriteString("Your activity history:\n")
		for _, e := range entries {
			response.WriteString(fmt.Sprintf("- %s: %s", e.Date, e.Protection))
			if e.Notes != "" {
				response.WriteString(fmt.Sprintf(" (%s)", e.Notes))
			}
			response.WriteString("\n")
		}
		return c.Send(response.String())
	})

	b.Handle("/delete_last_activity", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler": "/delete_last_activity",
			"chat_id": c.Sender().ID,
		})

		entries, err := trackingService.ListActivity(ctx, c.Sender().ID)
		if err != nil {
			handlerLogger.WithError(err).Error("Failed to list activity for deletion")
			return c.Send("Something went wrong. Please try again.")
		}
		if len(entries) == 0 {
			return c.Send("Nothing to delete: no activity logged yet.")
		}

		last := entries[len(entries)-1]
		if err := trackingService.DeleteActivity(ctx, c.Sender().ID, last.ID); err != nil {
			handlerLogger.WithError(err).Error("Failed to delete activity entry")
			return c.Send("Something went wrong deleting the entry.")
		}
		handlerLogger.WithField("entry_id", last.ID).Info("Activity entry deleted")
		return c.Send(fmt.Sprintf("Deleted the activity entry for %s.", last.Date))
	})

	b.Handle("/log_ovulation", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler": "/log_ovulation",
			"chat_id": c.Sender().ID,
		})

		args := c.Args()
		if len(args) < 1 || len(args) > 3 {
			return c.Send("Usage: /log_ovulation <date YYYY-MM-DD> [positive|negative] [temperature C]")
		}

		date := dates.ISODate(args[0])
		var testResult ovulation.TestResult
		var bbt float64
		for _, arg := range args[1:] {
			lowered := strings.ToLower(arg)
			if ovulation.ValidTestResult(ovulation.TestResult(lowered)) {
				testResult = ovulation.TestResult(lowered)
				continue
			}
			parsed, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return c.Send("Usage: /log_ovulation <date YYYY-MM-DD> [positive|negative] [temperature C]")
			}
			bbt = parsed
		}

		entry, err := trackingService.LogOvulation(ctx, c.Sender().ID, date, testResult, bbt, "")
		if err != nil {
			logWithError := handlerLogger.WithError(err)
			switch err {
			case app.ErrInvalidDate:
				return c.Send("That date doesn't look right. Please use YYYY-MM-DD.")
			case app.ErrInvalidTemperature:
				return c.Send("Temperature must be between 30 and 45 degrees Celsius.")
			default:
				logWithError.Error("Failed to log ovulation signals")
				return c.Send("Something went wrong saving your entry.")
			}
		}
		handlerLogger.WithField("entry_id", entry.ID).Info("Ovulation signals logged")
		return c.Send(fmt.Sprintf("Ovulation signals for %s logged.", entry.Date))
	})

	b.Handle("/ovulation", func(c telebot.Context) error {
		entries, err := trackingService.ListOvulation(ctx, c.Sender().ID)
		if err != nil {
			baseLogger.WithError(err).Error("Failed to list ovulation signals")
			return c.Send("Something went wrong loading your entries.")
		}
		if len(entries) == 0 {
			return c.Send("No ovulation signals logged yet. Start with /log_ovulation <date>.")
		}

		var response strings.Builder
		response.WriteString("Your ovulation signals:\n")
		for _, e := range entries {
			response.WriteString(fmt.Sprintf("- %s:", e.Date))
			if e.TestResult != "" {
				response.WriteString(fmt.Sprintf(" test %s", e.TestResult))
			}
			if e.BBT != 0 {
				response.WriteString(fmt.Sprintf(" BBT %.1fC", e.BBT))
			}
			if e.TestResult == "" && e.BBT == 0 {
				response.WriteString(" (no signals recorded)")
			}
			response.WriteString("\n")
		}
		return c.Send(response.String())
	})

	b.Handle("/delete_last_ovulation", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler": "/delete_last_ovulation",
			"chat_id": c.Sender().ID,
		})

		entries, err := trackingService.ListOvulation(ctx, c.Sender().ID)
		if err != nil {
			handlerLogger.WithError(err).Error("Failed to list ovulation entries for deletion")
			return c.Send("Something went wrong. Please try again.")
		}
		if len(entries) == 0 {
			return c.Send("Nothing to delete: no ovulation signals logged yet.")
		}

		last := entries[len(entries)-1]
		if err := trackingService.DeleteOvulation(ctx, c.Sender().ID, last.ID); err != nil {
			handlerLogger.WithError(err).Error("Failed to delete ovulation entry")
			return c.Send("Something went wrong deleting the entry.")
		}
		handlerLogger.WithField("entry_id", last.ID).Info("Ovulation entry deleted")
		return c.Send(fmt.Sprintf("Deleted the ovulation entry for %s.", last.Date))
	})

	b.Handle("/stats", func(c telebot.Context) error {
		entries, err := trackingService.ListPeriods(ctx, c.Sender().ID)
		if err != nil {
			baseLogger.WithError(err).Error("Failed to load entries for /stats")
			return c.Send("Something went wrong loading your data.")
		}
		stats := prediction.ComputeCycleStats(entries)
		return c.Send(renderStats(stats))
	})

	b.Handle("/predict", func(c telebot.Context) error {
		entries, err := trackingService.ListPeriods(ctx, c.Sender().ID)
		if err != nil {
			baseLogger.WithError(err).Error("Failed to load entries for /predict")
			return c.Send("Something went wrong loading your data.")
		}
		preds := prediction.ComputePredictionsNow(entries)
		return c.Send(renderPredictions(preds))
	})

	b.Handle("/calendar", func(c telebot.Context) error {
		entries, err := trackingService.ListPeriods(ctx, c.Sender().ID)
		if err != nil {
			baseLogger.WithError(err).Error("Failed to load entries for /calendar")
			return c.Send("Something went wrong loading your data.")
		}
		preds := prediction.ComputePredictionsNow(entries)
		marks := app.BuildCalendarMarks(entries, preds)
		return c.Send(renderCalendar(marks, time.Now()), telebot.ModeMarkdown)
	})
}

// RegisterReminderHandlers registers the reminder settings commands.
func RegisterReminderHandlers(ctx context.Context, b *telebot.Bot, reminderService app.ReminderService, baseLogger *logrus.Entry) {
	b.Handle("/reminders", func(c telebot.Context) error {
		settings, err := reminderService.GetSettings(ctx, c.Sender().ID)
		if err != nil {
			baseLogger.WithError(err).Error("Failed to load reminder settings")
			return c.Send("Something went wrong loading your settings.")
		}
		return c.Send(fmt.Sprintf(
			"Reminder settings:\n- Daily check-in: %s\n- Period heads-up: %s (%d days in advance)",
			onOff(settings.DailyCheckInEnabled), onOff(settings.PeriodReminderEnabled), settings.LeadDays))
	})

	b.Handle("/daily_reminder", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler": "/daily_reminder",
			"chat_id": c.Sender().ID,
		})

		args := c.Args()
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return c.Send("Usage: /daily_reminder on|off")
		}

		settings, err := reminderService.SetDailyCheckIn(ctx, c.Sender().ID, args[0] == "on")
		if err != nil {
			handlerLogger.WithError(err).Error("Failed to update daily reminder setting")
			return c.Send("Something went wrong saving your settings.")
		}
		handlerLogger.WithField("enabled", settings.DailyCheckInEnabled).Info("Daily reminder setting updated")
		if settings.DailyCheckInEnabled {
			return c.Send("Daily check-in reminder is on. I'll nudge you every evening.")
		}
		return c.Send("Daily check-in reminder is off.")
	})

	b.Handle("/period_reminder", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler": "/period_reminder",
			"chat_id": c.Sender().ID,
		})

		args := c.Args()
		if len(args) < 1 || len(args) > 2 || (args[0] != "on" && args[0] != "off") {
			return c.Send("Usage: /period_reminder on|off [days in advance]")
		}

		leadDays := 0
		if len(args) == 2 {
			parsed, err := strconv.Atoi(args[1])
			if err != nil || parsed < 1 || parsed > 14 {
				return c.Send("Days in advance must be a number between 1 and 14.")
			}
			leadDays = parsed
		}

		settings, err := reminderService.SetPeriodReminder(ctx, c.Sender().ID, args[0] == "on", leadDays)
		if err != nil {
			handlerLogger.WithError(err).Error("Failed to update period reminder setting")
			return c.Send("Something went wrong saving your settings.")
		}
		handlerLogger.WithFields(logrus.Fields{
			"enabled":   settings.PeriodReminderEnabled,
			"lead_days": settings.LeadDays,
		}).Info("Period reminder setting updated")
		if settings.PeriodReminderEnabled {
			return c.Send(fmt.Sprintf("Period reminder is on: I'll warn you %d days before your predicted window.", settings.LeadDays))
		}
		return c.Send("Period reminder is off.")
	})
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

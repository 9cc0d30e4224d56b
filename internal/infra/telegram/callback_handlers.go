// internal/infra/telegram/callback_handlers.go
package telegram

import (
	"context"
	"fmt"
	"strings"

	"cycle_companion_bot/internal/app"
	"cycle_companion_bot/internal/domain/period"

	"gopkg.in/telebot.v3"
)

const flowCallbackPrefix = "flow_"

// flowCallbackData encodes a flow selection button, e.g. "flow_light_<entryID>".
func flowCallbackData(flow period.Flow, entryID string) string {
	return fmt.Sprintf("%s%s_%s", flowCallbackPrefix, flow, entryID)
}

// RegisterCallbackHandlers wires the inline keyboard callbacks (flow
// selection after /log_period).
func RegisterCallbackHandlers(ctx context.Context, b *telebot.Bot, trackingService *app.TrackingService) {
	b.Handle(telebot.OnCallback, func(c telebot.Context) error {
		// telebot prefixes callback data with "\f" for Data buttons.
		data := strings.TrimPrefix(c.Callback().Data, "\f")

		if strings.HasPrefix(data, flowCallbackPrefix) {
			parts := strings.SplitN(strings.TrimPrefix(data, flowCallbackPrefix), "_", 2)
			if len(parts) != 2 {
				c.Bot().OnError(fmt.Errorf("invalid flow callback data: %s", data), c)
				return c.Respond(&telebot.CallbackResponse{Text: "Could not process that."})
			}
			flow := period.Flow(parts[0])
			entryID := parts[1]

			entry, err := trackingService.SetPeriodFlow(ctx, c.Sender().ID, entryID, flow)
			if err != nil {
				c.Bot().OnError(fmt.Errorf("error setting flow for entry %s: %w", entryID, err), c)
				return c.Respond(&telebot.CallbackResponse{Text: "Could not save the flow level."})
			}
			if err := c.Respond(&telebot.CallbackResponse{Text: "Flow saved."}); err != nil {
				return err
			}
			return c.Send(fmt.Sprintf("Noted: %s flow for the period starting %s.", entry.Flow, entry.StartDate))
		}

		// Fallback for callbacks this handler does not understand.
		c.Bot().OnError(fmt.Errorf("unhandled callback data: %s", data), c)
		return c.Respond(&telebot.CallbackResponse{Text: "Unknown action."})
	})
}

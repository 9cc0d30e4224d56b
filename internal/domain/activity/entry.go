package activity

import (
	"time"

	"cycle_companion_bot/internal/domain/dates"
)

// Protection is the self-reported protection status for a logged
// sexual activity entry.
type Protection string

const (
	ProtectionProtected   Protection = "protected"
	ProtectionUnprotected Protection = "unprotected"
	ProtectionNone        Protection = "none"
)

// KnownProtections lists every accepted protection value, in display order.
var KnownProtections = []Protection{
	ProtectionProtected, ProtectionUnprotected, ProtectionNone,
}

// ValidProtection reports whether p is one of the accepted values.
func ValidProtection(p Protection) bool {
	for _, known := range KnownProtections {
		if p == known {
			return true
		}
	}
	return false
}

// Entry represents one logged sexual activity event.
type Entry struct {
	ID         string
	ChatID     int64
	Date       dates.ISODate
	Protection Protection
	Notes      string
	CreatedAt  time.Time
}

package quota

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// computeGrant applies the clamping rule: grant as much of the request as the
// remaining allowance covers. limit <= 0 disables the cap entirely.
func computeGrant(used, requested, limit int) (granted, newUsed, remaining int) {
	// A non-positive request grants nothing and reports the full daily
	// allowance, matching the ledger's pre-consumption view.
	if requested <= 0 {
		if limit <= 0 {
			return 0, used, UnlimitedRemaining
		}
		return 0, used, limit
	}

	if limit <= 0 {
		return requested, used + requested, UnlimitedRemaining
	}

	available := limit - used
	if available < 0 {
		available = 0
	}
	if requested > available {
		requested = available
	}

	newUsed = used + requested
	return requested, newUsed, limit - newUsed
}

// ResetClock is the time of day at which the daily period rolls over.
type ResetClock struct {
	Hour   int
	Minute int
}

// DefaultResetClock is used when the configured reset time cannot be parsed.
var DefaultResetClock = ResetClock{Hour: 4}

// ParseResetClock parses "HH:MM"; malformed input falls back to
// DefaultResetClock rather than failing startup.
func ParseResetClock(s string) ResetClock {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return DefaultResetClock
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return DefaultResetClock
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return DefaultResetClock
	}
	return ResetClock{Hour: hour, Minute: minute}
}

// PeriodKey names the daily period containing now. Before the reset time the
// period still belongs to the previous calendar day, so usage carries across
// midnight until the configured rollover.
func (c ResetClock) PeriodKey(now time.Time) string {
	reset := time.Date(now.Year(), now.Month(), now.Day(), c.Hour, c.Minute, 0, 0, now.Location())
	if now.Before(reset) {
		now = now.AddDate(0, 0, -1)
	}
	return fmt.Sprintf("%04d-%02d-%02d", now.Year(), now.Month(), now.Day())
}

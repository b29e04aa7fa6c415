package quota

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeGrant(t *testing.T) {
	tests := []struct {
		name                          string
		used, requested, limit        int
		wantGranted, wantUsed, wantRemaining int
	}{
		{"fresh period full grant", 0, 3, 8, 3, 3, 5},
		{"second grant fits", 3, 3, 8, 3, 6, 2},
		{"clamped to remaining", 6, 3, 8, 2, 8, 0},
		{"exhausted grants zero", 8, 3, 8, 0, 8, 0},
		{"request exactly remaining", 5, 3, 8, 3, 8, 0},
		{"zero request reports full allowance", 4, 0, 8, 0, 4, 8},
		{"negative request treated as zero", 4, -2, 8, 0, 4, 8},
		{"zero request with no cap", 4, 0, 0, 0, 4, UnlimitedRemaining},
		{"unlimited passes through", 100, 50, 0, 50, 150, UnlimitedRemaining},
		{"negative limit means unlimited", 0, 7, -1, 7, 7, UnlimitedRemaining},
		{"overdrawn state grants zero", 10, 1, 8, 0, 10, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			granted, used, remaining := computeGrant(tt.used, tt.requested, tt.limit)
			assert.Equal(t, tt.wantGranted, granted, "granted")
			assert.Equal(t, tt.wantUsed, used, "used")
			assert.Equal(t, tt.wantRemaining, remaining, "remaining")
		})
	}
}

func TestParseResetClock(t *testing.T) {
	tests := []struct {
		in   string
		want ResetClock
	}{
		{"04:00", ResetClock{Hour: 4}},
		{"00:00", ResetClock{}},
		{"23:59", ResetClock{Hour: 23, Minute: 59}},
		{" 06:30 ", ResetClock{Hour: 6, Minute: 30}},
		{"25:00", DefaultResetClock},
		{"12:75", DefaultResetClock},
		{"noon", DefaultResetClock},
		{"", DefaultResetClock},
		{"12", DefaultResetClock},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseResetClock(tt.in))
		})
	}
}

func TestPeriodKeyRollsOverAtResetTime(t *testing.T) {
	clock := ResetClock{Hour: 4}

	// 03:59 still belongs to the previous day's period.
	before := time.Date(2026, 8, 31, 3, 59, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-30", clock.PeriodKey(before))

	at := time.Date(2026, 8, 31, 4, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-31", clock.PeriodKey(at))

	evening := time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-31", clock.PeriodKey(evening))
}

func TestPeriodKeyMonthBoundary(t *testing.T) {
	clock := ResetClock{Hour: 4}

	firstOfMonth := time.Date(2026, 9, 1, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-31", clock.PeriodKey(firstOfMonth))
}

func TestPeriodKeyMidnightReset(t *testing.T) {
	clock := ResetClock{}

	justAfterMidnight := time.Date(2026, 8, 31, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, "2026-08-31", clock.PeriodKey(justAfterMidnight))
}

package quota

import (
	"context"
	"sync"
	"time"

	"github.com/luooka/casebot/internal/domain"
)

// memoryBackend implements Service with an in-process map. It backs tests and
// single-instance deployments that run without PostgreSQL.
type memoryBackend struct {
	mu    sync.Mutex
	usage map[string]int // "user|period" -> used count
	limit int
	clock ResetClock
	now   func() time.Time
}

// NewMemoryService creates an in-memory quota ledger. limit <= 0 disables the
// daily cap.
func NewMemoryService(limit int, clock ResetClock) Service {
	return &memoryBackend{
		usage: make(map[string]int),
		limit: limit,
		clock: clock,
		now:   time.Now,
	}
}

func (b *memoryBackend) key(user domain.UserKey, period string) string {
	return user.String() + "|" + period
}

func (b *memoryBackend) Consume(_ context.Context, user domain.UserKey, requested int) (Result, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := b.key(user, b.clock.PeriodKey(b.now()))
	allowed, newUsed, remaining := computeGrant(b.usage[key], requested, b.limit)
	if allowed > 0 {
		b.usage[key] = newUsed
	}
	return Result{Allowed: allowed, Used: newUsed, Remaining: remaining}, nil
}

func (b *memoryBackend) Peek(_ context.Context, user domain.UserKey) (Result, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	used := b.usage[b.key(user, b.clock.PeriodKey(b.now()))]
	remaining := UnlimitedRemaining
	if b.limit > 0 {
		remaining = b.limit - used
		if remaining < 0 {
			remaining = 0
		}
	}
	return Result{Used: used, Remaining: remaining}, nil
}

func (b *memoryBackend) Reset(_ context.Context, user domain.UserKey) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.usage, b.key(user, b.clock.PeriodKey(b.now())))
	return nil
}

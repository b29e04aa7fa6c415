package quota

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luooka/casebot/internal/domain"
)

var testUser = domain.UserKey{GroupID: "g1", UserID: "u1"}

func TestMemoryConsumeClampSequence(t *testing.T) {
	svc := NewMemoryService(8, DefaultResetClock)
	ctx := context.Background()

	r, err := svc.Consume(ctx, testUser, 3)
	require.NoError(t, err)
	assert.Equal(t, Result{Allowed: 3, Used: 3, Remaining: 5}, r)

	r, err = svc.Consume(ctx, testUser, 3)
	require.NoError(t, err)
	assert.Equal(t, Result{Allowed: 3, Used: 6, Remaining: 2}, r)

	// Third request clamps to the tail of the allowance.
	r, err = svc.Consume(ctx, testUser, 3)
	require.NoError(t, err)
	assert.Equal(t, Result{Allowed: 2, Used: 8, Remaining: 0}, r)

	r, err = svc.Consume(ctx, testUser, 3)
	require.NoError(t, err)
	assert.Equal(t, Result{Allowed: 0, Used: 8, Remaining: 0}, r)
}

func TestMemoryConsumeUnlimited(t *testing.T) {
	svc := NewMemoryService(0, DefaultResetClock)
	ctx := context.Background()

	r, err := svc.Consume(ctx, testUser, 500)
	require.NoError(t, err)
	assert.Equal(t, 500, r.Allowed)
	assert.Equal(t, UnlimitedRemaining, r.Remaining)

	r, err = svc.Consume(ctx, testUser, 500)
	require.NoError(t, err)
	assert.Equal(t, 500, r.Allowed)
	assert.Equal(t, 1000, r.Used)
}

func TestMemoryUsersIsolated(t *testing.T) {
	svc := NewMemoryService(5, DefaultResetClock)
	ctx := context.Background()

	_, err := svc.Consume(ctx, domain.UserKey{GroupID: "g1", UserID: "u1"}, 5)
	require.NoError(t, err)

	// Same user id in another group owns a separate allowance.
	r, err := svc.Consume(ctx, domain.UserKey{GroupID: "g2", UserID: "u1"}, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, r.Allowed)

	r, err = svc.Peek(ctx, domain.UserKey{GroupID: "g1", UserID: "u2"})
	require.NoError(t, err)
	assert.Equal(t, 0, r.Used)
}

func TestMemoryPeekDoesNotConsume(t *testing.T) {
	svc := NewMemoryService(10, DefaultResetClock)
	ctx := context.Background()

	_, err := svc.Consume(ctx, testUser, 4)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		r, err := svc.Peek(ctx, testUser)
		require.NoError(t, err)
		assert.Equal(t, Result{Allowed: 0, Used: 4, Remaining: 6}, r)
	}
}

func TestMemoryReset(t *testing.T) {
	svc := NewMemoryService(10, DefaultResetClock)
	ctx := context.Background()

	_, err := svc.Consume(ctx, testUser, 10)
	require.NoError(t, err)
	require.NoError(t, svc.Reset(ctx, testUser))

	r, err := svc.Consume(ctx, testUser, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, r.Allowed)
}

func TestMemoryPeriodRollOverRestoresAllowance(t *testing.T) {
	backend := &memoryBackend{
		usage: make(map[string]int),
		limit: 5,
		clock: ResetClock{Hour: 4},
	}
	current := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	backend.now = func() time.Time { return current }
	ctx := context.Background()

	_, err := backend.Consume(ctx, testUser, 5)
	require.NoError(t, err)

	r, err := backend.Consume(ctx, testUser, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Allowed)

	// Crossing the reset time opens a fresh period.
	current = time.Date(2026, 9, 1, 4, 0, 1, 0, time.UTC)
	r, err = backend.Consume(ctx, testUser, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Allowed)
	assert.Equal(t, 1, r.Used)
}

func TestMemoryConcurrentConsumeNeverOvershoots(t *testing.T) {
	const limit = 100
	const workers = 40

	svc := NewMemoryService(limit, DefaultResetClock)
	ctx := context.Background()

	var wg sync.WaitGroup
	allowed := make([]int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := svc.Consume(ctx, testUser, 7)
			assert.NoError(t, err)
			allowed[i] = r.Allowed
		}(i)
	}
	wg.Wait()

	total := 0
	for _, g := range allowed {
		total += g
	}
	assert.Equal(t, limit, total, "concurrent grants must sum exactly to the limit")

	r, err := svc.Peek(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, limit, r.Used)
	assert.Equal(t, 0, r.Remaining)
}

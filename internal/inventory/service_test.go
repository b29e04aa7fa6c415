package inventory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luooka/casebot/internal/domain"
)

var testUser = domain.UserKey{GroupID: "g1", UserID: "u1"}

func ordinaryDrop(tier domain.Tier) *domain.DropOutcome {
	return &domain.DropOutcome{Name: "item", RawName: "item", Tier: tier}
}

func specialDrop(name string, wear float64) *domain.DropOutcome {
	return &domain.DropOutcome{
		Name:      name,
		RawName:   name,
		Tier:      domain.TierCovert,
		WearValue: wear,
		IsSpecial: true,
	}
}

func TestRecordAndStats(t *testing.T) {
	svc := NewMemoryService()
	ctx := context.Background()

	require.NoError(t, svc.Record(ctx, testUser, ordinaryDrop(domain.TierMilSpec)))
	require.NoError(t, svc.Record(ctx, testUser, ordinaryDrop(domain.TierMilSpec)))
	require.NoError(t, svc.Record(ctx, testUser, ordinaryDrop(domain.TierRestricted)))
	require.NoError(t, svc.Record(ctx, testUser, specialDrop("AWP | 巨龙传说", 0.01)))

	stats, err := svc.Stats(ctx, testUser)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.TierCounts[domain.TierMilSpec])
	assert.Equal(t, 1, stats.TierCounts[domain.TierRestricted])
	assert.Equal(t, 1, stats.TierCounts[domain.TierCovert])

	require.Len(t, stats.Recent, 1)
	assert.Equal(t, "AWP | 巨龙传说", stats.Recent[0].Name)
}

func TestSpecialDropsNeverIncrementCounters(t *testing.T) {
	backend := NewMemoryService().(*memoryBackend)
	ctx := context.Background()

	require.NoError(t, backend.Record(ctx, testUser, specialDrop("蝴蝶刀（★） | 渐变之色", 0.02)))

	// The detail path alone holds the drop; the counter map stays empty.
	assert.Empty(t, backend.counts[testUser.String()])
	assert.Len(t, backend.specials[testUser.String()], 1)

	stats, err := backend.Stats(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
}

func TestStatsRecentNewestFirstCapped(t *testing.T) {
	svc := NewMemoryService()
	ctx := context.Background()

	for i := 0; i < RecentLimit+5; i++ {
		require.NoError(t, svc.Record(ctx, testUser, specialDrop(fmt.Sprintf("special-%d", i), 0.1)))
	}

	stats, err := svc.Stats(ctx, testUser)
	require.NoError(t, err)

	require.Len(t, stats.Recent, RecentLimit)
	assert.Equal(t, fmt.Sprintf("special-%d", RecentLimit+4), stats.Recent[0].Name)
	assert.Equal(t, fmt.Sprintf("special-%d", 5), stats.Recent[RecentLimit-1].Name)
	assert.Equal(t, RecentLimit+5, stats.Total)
}

func TestPurgeIsolatedPerUser(t *testing.T) {
	svc := NewMemoryService()
	ctx := context.Background()
	other := domain.UserKey{GroupID: "g1", UserID: "u2"}

	require.NoError(t, svc.Record(ctx, testUser, ordinaryDrop(domain.TierMilSpec)))
	require.NoError(t, svc.Record(ctx, testUser, specialDrop("s", 0.1)))
	require.NoError(t, svc.Record(ctx, other, ordinaryDrop(domain.TierMilSpec)))

	require.NoError(t, svc.Purge(ctx, testUser))

	stats, err := svc.Stats(ctx, testUser)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.Recent)

	stats, err = svc.Stats(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
}

func TestConcurrentRecordsAllCounted(t *testing.T) {
	svc := NewMemoryService()
	ctx := context.Background()

	const perKind = 50
	var wg sync.WaitGroup
	for i := 0; i < perKind; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.Record(ctx, testUser, ordinaryDrop(domain.TierMilSpec)))
		}()
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, svc.Record(ctx, testUser, specialDrop(fmt.Sprintf("s-%d", i), 0.1)))
		}(i)
	}
	wg.Wait()

	stats, err := svc.Stats(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 2*perKind, stats.Total)
	assert.Equal(t, perKind, stats.TierCounts[domain.TierMilSpec])
	assert.Equal(t, perKind, stats.TierCounts[domain.TierCovert])
	assert.Len(t, stats.Recent, RecentLimit)
}

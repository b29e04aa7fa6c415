package inventory

import (
	"context"
	"sync"

	"github.com/luooka/casebot/internal/domain"
)

// memoryBackend implements Service with in-process maps. It backs tests and
// single-instance deployments that run without PostgreSQL.
type memoryBackend struct {
	mu       sync.Mutex
	counts   map[string]map[domain.Tier]int
	specials map[string][]domain.SpecialDrop
}

// NewMemoryService creates an in-memory inventory store.
func NewMemoryService() Service {
	return &memoryBackend{
		counts:   make(map[string]map[domain.Tier]int),
		specials: make(map[string][]domain.SpecialDrop),
	}
}

func (b *memoryBackend) Record(_ context.Context, user domain.UserKey, drop *domain.DropOutcome) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := user.String()
	if drop.IsSpecial {
		b.specials[key] = append(b.specials[key], domain.SpecialDrop{
			Name:      drop.Name,
			Tier:      drop.Tier,
			WearValue: drop.WearValue,
			ImageURL:  drop.ImageURL,
		})
		return nil
	}

	if b.counts[key] == nil {
		b.counts[key] = make(map[domain.Tier]int)
	}
	b.counts[key][drop.Tier]++
	return nil
}

func (b *memoryBackend) Stats(_ context.Context, user domain.UserKey) (*domain.InventoryStats, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := user.String()
	stats := &domain.InventoryStats{TierCounts: make(map[domain.Tier]int)}

	for tier, count := range b.counts[key] {
		stats.TierCounts[tier] += count
		stats.Total += count
	}
	for _, d := range b.specials[key] {
		stats.TierCounts[d.Tier]++
		stats.Total++
	}

	// Newest first, capped at RecentLimit.
	specials := b.specials[key]
	for i := len(specials) - 1; i >= 0 && len(stats.Recent) < RecentLimit; i-- {
		stats.Recent = append(stats.Recent, specials[i])
	}

	return stats, nil
}

func (b *memoryBackend) Purge(_ context.Context, user domain.UserKey) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := user.String()
	delete(b.counts, key)
	delete(b.specials, key)
	return nil
}

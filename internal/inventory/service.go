// Package inventory accumulates opening results per user. Ordinary drops are
// rolled up into per-tier counters; special drops (covert and above) keep full
// item detail so they can be listed back individually.
package inventory

import (
	"context"

	"github.com/luooka/casebot/internal/domain"
)

// RecentLimit caps how many special drops Stats returns.
const RecentLimit = 10

// Service stores and reports per-user opening history.
type Service interface {
	// Record stores one resolved drop for the user. Special drops are stored
	// in full; everything else increments the user's counter for that tier.
	Record(ctx context.Context, user domain.UserKey, drop *domain.DropOutcome) error

	// Stats summarizes the user's holdings: totals across both storage paths
	// and the most recent special drops, newest first.
	Stats(ctx context.Context, user domain.UserKey) (*domain.InventoryStats, error)

	// Purge removes everything recorded for the user.
	Purge(ctx context.Context, user domain.UserKey) error
}

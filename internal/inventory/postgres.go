package inventory

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luooka/casebot/internal/domain"
)

// postgresBackend implements Service using PostgreSQL
type postgresBackend struct {
	db *pgxpool.Pool
}

// NewPostgresService creates an inventory store with a Postgres backend.
func NewPostgresService(db *pgxpool.Pool) Service {
	return &postgresBackend{db: db}
}

// Record stores one drop. The upsert and insert are both single-statement
// writes, so no explicit locking is needed; concurrent increments on the same
// counter row serialize inside Postgres.
func (b *postgresBackend) Record(ctx context.Context, user domain.UserKey, drop *domain.DropOutcome) error {
	if drop.IsSpecial {
		_, err := b.db.Exec(ctx, SQLInsertSpecialDrop,
			user.String(), drop.Name, string(drop.Tier), drop.WearValue, drop.ImageURL)
		if err != nil {
			return fmt.Errorf(ErrMsgRecordDropFailed, err)
		}
		return nil
	}

	_, err := b.db.Exec(ctx, SQLUpsertTierCount, user.String(), string(drop.Tier))
	if err != nil {
		return fmt.Errorf(ErrMsgRecordDropFailed, err)
	}
	return nil
}

// Stats unions the counter rollups with the special-drop aggregates so the
// total always covers every recorded opening.
func (b *postgresBackend) Stats(ctx context.Context, user domain.UserKey) (*domain.InventoryStats, error) {
	key := user.String()
	stats := &domain.InventoryStats{TierCounts: make(map[domain.Tier]int)}

	rows, err := b.db.Query(ctx, SQLSelectTierCounts, key)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetTierCountsFailed, err)
	}
	defer rows.Close()
	for rows.Next() {
		var tier string
		var count int
		if err := rows.Scan(&tier, &count); err != nil {
			return nil, fmt.Errorf(ErrMsgGetTierCountsFailed, err)
		}
		stats.TierCounts[domain.Tier(tier)] += count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgGetTierCountsFailed, err)
	}

	specials, err := b.db.Query(ctx, SQLSelectSpecialCounts, key)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSpecialsFailed, err)
	}
	defer specials.Close()
	for specials.Next() {
		var tier string
		var count int
		if err := specials.Scan(&tier, &count); err != nil {
			return nil, fmt.Errorf(ErrMsgGetSpecialsFailed, err)
		}
		stats.TierCounts[domain.Tier(tier)] += count
		stats.Total += count
	}
	if err := specials.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgGetSpecialsFailed, err)
	}

	recent, err := b.db.Query(ctx, SQLSelectRecentSpecials, key, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSpecialsFailed, err)
	}
	defer recent.Close()
	for recent.Next() {
		var d domain.SpecialDrop
		var tier string
		if err := recent.Scan(&d.Name, &tier, &d.WearValue, &d.ImageURL); err != nil {
			return nil, fmt.Errorf(ErrMsgGetSpecialsFailed, err)
		}
		d.Tier = domain.Tier(tier)
		stats.Recent = append(stats.Recent, d)
	}
	if err := recent.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgGetSpecialsFailed, err)
	}

	return stats, nil
}

// Purge removes both storage paths in one transaction so a failure cannot
// leave the user with counters but no detail rows or vice versa.
func (b *postgresBackend) Purge(ctx context.Context, user domain.UserKey) error {
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, SQLDeleteTierCounts, user.String()); err != nil {
		return fmt.Errorf(ErrMsgPurgeFailed, err)
	}
	if _, err := tx.Exec(ctx, SQLDeleteSpecialDrops, user.String()); err != nil {
		return fmt.Errorf(ErrMsgPurgeFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}

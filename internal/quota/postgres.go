package quota

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luooka/casebot/internal/domain"
	"github.com/luooka/casebot/internal/logger"
)

// postgresBackend implements Service using PostgreSQL
type postgresBackend struct {
	db    *pgxpool.Pool
	limit int
	clock ResetClock
	now   func() time.Time
}

// NewPostgresService creates a quota ledger with a Postgres backend.
// limit <= 0 disables the daily cap.
func NewPostgresService(db *pgxpool.Pool, limit int, clock ResetClock) Service {
	return &postgresBackend{
		db:    db,
		limit: limit,
		clock: clock,
		now:   time.Now,
	}
}

// Consume atomically grants up to requested openings. The read-modify-write
// runs under an advisory transaction lock keyed by user and period, so
// concurrent requests for the same user serialize and the period total never
// exceeds the limit. Advisory locks work even when no row exists yet (unlike
// SELECT FOR UPDATE).
func (b *postgresBackend) Consume(ctx context.Context, user domain.UserKey, requested int) (Result, error) {
	log := logger.FromContext(ctx)
	key := user.String()
	period := b.clock.PeriodKey(b.now())

	tx, err := b.db.Begin(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("%w: "+ErrMsgBeginTransactionFailed, domain.ErrLedgerTransaction, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err = tx.Exec(ctx, SQLAdvisoryLock, hashUserPeriod(key, period)); err != nil {
		return Result{}, fmt.Errorf("%w: "+ErrMsgAcquireLockFailed, domain.ErrLedgerTransaction, err)
	}

	used, err := b.getUsageTx(ctx, tx, key, period)
	if err != nil {
		return Result{}, fmt.Errorf("%w: "+ErrMsgGetUsageFailed, domain.ErrLedgerTransaction, err)
	}

	allowed, newUsed, remaining := computeGrant(used, requested, b.limit)
	if allowed > 0 {
		if _, err = tx.Exec(ctx, SQLUpsertUsage, key, period, newUsed); err != nil {
			return Result{}, fmt.Errorf("%w: "+ErrMsgUpdateUsageFailed, domain.ErrLedgerTransaction, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return Result{}, fmt.Errorf("%w: "+ErrMsgCommitTransactionFailed, domain.ErrLedgerTransaction, err)
	}

	switch {
	case allowed == 0 && requested > 0:
		log.Debug(LogMsgQuotaExhausted, "user", key, "period", period)
	case allowed < requested:
		log.Debug(LogMsgQuotaClamped,
			"user", key, "requested", requested, "allowed", allowed)
	}

	return Result{Allowed: allowed, Used: newUsed, Remaining: remaining}, nil
}

// Peek reports current usage without consuming (unlocked read).
func (b *postgresBackend) Peek(ctx context.Context, user domain.UserKey) (Result, error) {
	period := b.clock.PeriodKey(b.now())

	var used int
	err := b.db.QueryRow(ctx, SQLSelectUsage, user.String(), period).Scan(&used)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return Result{}, fmt.Errorf(ErrMsgGetUsageFailed, err)
	}

	remaining := UnlimitedRemaining
	if b.limit > 0 {
		remaining = b.limit - used
		if remaining < 0 {
			remaining = 0
		}
	}
	return Result{Used: used, Remaining: remaining}, nil
}

// Reset clears the user's usage for the current period.
func (b *postgresBackend) Reset(ctx context.Context, user domain.UserKey) error {
	period := b.clock.PeriodKey(b.now())
	if _, err := b.db.Exec(ctx, SQLDeleteUsage, user.String(), period); err != nil {
		return fmt.Errorf(ErrMsgResetFailed, err)
	}
	return nil
}

func (b *postgresBackend) getUsageTx(ctx context.Context, tx pgx.Tx, key, period string) (int, error) {
	var used int
	err := tx.QueryRow(ctx, SQLSelectUsage, key, period).Scan(&used)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return used, nil
}

// hashUserPeriod creates a consistent int64 hash from user key + period for advisory locking
func hashUserPeriod(key, period string) int64 {
	h := sha256.Sum256([]byte(key + HashSeparator + period))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}

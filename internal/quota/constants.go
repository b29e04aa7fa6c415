package quota

// Hash constants for advisory locking.
const (
	// HashSeparator joins the user key and period before hashing for the
	// advisory lock key.
	HashSeparator = ":"

	// HashMaskPositiveInt64 masks the MSB so lock keys stay positive int64
	// values for PostgreSQL.
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// SQL query constants.
const (
	// SQLAdvisoryLock acquires a PostgreSQL advisory transaction lock
	SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

	// SQLSelectUsage retrieves the consumed count for a user in a period
	SQLSelectUsage = `
		SELECT opened_count
		FROM open_quota_state
		WHERE user_key = $1 AND period_key = $2
	`

	// SQLUpsertUsage inserts or replaces the consumed count for a period
	SQLUpsertUsage = `
		INSERT INTO open_quota_state (user_key, period_key, opened_count, last_open_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_key, period_key) DO UPDATE
		SET opened_count = EXCLUDED.opened_count,
		    last_open_at = NOW(),
		    updated_at = NOW()
	`

	// SQLDeleteUsage removes a user's usage row for a period
	SQLDeleteUsage = `
		DELETE FROM open_quota_state
		WHERE user_key = $1 AND period_key = $2
	`
)

// Error message constants.
const (
	// ErrMsgBeginTransactionFailed is returned when transaction initialization fails
	ErrMsgBeginTransactionFailed = "failed to begin quota transaction: %w"

	// ErrMsgAcquireLockFailed is returned when advisory lock acquisition fails
	ErrMsgAcquireLockFailed = "failed to acquire quota lock: %w"

	// ErrMsgGetUsageFailed is returned when reading the usage counter fails
	ErrMsgGetUsageFailed = "failed to get quota usage: %w"

	// ErrMsgUpdateUsageFailed is returned when writing the usage counter fails
	ErrMsgUpdateUsageFailed = "failed to update quota usage: %w"

	// ErrMsgCommitTransactionFailed is returned when transaction commit fails
	ErrMsgCommitTransactionFailed = "failed to commit quota transaction: %w"

	// ErrMsgResetFailed is returned when clearing a user's usage fails
	ErrMsgResetFailed = "failed to reset quota: %w"
)

// Log message constants.
const (
	// LogMsgQuotaExhausted is logged when a request arrives with no allowance left
	LogMsgQuotaExhausted = "Daily quota exhausted"

	// LogMsgQuotaClamped is logged when a request was granted partially
	LogMsgQuotaClamped = "Quota grant clamped to remaining allowance"
)

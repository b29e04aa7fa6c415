package inventory

// SQL query constants.
const (
	// SQLUpsertTierCount increments a user's counter for one tier
	SQLUpsertTierCount = `
		INSERT INTO tier_counts (user_key, tier, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_key, tier) DO UPDATE
		SET count = tier_counts.count + 1
	`

	// SQLInsertSpecialDrop stores one special drop in full detail
	SQLInsertSpecialDrop = `
		INSERT INTO special_drops (user_key, name, tier, wear_value, img_url, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	// SQLSelectTierCounts retrieves all tier counters for a user
	SQLSelectTierCounts = `
		SELECT tier, count
		FROM tier_counts
		WHERE user_key = $1
	`

	// SQLSelectSpecialCounts aggregates special drops by tier for a user
	SQLSelectSpecialCounts = `
		SELECT tier, COUNT(*)
		FROM special_drops
		WHERE user_key = $1
		GROUP BY tier
	`

	// SQLSelectRecentSpecials retrieves the newest special drops for a user
	SQLSelectRecentSpecials = `
		SELECT name, tier, wear_value, img_url
		FROM special_drops
		WHERE user_key = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	// SQLDeleteTierCounts removes a user's tier counters
	SQLDeleteTierCounts = `DELETE FROM tier_counts WHERE user_key = $1`

	// SQLDeleteSpecialDrops removes a user's special drop rows
	SQLDeleteSpecialDrops = `DELETE FROM special_drops WHERE user_key = $1`
)

// Error message constants.
const (
	// ErrMsgRecordDropFailed is returned when persisting a drop fails
	ErrMsgRecordDropFailed = "failed to record drop: %w"

	// ErrMsgGetTierCountsFailed is returned when reading tier counters fails
	ErrMsgGetTierCountsFailed = "failed to get tier counts: %w"

	// ErrMsgGetSpecialsFailed is returned when reading special drops fails
	ErrMsgGetSpecialsFailed = "failed to get special drops: %w"

	// ErrMsgBeginTransactionFailed is returned when transaction initialization fails
	ErrMsgBeginTransactionFailed = "failed to begin inventory transaction: %w"

	// ErrMsgCommitTransactionFailed is returned when transaction commit fails
	ErrMsgCommitTransactionFailed = "failed to commit inventory transaction: %w"

	// ErrMsgPurgeFailed is returned when clearing a user's inventory fails
	ErrMsgPurgeFailed = "failed to purge inventory: %w"
)

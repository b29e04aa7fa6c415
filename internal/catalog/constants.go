package catalog

import "time"

// Remote API paths (relative to the configured host).
const (
	// PathContainerList is POSTed to retrieve the full container index
	PathContainerList = "/api/v1/info/container_data_info"

	// PathContainerDetail is queried per container id for its item pool
	PathContainerDetail = "/api/v1/info/good/container_detail"
)

// Client tuning. The upstream rate-limits aggressively, so detail calls are
// spaced out and failures retry with a fixed pause.
const (
	DefaultSyncThrottle = 1500 * time.Millisecond
	RequestTimeout      = 20 * time.Second
	RetryCount          = 3
	RetryWaitTime       = 2 * time.Second
)

// skipNameSuffixes excludes decorative item categories from sync entirely.
var skipNameSuffixes = []string{"挂件", "印花"}

// SQL query constants.
const (
	// SQLDeleteAllItems clears the item pool ahead of a wholesale reload
	SQLDeleteAllItems = `DELETE FROM items`

	// SQLDeleteAllContainers clears the container index ahead of a wholesale reload
	SQLDeleteAllContainers = `DELETE FROM containers`

	// SQLInsertContainer stores one container header
	SQLInsertContainer = `
		INSERT INTO containers (name, img_url, type)
		VALUES ($1, $2, $3)
	`

	// SQLInsertItem stores one pool item
	SQLInsertItem = `
		INSERT INTO items (container_name, short_name, tier, img_url)
		VALUES ($1, $2, $3, $4)
	`

	// SQLSelectContainers retrieves all container headers
	SQLSelectContainers = `SELECT name, img_url, type FROM containers ORDER BY name`

	// SQLSelectItems retrieves all pool items in insertion order
	SQLSelectItems = `
		SELECT container_name, short_name, tier, img_url
		FROM items
		ORDER BY container_name, id
	`
)

// Error message constants.
const (
	// ErrMsgFetchListFailed is returned when the container index request fails
	ErrMsgFetchListFailed = "failed to fetch container list: %w"

	// ErrMsgFetchDetailFailed is returned when a container detail request fails
	ErrMsgFetchDetailFailed = "failed to fetch container detail: %w"

	// ErrMsgUpstreamStatus is returned when the upstream replies with a non-200 body code
	ErrMsgUpstreamStatus = "upstream returned code %d"

	// ErrMsgSaveCatalogFailed is returned when persisting the catalog fails
	ErrMsgSaveCatalogFailed = "failed to save catalog: %w"

	// ErrMsgLoadCatalogFailed is returned when reading the stored catalog fails
	ErrMsgLoadCatalogFailed = "failed to load catalog: %w"

	// ErrMsgBeginTransactionFailed is returned when transaction initialization fails
	ErrMsgBeginTransactionFailed = "failed to begin catalog transaction: %w"

	// ErrMsgCommitTransactionFailed is returned when transaction commit fails
	ErrMsgCommitTransactionFailed = "failed to commit catalog transaction: %w"
)

// Log message constants.
const (
	// LogMsgSyncStarted is logged when a catalog sync begins
	LogMsgSyncStarted = "Catalog sync started"

	// LogMsgSyncProgress is logged periodically during a long sync
	LogMsgSyncProgress = "Catalog sync progress"

	// LogMsgSyncCompleted is logged when a catalog sync finishes
	LogMsgSyncCompleted = "Catalog sync completed"

	// LogMsgContainerSkipped is logged when a container is excluded by the skip rules
	LogMsgContainerSkipped = "Container skipped by sync rules"

	// LogMsgSnapshotPublished is logged when a rebuilt snapshot goes live
	LogMsgSnapshotPublished = "Catalog snapshot published"
)

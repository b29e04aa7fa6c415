package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgEmptyPool          = "container has no resolvable items"
	ErrMsgContainerNotFound  = "container not found"
	ErrMsgLedgerTransaction  = "quota ledger transaction failed"
	ErrMsgUpstreamFetch      = "catalog upstream fetch failed"
	ErrMsgInvalidInput       = "invalid input"
	ErrMsgCatalogUnavailable = "catalog not loaded"
	ErrMsgItemNotFound       = "item not found"
)

// Common domain errors. Wrap with fmt.Errorf("%w: ...", domain.ErrXxx) for
// additional context.
var (
	// ErrEmptyPool means every item in the container carries zero probability;
	// the request is rejected before any persistence write.
	ErrEmptyPool = errors.New(ErrMsgEmptyPool)

	// ErrContainerNotFound means the requested name matched no container,
	// neither exactly nor as a substring.
	ErrContainerNotFound = errors.New(ErrMsgContainerNotFound)

	// ErrLedgerTransaction is a retryable storage failure during quota
	// consumption; the transaction rolled back fully.
	ErrLedgerTransaction = errors.New(ErrMsgLedgerTransaction)

	// ErrUpstreamFetch is a catalog sync failure after retries; the previously
	// saved catalog stays authoritative.
	ErrUpstreamFetch = errors.New(ErrMsgUpstreamFetch)

	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)
	ErrCatalogUnavailable = errors.New(ErrMsgCatalogUnavailable)

	// ErrItemNotFound means a price query matched nothing in search.
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
)

// Package quota enforces the per-user daily opening allowance. Each user key
// owns an independent counter that resets at a configurable local time of day;
// grants are clamped to whatever remains so a large request spends the tail of
// the allowance instead of failing outright.
package quota

import (
	"context"

	"github.com/luooka/casebot/internal/domain"
)

// Service is the daily opening ledger.
type Service interface {
	// Consume atomically grants up to requested openings against the user's
	// remaining daily allowance. The grant may be smaller than requested
	// (clamped) or zero (exhausted); both are successful results, not errors.
	Consume(ctx context.Context, user domain.UserKey, requested int) (Result, error)

	// Peek reports the current usage without consuming anything.
	Peek(ctx context.Context, user domain.UserKey) (Result, error)

	// Reset clears the user's usage for the current period (admin/testing).
	Reset(ctx context.Context, user domain.UserKey) error
}

// Result reports the outcome of a Consume or Peek call.
type Result struct {
	// Allowed is how many openings were actually granted this call (always 0
	// for Peek).
	Allowed int `json:"allowed"`

	// Used is the total consumed in the current period, including this grant.
	Used int `json:"used"`

	// Remaining is the allowance left after this call. UnlimitedRemaining
	// when no daily limit is configured.
	Remaining int `json:"remaining"`
}

// UnlimitedRemaining is reported in Result.Remaining when the daily limit is
// disabled.
const UnlimitedRemaining = -1

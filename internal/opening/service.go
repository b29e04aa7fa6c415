// Package opening orchestrates a case-opening request end to end: container
// lookup, quota consumption, outcome resolution and inventory recording.
package opening

import (
	"context"
	"fmt"

	"github.com/luooka/casebot/internal/domain"
	"github.com/luooka/casebot/internal/inventory"
	"github.com/luooka/casebot/internal/logger"
	"github.com/luooka/casebot/internal/metrics"
	"github.com/luooka/casebot/internal/quota"
	"github.com/luooka/casebot/internal/resolver"
)

// ContainerFinder resolves a container name against the live catalog.
type ContainerFinder interface {
	Find(name string) (*domain.Container, error)
}

// Request is one opening attempt by a user.
type Request struct {
	User          domain.UserKey
	ContainerName string
	Count         int
}

// Response is the full result of an opening attempt. Opened == 0 with a
// nil error means the daily quota was exhausted, not a failure.
type Response struct {
	ContainerName  string                `json:"container_name"`
	ContainerType  domain.ContainerType  `json:"container_type"`
	ContainerImage string                `json:"container_img,omitempty"`
	Opened         int                   `json:"opened"`
	Outcomes       []*domain.DropOutcome `json:"outcomes"`
	TierSummary    map[domain.Tier]int   `json:"tier_summary"`
	BestSpecial    *domain.DropOutcome   `json:"best_special,omitempty"`
	InventoryTotal int                   `json:"inventory_total"`
	QuotaUsed      int                   `json:"quota_used"`
	QuotaRemaining int                   `json:"quota_remaining"`
	Clamped        bool                  `json:"clamped"`
}

// Service opens containers for users.
type Service interface {
	Open(ctx context.Context, req Request) (*Response, error)
}

type service struct {
	catalog       ContainerFinder
	resolver      resolver.Service
	quota         quota.Service
	inventory     inventory.Service
	maxPerRequest int
}

// NewService creates the opening orchestrator. maxPerRequest bounds a single
// request's count before the quota ledger is consulted.
func NewService(catalog ContainerFinder, res resolver.Service, q quota.Service, inv inventory.Service, maxPerRequest int) Service {
	return &service{
		catalog:       catalog,
		resolver:      res,
		quota:         q,
		inventory:     inv,
		maxPerRequest: maxPerRequest,
	}
}

// specialScores rank the top rarity bands when choosing the headline drop of
// a multi-opening.
var specialScores = map[domain.Tier]int{
	domain.TierExtra:      10,
	domain.TierContraband: 9,
	domain.TierCovert:     8,
}

func (s *service) Open(ctx context.Context, req Request) (*Response, error) {
	log := logger.FromContext(ctx)

	if req.Count < 1 {
		req.Count = 1
	}
	if req.Count > s.maxPerRequest {
		return nil, fmt.Errorf("%w: count %d exceeds per-request limit %d",
			domain.ErrInvalidInput, req.Count, s.maxPerRequest)
	}

	container, err := s.catalog.Find(req.ContainerName)
	if err != nil {
		return nil, err
	}
	// Validate the pool before touching the ledger so a container that cannot
	// drop anything never burns daily allowance.
	if !container.HasDrops() {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyPool, container.Name)
	}

	grant, err := s.quota.Consume(ctx, req.User, req.Count)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		ContainerName:  container.Name,
		ContainerType:  container.Type,
		ContainerImage: container.ImageURL,
		Opened:         grant.Allowed,
		TierSummary:    make(map[domain.Tier]int),
		QuotaUsed:      grant.Used,
		QuotaRemaining: grant.Remaining,
		Clamped:        grant.Allowed < req.Count,
	}
	if grant.Allowed == 0 {
		metrics.QuotaRejectionsTotal.Inc()
		return resp, nil
	}

	bestScore := 0
	for i := 0; i < grant.Allowed; i++ {
		outcome, err := s.resolver.Resolve(container)
		if err != nil {
			// Quota already spent for this grant; surface the failure
			// without re-crediting.
			return nil, err
		}
		if err := s.inventory.Record(ctx, req.User, outcome); err != nil {
			log.Error("Failed to record drop", "user", req.User.String(),
				"item", outcome.Name, "error", err)
			return nil, err
		}

		resp.Outcomes = append(resp.Outcomes, outcome)
		resp.TierSummary[outcome.Tier]++
		if score := specialScores[outcome.Tier]; score > bestScore {
			bestScore = score
			resp.BestSpecial = outcome
		}

		metrics.DropsTotal.WithLabelValues(string(outcome.Tier)).Inc()
	}
	metrics.OpeningsTotal.WithLabelValues(string(container.Type)).Add(float64(grant.Allowed))

	stats, err := s.inventory.Stats(ctx, req.User)
	if err != nil {
		return nil, err
	}
	resp.InventoryTotal = stats.Total

	log.Info("Container opened",
		"user", req.User.String(),
		"container", container.Name,
		"opened", grant.Allowed,
		"clamped", resp.Clamped)
	return resp, nil
}

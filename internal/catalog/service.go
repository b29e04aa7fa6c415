// Package catalog owns the container data: syncing it from the upstream item
// API, persisting it, and serving lock-free lookups from an immutable
// snapshot.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/luooka/casebot/internal/domain"
	"github.com/luooka/casebot/internal/logger"
	"github.com/luooka/casebot/internal/probability"
)

// Service is the catalog: lookups against the live snapshot plus the admin
// sync and startup load operations.
type Service interface {
	// Sync pulls the full catalog from upstream, persists it and publishes a
	// fresh snapshot. Returns the number of containers collected. A mid-sync
	// failure leaves both the stored catalog and the live snapshot untouched.
	Sync(ctx context.Context) (int, error)

	// Load publishes a snapshot from the persisted catalog (startup path).
	Load(ctx context.Context) error

	// Find resolves a container by exact name, then first substring match.
	Find(name string) (*domain.Container, error)

	// List groups the known container names by type.
	List() map[domain.ContainerType][]string
}

type service struct {
	client   Client
	repo     Repository
	store    *Store
	throttle time.Duration
	sleep    func(time.Duration)
}

// Option configures the catalog service.
type Option func(*service)

// WithThrottle overrides the inter-request pause used during sync.
func WithThrottle(d time.Duration) Option {
	return func(s *service) {
		s.throttle = d
	}
}

// WithSleep replaces the pause function. Tests use a no-op.
func WithSleep(fn func(time.Duration)) Option {
	return func(s *service) {
		s.sleep = fn
	}
}

// NewService creates the catalog service.
func NewService(client Client, repo Repository, store *Store, opts ...Option) Service {
	s := &service{
		client:   client,
		repo:     repo,
		store:    store,
		throttle: DefaultSyncThrottle,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Sync(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSyncStarted)

	index, err := s.client.FetchContainerList(ctx)
	if err != nil {
		return 0, err
	}

	var collected []*domain.Container
	for i, rc := range index {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if skipContainerName(rc.Name) {
			log.Debug(LogMsgContainerSkipped, "name", rc.Name)
			continue
		}

		raw, err := s.client.FetchContainerDetail(ctx, rc.ID)
		if err != nil {
			return 0, err
		}
		items := cleanItems(raw)
		if len(items) > 0 {
			collected = append(collected, &domain.Container{
				Name:     rc.Name,
				ImageURL: rc.Img,
				Type:     domain.ContainerTypeOf(rc.Name),
				Items:    items,
			})
		}

		if i%10 == 0 {
			log.Debug(LogMsgSyncProgress, "done", i, "total", len(index))
		}
		// The upstream rate-limits; space out detail calls.
		s.sleep(s.throttle)
	}

	if err := s.repo.Save(ctx, collected); err != nil {
		return 0, err
	}
	s.publish(ctx, collected)

	log.Info(LogMsgSyncCompleted, "containers", len(collected))
	return len(collected), nil
}

func (s *service) Load(ctx context.Context) error {
	containers, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	s.publish(ctx, containers)
	return nil
}

func (s *service) Find(name string) (*domain.Container, error) {
	snap := s.store.Current()
	if snap.Len() == 0 {
		return nil, fmt.Errorf("%w", domain.ErrCatalogUnavailable)
	}
	return snap.Find(name)
}

func (s *service) List() map[domain.ContainerType][]string {
	return s.store.Current().List()
}

// publish recomputes probabilities and swaps in the new snapshot.
func (s *service) publish(ctx context.Context, containers []*domain.Container) {
	for _, c := range containers {
		probability.Apply(c)
	}
	s.store.Publish(NewSnapshot(containers))
	logger.FromContext(ctx).Info(LogMsgSnapshotPublished, "containers", len(containers))
}

// skipContainerName applies the sync exclusion rules for decorative
// categories that carry no wear mechanics.
func skipContainerName(name string) bool {
	if domain.ContainerTypeOf(name) == domain.ContainerCapsule {
		return true
	}
	for _, suffix := range skipNameSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// cleanItems filters a raw detail response into the catalog pool: tiers the
// catalog cannot assign are dropped, duplicate short names keep their first
// occurrence, and the extraordinary marker overrides the reported tier.
func cleanItems(raw []RemoteItem) []domain.CatalogItem {
	seen := make(map[string]bool, len(raw))
	out := make([]domain.CatalogItem, 0, len(raw))
	for _, item := range raw {
		tier := domain.Tier(item.Rln)
		if !tier.Catalogued() {
			continue
		}
		if seen[item.ShortName] {
			continue
		}
		if strings.Contains(item.ShortName, domain.ExtraordinaryMarker) {
			tier = domain.TierExtra
		}
		seen[item.ShortName] = true
		out = append(out, domain.CatalogItem{
			ShortName: item.ShortName,
			Tier:      tier,
			ImageURL:  item.Img,
		})
	}
	return out
}

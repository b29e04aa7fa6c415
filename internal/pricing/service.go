// Package pricing looks up current market prices for items through the
// upstream search and goods APIs. Goods lookups are throttled and cached,
// since price queries tend to repeat the same few popular items.
package pricing

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/luooka/casebot/internal/domain"
)

// CacheSize bounds the goods-info cache.
const CacheSize = 128

// DefaultThrottle spaces out goods-info calls against the rate-limited
// upstream.
const DefaultThrottle = 1500 * time.Millisecond

// Quote is the price summary for one item across markets.
type Quote struct {
	Name      string `json:"name"`
	Buff      string `json:"buff"`
	YYYP      string `json:"yyyp"`
	Steam     string `json:"steam"`
	ImageURL  string `json:"img_url,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Service answers price queries by free-text item name.
type Service interface {
	// Lookup resolves the name through search suggest and returns the first
	// match's quote.
	Lookup(ctx context.Context, name string) (*Quote, error)
}

type service struct {
	client   Client
	cache    *lru.Cache[int64, *Quote]
	throttle time.Duration
	sleep    func(time.Duration)
}

// Option configures the pricing service.
type Option func(*service)

// WithSleep replaces the throttle pause. Tests use a no-op.
func WithSleep(fn func(time.Duration)) Option {
	return func(s *service) {
		s.sleep = fn
	}
}

// NewService creates the pricing service.
func NewService(client Client, opts ...Option) (Service, error) {
	cache, err := lru.New[int64, *Quote](CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create price cache: %w", err)
	}
	s := &service{
		client:   client,
		cache:    cache,
		throttle: DefaultThrottle,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *service) Lookup(ctx context.Context, name string) (*Quote, error) {
	matches, err := s.client.Search(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}

	id := matches[0].ID
	if q, ok := s.cache.Get(id); ok {
		return q, nil
	}

	s.sleep(s.throttle)
	q, err := s.client.GoodsInfo(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Add(id, q)
	return q, nil
}

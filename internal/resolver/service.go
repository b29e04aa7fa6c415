// Package resolver performs the stochastic part of a container opening: the
// weighted item draw, cosmetic post-processing (souvenir/StatTrak tags,
// pattern-family sub-patterns) and wear assignment.
//
// The service is stateless with respect to containers; it only reads the
// pool handed to it, so concurrent Resolve calls need no coordination.
package resolver

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/luooka/casebot/internal/domain"
)

// Service resolves one drop outcome from a container's pool.
type Service interface {
	Resolve(c *domain.Container) (*domain.DropOutcome, error)
}

type service struct {
	rnd  func() float64
	intn func(n int) int
}

// Option configures the resolver service.
type Option func(*service)

// WithRand replaces the random source. Tests use a seeded source for
// reproducible draws.
func WithRand(r *rand.Rand) Option {
	return func(s *service) {
		s.rnd = r.Float64
		s.intn = r.Intn
	}
}

// NewService creates a resolver backed by the default random source.
func NewService(opts ...Option) Service {
	s := &service{
		rnd:  rand.Float64,
		intn: rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve draws one outcome from the container per the weighted distribution
// computed by the probability builder.
func (s *service) Resolve(c *domain.Container) (*domain.DropOutcome, error) {
	valid := make([]domain.CatalogItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.Probability > 0 {
			valid = append(valid, it)
		}
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyPool, c.Name)
	}

	// Cumulative-sum walk in stored pool order. When floating-point
	// accumulation leaves the roll above the final sum, the last item wins;
	// the draw never fails.
	roll := s.rnd()
	selected := valid[len(valid)-1]
	cumulative := 0.0
	for _, it := range valid {
		cumulative += it.Probability
		if roll <= cumulative {
			selected = it
			break
		}
	}

	name := selected.ShortName
	switch {
	case c.Type == domain.ContainerSouvenir:
		name = SouvenirPrefix + name
	case c.Type == domain.ContainerCase && !strings.Contains(name, GloveKeyword):
		if s.rnd() < StatTrakChance {
			name = StatTrakPrefix + name
		}
	}

	isDoppler := strings.Contains(name, DopplerMarker)
	if isDoppler {
		patterns := dopplerPatterns
		if strings.Contains(name, GammaMarker) {
			patterns = gammaDopplerPatterns
		}
		label := s.pickPattern(patterns)
		name = strings.Replace(name, DopplerMarker, DopplerMarker+" ("+label+")", 1)
	}

	bands := wearBands
	if isDoppler {
		bands = dopplerWearBands
	}
	band := s.pickBand(bands)
	wear := math.Round((band.lo+s.rnd()*(band.hi-band.lo))*wearPrecision) / wearPrecision

	return &domain.DropOutcome{
		Name:       name,
		RawName:    selected.ShortName,
		Tier:       selected.Tier,
		WearValue:  wear,
		WearLevel:  band.name,
		TemplateID: s.intn(TemplateIDRange),
		ImageURL:   selected.ImageURL,
		IsSpecial:  selected.Tier.Special(),
	}, nil
}

// pickBand selects a wear band by normalized weight.
func (s *service) pickBand(bands []wearBand) wearBand {
	total := 0.0
	for _, b := range bands {
		total += b.weight
	}
	roll := s.rnd() * total
	cumulative := 0.0
	for _, b := range bands {
		cumulative += b.weight
		if roll <= cumulative {
			return b
		}
	}
	return bands[len(bands)-1]
}

// pickPattern selects a sub-pattern label by normalized weight.
func (s *service) pickPattern(patterns []patternChoice) string {
	total := 0.0
	for _, p := range patterns {
		total += p.weight
	}
	roll := s.rnd() * total
	cumulative := 0.0
	for _, p := range patterns {
		cumulative += p.weight
		if roll <= cumulative {
			return p.label
		}
	}
	return patterns[len(patterns)-1].label
}

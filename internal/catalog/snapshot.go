package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/luooka/casebot/internal/domain"
)

// Snapshot is an immutable view of the catalog. It is built off to the side
// and published wholesale, so readers never observe a partially updated
// catalog.
type Snapshot struct {
	containers map[string]*domain.Container
	names      []string // sorted, for deterministic substring lookup
}

// NewSnapshot builds a snapshot from a container list. Probabilities must
// already be applied.
func NewSnapshot(containers []*domain.Container) *Snapshot {
	s := &Snapshot{
		containers: make(map[string]*domain.Container, len(containers)),
		names:      make([]string, 0, len(containers)),
	}
	for _, c := range containers {
		if _, exists := s.containers[c.Name]; exists {
			continue
		}
		s.containers[c.Name] = c
		s.names = append(s.names, c.Name)
	}
	sort.Strings(s.names)
	return s
}

// Len returns the number of containers in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.containers)
}

// Find resolves a container by exact name first, then by the first substring
// match in sorted name order.
func (s *Snapshot) Find(name string) (*domain.Container, error) {
	if c, ok := s.containers[name]; ok {
		return c, nil
	}
	for _, candidate := range s.names {
		if strings.Contains(candidate, name) {
			return s.containers[candidate], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrContainerNotFound, name)
}

// List groups container names by type, each group sorted.
func (s *Snapshot) List() map[domain.ContainerType][]string {
	out := make(map[domain.ContainerType][]string)
	for _, name := range s.names {
		t := s.containers[name].Type
		out[t] = append(out[t], name)
	}
	return out
}

// Store holds the live snapshot behind an atomic pointer. Lookups are
// lock-free; a sync replaces the whole snapshot in one swap.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store holding an empty snapshot.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(NewSnapshot(nil))
	return s
}

// Current returns the live snapshot.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Publish swaps in a new snapshot. In-flight readers keep the one they loaded.
func (s *Store) Publish(snap *Snapshot) {
	s.current.Store(snap)
}

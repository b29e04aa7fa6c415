package catalog

import (
	"context"
	"sync"

	"github.com/luooka/casebot/internal/domain"
)

// memoryRepository keeps the catalog in process. It does not survive
// restarts; a fresh sync repopulates it.
type memoryRepository struct {
	mu         sync.RWMutex
	containers []*domain.Container
}

// NewMemoryRepository creates an in-process catalog store.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Save(_ context.Context, containers []*domain.Container) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.containers = containers
	return nil
}

func (r *memoryRepository) Load(_ context.Context) ([]*domain.Container, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.containers, nil
}

package helpers

import (
	"context"
	"sync"

	"github.com/premiertools/planner/internal/domain/plan"
)

// MemoryStateRepository is an in-memory StateRepository for service tests
type MemoryStateRepository struct {
	mu sync.Mutex

	snapshot plan.Snapshot
	stored   bool

	// Error injection
	LoadErr error
	SaveErr error

	// Call tracking
	SaveCalls int
}

// NewMemoryStateRepository creates an empty in-memory repository
func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{}
}

// Seed preloads a stored snapshot, as if a previous session had saved it
func (r *MemoryStateRepository) Seed(s plan.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = s
	r.stored = true
}

// LoadState returns the stored snapshot, if any
func (r *MemoryStateRepository) LoadState(ctx context.Context) (plan.Snapshot, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.LoadErr != nil {
		return plan.Snapshot{}, false, r.LoadErr
	}
	return r.snapshot, r.stored, nil
}

// SaveState replaces the stored snapshot
func (r *MemoryStateRepository) SaveState(ctx context.Context, s plan.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.SaveCalls++
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.snapshot = s
	r.stored = true
	return nil
}

// Stored reports whether anything has been saved
func (r *MemoryStateRepository) Stored() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stored
}

// Snapshot returns a copy of the stored snapshot
func (r *MemoryStateRepository) Snapshot() plan.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot
}

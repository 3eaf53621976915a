package dungeonmaps

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Snapshot
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		clock: clock.New(),
		store: make(map[string]*Snapshot),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Save stores a session map
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}

	snapshot := &Snapshot{
		SessionID: input.SessionID,
		State:     input.State.Clone(),
		UpdatedAt: r.clock.Now(),
	}

	r.mu.Lock()
	r.store[input.SessionID] = snapshot
	r.mu.Unlock()

	return &SaveOutput{Snapshot: copySnapshot(snapshot)}, nil
}

// Get retrieves a session map by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, exists := r.store[input.SessionID]
	if !exists {
		return nil, errors.NotFoundf("dungeon map session %s not found", input.SessionID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Snapshot: copySnapshot(snapshot)}, nil
}

// Delete removes a session map
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.SessionID]; !exists {
		return nil, errors.NotFoundf("dungeon map session %s not found", input.SessionID)
	}

	delete(r.store, input.SessionID)

	return &DeleteOutput{Success: true}, nil
}

func copySnapshot(s *Snapshot) *Snapshot {
	return &Snapshot{
		SessionID: s.SessionID,
		State:     s.State.Clone(),
		UpdatedAt: s.UpdatedAt,
	}
}

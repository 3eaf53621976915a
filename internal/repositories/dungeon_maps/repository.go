// Package dungeonmaps defines persistence for dungeon map session snapshots
package dungeonmaps

//go:generate mockgen -destination=mock/mock_repository.go -package=dungeonmapsmock github.com/KirkDiggler/rpg-dungeon-map/internal/repositories/dungeon_maps Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/dungeonmap"
)

// Repository defines the storage interface for dungeon map sessions
type Repository interface {
	// Save stores or replaces a session's map
	// Returns errors.InvalidArgument for a missing session ID or state
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a session's map
	// Returns errors.NotFound if the session doesn't exist
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes a session's map
	// Returns errors.NotFound if the session doesn't exist
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// Snapshot is the persisted form of one session's map
type Snapshot struct {
	SessionID string            `json:"session_id"`
	State     *dungeonmap.State `json:"state"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// SaveInput defines the request for saving a session map
type SaveInput struct {
	SessionID string
	State     *dungeonmap.State
}

// SaveOutput defines the response for saving a session map
type SaveOutput struct {
	Snapshot *Snapshot
}

// GetInput defines the request for retrieving a session map
type GetInput struct {
	SessionID string
}

// GetOutput defines the response for retrieving a session map
type GetOutput struct {
	Snapshot *Snapshot
}

// DeleteInput defines the request for deleting a session map
type DeleteInput struct {
	SessionID string
}

// DeleteOutput defines the response for deleting a session map
type DeleteOutput struct {
	Success bool
}

const (
	errInputNil       = "input is required"
	errSessionIDEmpty = "session ID is required"
	errStateNil       = "state is required"
)

package dungeon

import (
	"github.com/KirkDiggler/rpg-dungeon-map/internal/dungeonmap"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
)

// StartSessionInput defines the request for opening a dungeon map session
type StartSessionInput struct {
	// SessionID is optional; one is generated when empty
	SessionID string
}

// StartSessionOutput defines the response for opening a session
type StartSessionOutput struct {
	SessionID string
	State     *dungeonmap.State
}

// RevealRoomInput defines the request for merging a newly visible room
type RevealRoomInput struct {
	SessionID string
	Room      entities.Room
	Doors     []entities.DoorInfo
}

// RevealRoomOutput defines the response for a room reveal
type RevealRoomOutput struct {
	State *dungeonmap.State
	// IsUpdate is true when the room had already been revealed
	IsUpdate bool
}

// UpdateEntitiesInput defines the request for a per-turn entity refresh
type UpdateEntitiesInput struct {
	SessionID string
	Room      entities.Room
}

// UpdateEntitiesOutput defines the response for an entity refresh
type UpdateEntitiesOutput struct {
	State *dungeonmap.State
}

// UpdateDoorsInput defines the request for door state changes
type UpdateDoorsInput struct {
	SessionID string
	Doors     []entities.DoorInfo
}

// UpdateDoorsOutput defines the response for door state changes
type UpdateDoorsOutput struct {
	State *dungeonmap.State
}

// ResetSessionInput defines the request for clearing a session's map
type ResetSessionInput struct {
	SessionID string
}

// ResetSessionOutput defines the response for clearing a session's map
type ResetSessionOutput struct {
	State *dungeonmap.State
}

// GetMapInput defines the request for reading a session's map
type GetMapInput struct {
	SessionID string
}

// GetMapOutput defines the response for reading a session's map
type GetMapOutput struct {
	State *dungeonmap.State
}

// GetMovementRangeInput defines the request for an entity's reachable hexes
type GetMovementRangeInput struct {
	SessionID    string
	EntityID     string
	MovementFeet int
}

// GetMovementRangeOutput defines the response for a movement range query
type GetMovementRangeOutput struct {
	// Hexes includes the entity's own position
	Hexes []hex.CubeCoord
	Steps int
}

// FindPathInput defines the request for walking an entity toward a hex
type FindPathInput struct {
	SessionID string
	EntityID  string
	To        hex.CubeCoord
}

// FindPathOutput defines the response for a path query
type FindPathOutput struct {
	// Path excludes the start and may stop short of the target
	Path     []hex.CubeCoord
	Complete bool
}

// EndSessionInput defines the request for discarding a session
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput defines the response for discarding a session
type EndSessionOutput struct {
	Success bool
}

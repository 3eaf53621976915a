// Package entities provides the room snapshot structures the dungeon map is built from.
package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
)

// Entity types found in room snapshots
const (
	EntityTypeCharacter = "character"
	EntityTypeMonster   = "monster"
	EntityTypeObstacle  = "obstacle"
)

// Room is a server-provided snapshot of one revealed room
type Room struct {
	ID       string                     `json:"id"`
	Type     string                     `json:"type,omitempty"` // "dungeon", "corridor", etc.
	Width    int                        `json:"width"`
	Height   int                        `json:"height"`
	Origin   *Origin                    `json:"origin,omitempty"` // Dungeon-absolute position of local (0,0)
	Entities map[string]EntityPlacement `json:"entities"`
	Walls    []WallSegment              `json:"walls"`
}

// Origin carries the x and z axes of a room's local (0,0) cell. The y axis
// is always derived.
type Origin struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// EntityPlacement is where one actor currently stands, in dungeon-absolute coordinates
type EntityPlacement struct {
	EntityID   string        `json:"entity_id"`
	Position   hex.CubeCoord `json:"position"`
	EntityType string        `json:"entity_type"` // "character", "monster", "obstacle"
}

// WallSegment is a wall between two dungeon-absolute hexes
type WallSegment struct {
	Start hex.CubeCoord `json:"start"`
	End   hex.CubeCoord `json:"end"`
}

// DoorInfo is a traversable connection between rooms
type DoorInfo struct {
	ConnectionID string        `json:"connection_id"`
	Position     hex.CubeCoord `json:"position"`
	IsOpen       bool          `json:"is_open"`
}

// FloorTile marks a walkable hex belonging to a room
type FloorTile struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Z      int    `json:"z"`
	RoomID string `json:"room_id"`
}

// OriginCube returns the room origin as a cube coordinate; a missing
// origin is treated as (0,0,0)
func (r *Room) OriginCube() hex.CubeCoord {
	if r == nil || r.Origin == nil {
		return hex.NewCube(0, 0)
	}
	return hex.NewCube(r.Origin.X, r.Origin.Z)
}

// Clone returns a deep copy of the room
func (r Room) Clone() Room {
	out := r
	if r.Origin != nil {
		origin := *r.Origin
		out.Origin = &origin
	}
	if r.Entities != nil {
		out.Entities = make(map[string]EntityPlacement, len(r.Entities))
		for id, placement := range r.Entities {
			out.Entities[id] = placement
		}
	}
	if r.Walls != nil {
		out.Walls = append([]WallSegment(nil), r.Walls...)
	}
	return out
}

// Coord returns the tile position as a cube coordinate
func (t FloorTile) Coord() hex.CubeCoord {
	return hex.CubeCoord{X: t.X, Y: t.Y, Z: t.Z}
}

// GetID returns the entity's ID
func (p EntityPlacement) GetID() string {
	return p.EntityID
}

// GetType returns the entity type for rpg-toolkit
func (p EntityPlacement) GetType() string {
	return p.EntityType
}

var _ core.Entity = EntityPlacement{}

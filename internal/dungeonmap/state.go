// Package dungeonmap accumulates revealed rooms into one persistent,
// cross-room dungeon map.
//
// Every operation is a pure state-in/state-out transform: the returned
// *State is new and the *State passed in is never modified, so a caller
// holding an older snapshot keeps seeing exactly what it saw. Floor tiles,
// walls and revealed rooms only grow; entity positions and door states are
// last-write-wins.
package dungeonmap

import (
	"github.com/KirkDiggler/rpg-dungeon-map/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
)

// State is the accumulated dungeon map for one session
type State struct {
	FloorTiles      map[string]entities.FloorTile       `json:"floor_tiles"` // keyed by hex.Key
	Walls           []entities.WallSegment              `json:"walls"`
	Entities        map[string]entities.EntityPlacement `json:"entities"` // keyed by entity ID, across all rooms
	Doors           map[string]entities.DoorInfo        `json:"doors"`    // keyed by connection ID
	RevealedRoomIDs map[string]struct{}                 `json:"revealed_room_ids"`
	Rooms           map[string]entities.Room            `json:"rooms"` // last known snapshot per room
	CurrentRoomID   string                              `json:"current_room_id,omitempty"`
}

// NewState returns an empty map with no current room
func NewState() *State {
	return &State{
		FloorTiles:      make(map[string]entities.FloorTile),
		Walls:           []entities.WallSegment{},
		Entities:        make(map[string]entities.EntityPlacement),
		Doors:           make(map[string]entities.DoorInfo),
		RevealedRoomIDs: make(map[string]struct{}),
		Rooms:           make(map[string]entities.Room),
	}
}

// Reset discards everything and returns an empty map
func Reset() *State {
	return NewState()
}

// Clone returns a deep copy that shares no mutable collections with s
func (s *State) Clone() *State {
	if s == nil {
		return NewState()
	}

	out := &State{
		FloorTiles:      make(map[string]entities.FloorTile, len(s.FloorTiles)),
		Walls:           make([]entities.WallSegment, len(s.Walls)),
		Entities:        make(map[string]entities.EntityPlacement, len(s.Entities)),
		Doors:           make(map[string]entities.DoorInfo, len(s.Doors)),
		RevealedRoomIDs: make(map[string]struct{}, len(s.RevealedRoomIDs)),
		Rooms:           make(map[string]entities.Room, len(s.Rooms)),
		CurrentRoomID:   s.CurrentRoomID,
	}

	for key, tile := range s.FloorTiles {
		out.FloorTiles[key] = tile
	}
	copy(out.Walls, s.Walls)
	for id, placement := range s.Entities {
		out.Entities[id] = placement
	}
	for id, door := range s.Doors {
		out.Doors[id] = door
	}
	for id := range s.RevealedRoomIDs {
		out.RevealedRoomIDs[id] = struct{}{}
	}
	for id, room := range s.Rooms {
		out.Rooms[id] = room.Clone()
	}

	return out
}

// TileCount returns the number of distinct floor tiles
func (s *State) TileCount() int {
	if s == nil {
		return 0
	}
	return len(s.FloorTiles)
}

// HasFloor reports whether the hex is revealed floor
func (s *State) HasFloor(c hex.CubeCoord) bool {
	if s == nil {
		return false
	}
	_, ok := s.FloorTiles[c.Key()]
	return ok
}

// IsRevealed reports whether the room has contributed floor tiles
func (s *State) IsRevealed(roomID string) bool {
	if s == nil {
		return false
	}
	_, ok := s.RevealedRoomIDs[roomID]
	return ok
}

// Entity returns an entity's latest known placement
func (s *State) Entity(entityID string) (entities.EntityPlacement, bool) {
	if s == nil {
		return entities.EntityPlacement{}, false
	}
	placement, ok := s.Entities[entityID]
	return placement, ok
}

// Room returns the last known snapshot of a room
func (s *State) Room(roomID string) (entities.Room, bool) {
	if s == nil {
		return entities.Room{}, false
	}
	room, ok := s.Rooms[roomID]
	if !ok {
		return entities.Room{}, false
	}
	return room.Clone(), true
}

// CurrentRoom returns the most recently merged room
func (s *State) CurrentRoom() (entities.Room, bool) {
	if s == nil || s.CurrentRoomID == "" {
		return entities.Room{}, false
	}
	return s.Room(s.CurrentRoomID)
}

// LocalPosition converts an absolute hex to an offset relative to a room's
// origin. The result may lie outside the room footprint.
func (s *State) LocalPosition(roomID string, c hex.CubeCoord) (hex.OffsetCoord, bool) {
	room, ok := s.Room(roomID)
	if !ok {
		return hex.OffsetCoord{}, false
	}
	origin := room.OriginCube()
	return hex.OffsetCoord{Col: c.X - origin.X, Row: c.Z - origin.Z}, true
}

// DoorAt returns the door at a position, if any
func (s *State) DoorAt(c hex.CubeCoord) (entities.DoorInfo, bool) {
	if s == nil {
		return entities.DoorInfo{}, false
	}
	for _, door := range s.Doors {
		if door.Position == c {
			return door, true
		}
	}
	return entities.DoorInfo{}, false
}

package dungeonmap

import (
	"github.com/KirkDiggler/rpg-dungeon-map/internal/entities"
)

// MergeRoom folds a revealed room and its doors into the map.
//
// The first merge of a room contributes its floor tiles and walls. Later
// merges of the same room only refresh entities, doors and the stored room
// snapshot, so tiles and walls are never duplicated. Entities are keyed
// globally by ID: an entity that moved into this room from another one
// ends up with a single, updated placement.
func MergeRoom(state *State, room entities.Room, doors []entities.DoorInfo) *State {
	next := state.Clone()

	if !next.IsRevealed(room.ID) {
		for _, tile := range GenerateFloorTiles(room) {
			next.FloorTiles[tile.Coord().Key()] = tile
		}
		next.Walls = append(next.Walls, room.Walls...)
	}

	mergeEntities(next, room)
	mergeDoors(next, doors)

	next.RevealedRoomIDs[room.ID] = struct{}{}
	next.Rooms[room.ID] = room.Clone()
	next.CurrentRoomID = room.ID

	return next
}

// UpdateEntitiesFromRoom applies a per-turn room snapshot: entity positions
// and the stored room are refreshed while floor tiles, walls, doors and
// revealed rooms stay as they are.
//
// Calling it for a room that was never merged is allowed; the entities are
// tracked without any floor under them.
func UpdateEntitiesFromRoom(state *State, room entities.Room) *State {
	next := state.Clone()

	mergeEntities(next, room)
	next.Rooms[room.ID] = room.Clone()

	return next
}

// UpdateDoors applies door state changes without touching anything else
func UpdateDoors(state *State, doors []entities.DoorInfo) *State {
	next := state.Clone()
	mergeDoors(next, doors)
	return next
}

func mergeEntities(s *State, room entities.Room) {
	for id, placement := range room.Entities {
		if placement.EntityID == "" {
			placement.EntityID = id
		}
		s.Entities[id] = placement
	}
}

func mergeDoors(s *State, doors []entities.DoorInfo) {
	for _, door := range doors {
		s.Doors[door.ConnectionID] = door
	}
}

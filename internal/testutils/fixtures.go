package testutils

import (
	"github.com/KirkDiggler/rpg-dungeon-map/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
)

// Room fixtures shared across packages
const (
	TestRoomID      = "room-test-001"
	TestCharacterID = "char-test-001"
	TestMonsterID   = "monster-test-001"
)

// CreateTestRoom creates an empty room with the given footprint and origin
func CreateTestRoom(id string, width, height, originX, originZ int) entities.Room {
	return entities.Room{
		ID:       id,
		Type:     "dungeon",
		Width:    width,
		Height:   height,
		Origin:   &entities.Origin{X: originX, Z: originZ},
		Entities: map[string]entities.EntityPlacement{},
		Walls:    []entities.WallSegment{},
	}
}

// CreateTestPlacement creates an entity placement at an absolute position
func CreateTestPlacement(id, entityType string, position hex.CubeCoord) entities.EntityPlacement {
	return entities.EntityPlacement{
		EntityID:   id,
		EntityType: entityType,
		Position:   position,
	}
}

// CreateTestEncounterRoom creates a 10x10 room at the origin holding one
// character and one monster, matching what a fresh encounter delivers
func CreateTestEncounterRoom() entities.Room {
	room := CreateTestRoom(TestRoomID, 10, 10, 0, 0)
	room.Entities[TestCharacterID] = CreateTestPlacement(
		TestCharacterID, entities.EntityTypeCharacter, hex.OffsetToCube(hex.OffsetCoord{Col: 2, Row: 3}),
	)
	room.Entities[TestMonsterID] = CreateTestPlacement(
		TestMonsterID, entities.EntityTypeMonster, hex.OffsetToCube(hex.OffsetCoord{Col: 7, Row: 6}),
	)
	return room
}

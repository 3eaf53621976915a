package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/dungeonmap"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
)

type entitySummary struct {
	ID       string        `json:"id"`
	Type     string        `json:"type"`
	Position hex.CubeCoord `json:"position"`
}

type mapSummary struct {
	SessionID     string          `json:"session_id"`
	CurrentRoomID string          `json:"current_room_id"`
	Rooms         []string        `json:"rooms"`
	FloorTiles    int             `json:"floor_tiles"`
	WallHexes     int             `json:"wall_hexes"`
	Doors         int             `json:"doors"`
	OpenDoors     int             `json:"open_doors"`
	Entities      []entitySummary `json:"entities"`
	MovementRange map[string]int  `json:"movement_range,omitempty"`
}

func summarize(sessionID string, state *dungeonmap.State) *mapSummary {
	summary := &mapSummary{
		SessionID:     sessionID,
		CurrentRoomID: state.CurrentRoomID,
		FloorTiles:    state.TileCount(),
		WallHexes:     len(state.WallHexes()),
		Doors:         len(state.Doors),
	}

	for id := range state.RevealedRoomIDs {
		summary.Rooms = append(summary.Rooms, id)
	}
	sort.Strings(summary.Rooms)

	for _, door := range state.Doors {
		if door.IsOpen {
			summary.OpenDoors++
		}
	}

	for id, placement := range state.Entities {
		summary.Entities = append(summary.Entities, entitySummary{
			ID:       id,
			Type:     placement.EntityType,
			Position: placement.Position,
		})
	}
	sort.Slice(summary.Entities, func(i, j int) bool {
		return summary.Entities[i].ID < summary.Entities[j].ID
	})

	return summary
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

package dungeonmap

import (
	"github.com/KirkDiggler/rpg-dungeon-map/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
)

// GenerateFloorTiles expands a room's width, height and origin into its
// floor tiles, row by row. Non-positive dimensions produce no tiles.
func GenerateFloorTiles(room entities.Room) []entities.FloorTile {
	if room.Width <= 0 || room.Height <= 0 {
		return []entities.FloorTile{}
	}

	origin := room.OriginCube()
	tiles := make([]entities.FloorTile, 0, room.Width*room.Height)
	for z := 0; z < room.Height; z++ {
		for x := 0; x < room.Width; x++ {
			c := hex.NewCube(origin.X+x, origin.Z+z)
			tiles = append(tiles, entities.FloorTile{
				X:      c.X,
				Y:      c.Y,
				Z:      c.Z,
				RoomID: room.ID,
			})
		}
	}

	return tiles
}

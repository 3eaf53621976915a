package dungeonmap_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/dungeonmap"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/testutils"
)

type TilesTestSuite struct {
	suite.Suite
}

func TestTilesSuite(t *testing.T) {
	suite.Run(t, new(TilesTestSuite))
}

func tileCoords(tiles []entities.FloorTile) hex.Set {
	set := hex.NewSet()
	for _, tile := range tiles {
		set.Add(tile.Coord())
	}
	return set
}

func (s *TilesTestSuite) TestOriginRoom() {
	room := testutils.CreateTestRoom("room-1", 3, 2, 0, 0)

	tiles := dungeonmap.GenerateFloorTiles(room)

	s.Len(tiles, 6)
	coords := tileCoords(tiles)
	s.True(coords.Contains(hex.CubeCoord{X: 0, Y: 0, Z: 0}))
	s.True(coords.Contains(hex.CubeCoord{X: 2, Y: -3, Z: 1}))
	for _, tile := range tiles {
		s.Equal("room-1", tile.RoomID)
	}
}

func (s *TilesTestSuite) TestOffsetOrigin() {
	room := testutils.CreateTestRoom("room-2", 2, 2, 10, 5)

	coords := tileCoords(dungeonmap.GenerateFloorTiles(room))

	s.Len(coords, 4)
	s.True(coords.Contains(hex.CubeCoord{X: 10, Y: -15, Z: 5}))
	s.True(coords.Contains(hex.CubeCoord{X: 11, Y: -16, Z: 5}))
	s.True(coords.Contains(hex.CubeCoord{X: 10, Y: -16, Z: 6}))
	s.True(coords.Contains(hex.CubeCoord{X: 11, Y: -17, Z: 6}))
	s.False(coords.Contains(hex.CubeCoord{X: 0, Y: 0, Z: 0}))
}

func (s *TilesTestSuite) TestCubeInvariantHolds() {
	testCases := []struct {
		name          string
		width, height int
		x, z          int
	}{
		{name: "origin", width: 5, height: 4, x: 0, z: 0},
		{name: "positive", width: 7, height: 3, x: 12, z: 9},
		{name: "negative", width: 4, height: 6, x: -8, z: -3},
		{name: "single", width: 1, height: 1, x: 3, z: -3},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tiles := dungeonmap.GenerateFloorTiles(testutils.CreateTestRoom("r", tc.width, tc.height, tc.x, tc.z))
			s.Len(tiles, tc.width*tc.height)
			for _, tile := range tiles {
				s.Zero(tile.X+tile.Y+tile.Z, "tile %v breaks the cube invariant", tile)
			}
			s.Len(tileCoords(tiles), tc.width*tc.height, "tiles must be distinct")
		})
	}
}

func (s *TilesTestSuite) TestMissingOriginDefaultsToZero() {
	room := entities.Room{ID: "room-x", Width: 2, Height: 1}

	coords := tileCoords(dungeonmap.GenerateFloorTiles(room))

	s.True(coords.Contains(hex.NewCube(0, 0)))
	s.True(coords.Contains(hex.NewCube(1, 0)))
}

func (s *TilesTestSuite) TestNonPositiveDimensions() {
	s.Empty(dungeonmap.GenerateFloorTiles(entities.Room{ID: "a", Width: 0, Height: 3}))
	s.Empty(dungeonmap.GenerateFloorTiles(entities.Room{ID: "b", Width: 3, Height: -1}))
}

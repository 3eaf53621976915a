package dungeonmap_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/dungeonmap"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
	"github.com/KirkDiggler/rpg-dungeon-map/internal/testutils"
)

type QueriesTestSuite struct {
	suite.Suite
	state *dungeonmap.State
}

func TestQueriesSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

func (s *QueriesTestSuite) SetupTest() {
	// a 9x9 room with the fighter in the middle and a goblin next to it
	room := testutils.CreateTestRoom("room-1", 9, 9, 0, 0)
	room.Entities = map[string]entities.EntityPlacement{
		"fighter": testutils.CreateTestPlacement("fighter", entities.EntityTypeCharacter, hex.NewCube(4, 4)),
		"goblin":  testutils.CreateTestPlacement("goblin", entities.EntityTypeMonster, hex.NewCube(5, 4)),
	}
	s.state = dungeonmap.MergeRoom(dungeonmap.NewState(), room, nil)
}

func (s *QueriesTestSuite) TestOccupiedByExcludesMover() {
	occupied := s.state.OccupiedBy("fighter")

	s.Len(occupied, 1)
	s.True(occupied.Contains(hex.NewCube(5, 4)))
	s.False(occupied.Contains(hex.NewCube(4, 4)))
}

func (s *QueriesTestSuite) TestMovementRangeAvoidsOccupied() {
	reach, ok := dungeonmap.MovementRange(s.state, "fighter", 5)

	s.Require().True(ok)
	s.Len(reach, hex.ReachableCount(1)-1)
	s.True(reach.Contains(hex.NewCube(4, 4)))
	s.False(reach.Contains(hex.NewCube(5, 4)))
}

func (s *QueriesTestSuite) TestMovementRangeStaysOnFloor() {
	reach, ok := dungeonmap.MovementRange(s.state, "fighter", 200)

	s.Require().True(ok)
	for _, c := range reach {
		s.True(s.state.HasFloor(c), "%v is not floor", c)
	}
	// every floor hex except the goblin's
	s.Len(reach, s.state.TileCount()-1)
}

func (s *QueriesTestSuite) TestMovementRangeUnknownEntity() {
	_, ok := dungeonmap.MovementRange(s.state, "nobody", 30)
	s.False(ok)
}

func (s *QueriesTestSuite) TestPathAroundEntity() {
	target := hex.NewCube(6, 4)

	path, ok := dungeonmap.PathForEntity(s.state, "fighter", target)

	s.Require().True(ok)
	s.Require().NotEmpty(path)
	s.Equal(target, path[len(path)-1])
	s.NotContains(path, hex.NewCube(5, 4))
}

func (s *QueriesTestSuite) TestWallsBlockUnlessDoorOpen() {
	room := testutils.CreateTestRoom("room-2", 5, 1, 0, 0)
	room.Entities = map[string]entities.EntityPlacement{
		"rogue": testutils.CreateTestPlacement("rogue", entities.EntityTypeCharacter, hex.NewCube(0, 0)),
	}
	room.Walls = []entities.WallSegment{{Start: hex.NewCube(2, 0), End: hex.NewCube(2, 0)}}
	closed := []entities.DoorInfo{{ConnectionID: "door-1", Position: hex.NewCube(2, 0), IsOpen: false}}

	state := dungeonmap.MergeRoom(dungeonmap.NewState(), room, closed)
	reach, _ := dungeonmap.MovementRange(state, "rogue", 20)
	s.False(reach.Contains(hex.NewCube(2, 0)))
	s.False(reach.Contains(hex.NewCube(3, 0)))

	opened := dungeonmap.UpdateDoors(state, []entities.DoorInfo{
		{ConnectionID: "door-1", Position: hex.NewCube(2, 0), IsOpen: true},
	})
	reach, _ = dungeonmap.MovementRange(opened, "rogue", 20)
	s.True(reach.Contains(hex.NewCube(2, 0)))
	s.True(reach.Contains(hex.NewCube(4, 0)))
}

func (s *QueriesTestSuite) TestWallHexesFollowSegment() {
	room := testutils.CreateTestRoom("room-3", 1, 1, 0, 0)
	room.Walls = []entities.WallSegment{{Start: hex.NewCube(0, 2), End: hex.NewCube(3, 2)}}

	walls := dungeonmap.MergeRoom(nil, room, nil).WallHexes()

	s.Len(walls, 4)
	s.True(walls.Contains(hex.NewCube(1, 2)))
}

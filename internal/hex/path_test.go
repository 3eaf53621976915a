package hex_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
)

type PathTestSuite struct {
	suite.Suite
}

func TestPathSuite(t *testing.T) {
	suite.Run(t, new(PathTestSuite))
}

func (s *PathTestSuite) TestSameHex() {
	c := hex.NewCube(4, 4)
	path := hex.FindPath(c, c, nil)

	s.NotNil(path)
	s.Empty(path)
	s.True(hex.IsComplete(c, c, path))
}

func (s *PathTestSuite) TestAdjacentIsSingleStep() {
	from := hex.NewCube(0, 0)
	to := hex.NewCube(1, 0)

	s.Equal([]hex.CubeCoord{to}, hex.FindPath(from, to, nil))
}

func (s *PathTestSuite) TestAdjacentBlockedTarget() {
	from := hex.NewCube(0, 0)
	to := hex.NewCube(1, 0)

	s.Empty(hex.FindPath(from, to, hex.NewSet(to).Blocked()))
}

func (s *PathTestSuite) TestStraightLine() {
	from := hex.NewCube(0, 0)
	to := hex.NewCube(5, 0)

	path := hex.FindPath(from, to, nil)

	s.Len(path, 5)
	s.Equal(to, path[len(path)-1])
	prev := from
	for _, step := range path {
		s.Equal(1, hex.Distance(prev, step))
		prev = step
	}
}

func (s *PathTestSuite) TestAroundSingleBlocker() {
	from := hex.CubeCoord{X: 5, Y: -10, Z: 5}
	to := hex.CubeCoord{X: 7, Y: -12, Z: 5}
	blocked := hex.CubeCoord{X: 6, Y: -11, Z: 5}

	path := hex.FindPath(from, to, hex.NewSet(blocked).Blocked())

	s.Require().NotEmpty(path)
	s.Equal(to, path[len(path)-1])
	s.NotContains(path, blocked)
	s.True(hex.IsComplete(from, to, path))
}

func (s *PathTestSuite) TestFullyBoxedIn() {
	from := hex.NewCube(0, 0)
	to := hex.CubeCoord{X: 2, Y: -2, Z: 0}
	neighbors := from.Neighbors()
	ring := hex.NewSet(neighbors[:]...)

	path := hex.FindPath(from, to, ring.Blocked())

	s.Empty(path)
	s.False(hex.IsComplete(from, to, path))
}

func (s *PathTestSuite) TestNeverContainsBlocked() {
	from := hex.NewCube(0, 0)
	to := hex.NewCube(6, 0)
	wall := hex.NewSet(
		hex.NewCube(3, -1),
		hex.NewCube(3, 0),
		hex.NewCube(3, 1),
	)

	path := hex.FindPath(from, to, wall.Blocked())

	s.NotEmpty(path)
	for _, step := range path {
		s.False(wall.Contains(step), "path stepped on %v", step)
	}
}

func (s *PathTestSuite) TestLengthCapped() {
	from := hex.NewCube(0, 0)
	to := hex.NewCube(80, 0)

	path := hex.FindPath(from, to, nil)

	s.Len(path, hex.MaxPathLength)
	s.False(hex.IsComplete(from, to, path))
}

func (s *PathTestSuite) TestDeadEndReturnsPartial() {
	from := hex.NewCube(0, 0)
	to := hex.NewCube(4, 0)
	// a ring around the target stops the walk short of it
	neighbors := to.Neighbors()
	ring := hex.NewSet(neighbors[:]...)

	path := hex.FindPath(from, to, ring.Blocked())

	s.False(hex.IsComplete(from, to, path))
	s.LessOrEqual(len(path), hex.MaxPathLength)
	for _, step := range path {
		s.False(ring.Contains(step))
	}
}

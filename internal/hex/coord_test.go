package hex_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
)

type CoordTestSuite struct {
	suite.Suite
}

func TestCoordSuite(t *testing.T) {
	suite.Run(t, new(CoordTestSuite))
}

func (s *CoordTestSuite) TestNewCubeDerivesY() {
	c := hex.NewCube(10, 5)
	s.Equal(hex.CubeCoord{X: 10, Y: -15, Z: 5}, c)
	s.True(c.IsValid())
}

func (s *CoordTestSuite) TestDirectionsAreUnitVectors() {
	origin := hex.NewCube(0, 0)
	for _, dir := range hex.Directions {
		s.True(dir.IsValid(), "direction %v must sum to zero", dir)
		s.Equal(1, hex.Distance(origin, dir))
	}
}

func (s *CoordTestSuite) TestNeighborsAreAdjacent() {
	center := hex.NewCube(3, -7)
	seen := hex.NewSet()
	for _, n := range center.Neighbors() {
		s.True(n.IsValid())
		s.Equal(1, hex.Distance(center, n))
		seen.Add(n)
	}
	s.Len(seen, 6)
}

func (s *CoordTestSuite) TestCubeToOffset() {
	testCases := []struct {
		name     string
		cube     hex.CubeCoord
		expected hex.OffsetCoord
	}{
		{name: "origin", cube: hex.NewCube(0, 0), expected: hex.OffsetCoord{Col: 0, Row: 0}},
		{name: "even row", cube: hex.NewCube(1, 2), expected: hex.OffsetCoord{Col: 2, Row: 2}},
		{name: "odd row", cube: hex.NewCube(2, 1), expected: hex.OffsetCoord{Col: 2, Row: 1}},
		{name: "negative odd row", cube: hex.NewCube(0, -1), expected: hex.OffsetCoord{Col: -1, Row: -1}},
		{name: "negative even row", cube: hex.NewCube(3, -2), expected: hex.OffsetCoord{Col: 2, Row: -2}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, hex.CubeToOffset(tc.cube))
		})
	}
}

func (s *CoordTestSuite) TestRoundTrip() {
	for x := -12; x <= 12; x++ {
		for z := -12; z <= 12; z++ {
			c := hex.NewCube(x, z)
			s.Equal(c, hex.OffsetToCube(hex.CubeToOffset(c)))

			o := hex.OffsetCoord{Col: x, Row: z}
			back := hex.OffsetToCube(o)
			s.True(back.IsValid())
			s.Equal(o, hex.CubeToOffset(back))
		}
	}
}

func (s *CoordTestSuite) TestDistance() {
	a := hex.NewCube(0, 0)
	b := hex.NewCube(2, 1)
	c := hex.NewCube(-4, 7)

	s.Equal(0, hex.Distance(a, a))
	s.Equal(0, hex.Distance(c, c))
	s.Equal(hex.Distance(a, b), hex.Distance(b, a))
	s.Equal(hex.Distance(b, c), hex.Distance(c, b))
	s.Equal(3, hex.Distance(a, b))
	s.Equal(7, hex.Distance(a, c))
}

func (s *CoordTestSuite) TestKey() {
	s.Equal("0,0,0", hex.Key(hex.NewCube(0, 0)))
	s.Equal("2,-3,1", hex.NewCube(2, 1).Key())
	s.Equal("-1,0,1", hex.NewCube(-1, 1).Key())

	// negating zero still yields a canonical key
	zero := 0
	s.Equal(hex.Key(hex.CubeCoord{X: -zero, Y: zero, Z: -zero}), hex.Key(hex.CubeCoord{}))
	s.NotEqual(hex.Key(hex.NewCube(1, 2)), hex.Key(hex.NewCube(2, 1)))
}

func (s *CoordTestSuite) TestStepsForMovement() {
	testCases := []struct {
		feet     int
		expected int
	}{
		{feet: 0, expected: 0},
		{feet: 4, expected: 0},
		{feet: 10, expected: 2},
		{feet: 14, expected: 2},
		{feet: 30, expected: 6},
		{feet: -5, expected: 0},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, hex.StepsForMovement(tc.feet), "feet=%d", tc.feet)
	}
}

func (s *CoordTestSuite) TestLine() {
	a := hex.NewCube(0, 0)
	b := hex.NewCube(4, -2)

	line := hex.Line(a, b)

	s.Require().Len(line, hex.Distance(a, b)+1)
	s.Equal(a, line[0])
	s.Equal(b, line[len(line)-1])
	for i := 1; i < len(line); i++ {
		s.True(line[i].IsValid())
		s.Equal(1, hex.Distance(line[i-1], line[i]))
	}

	s.Equal([]hex.CubeCoord{a}, hex.Line(a, a))
}

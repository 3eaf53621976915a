// Package hex provides cube and offset hex coordinates, the hex distance
// metric, bounded reachability and a greedy pathfinder.
//
// Cube coordinates are the canonical space: every CubeCoord built by this
// package satisfies X+Y+Z == 0. Offset coordinates use the "odd-r" layout
// (pointy-top, odd rows shifted right) and exist for rectangular iteration.
package hex

import (
	"strconv"
)

// FeetPerHex is the distance covered by one hex step (D&D 5e grid)
const FeetPerHex = 5

// CubeCoord is a three-axis hex coordinate with X+Y+Z == 0
type CubeCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// OffsetCoord is an odd-r column/row coordinate
type OffsetCoord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Directions are the six unit vectors that define adjacency.
// The order is also the tie-break order used by FindPath.
var Directions = [6]CubeCoord{
	{X: 1, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: -1},
	{X: 0, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: 0},
	{X: -1, Y: 0, Z: 1},
	{X: 0, Y: -1, Z: 1},
}

// NewCube builds a cube coordinate from its x and z axes, deriving y
func NewCube(x, z int) CubeCoord {
	return CubeCoord{X: x, Y: -x - z, Z: z}
}

// IsValid reports whether the coordinate satisfies the cube invariant
func (c CubeCoord) IsValid() bool {
	return c.X+c.Y+c.Z == 0
}

// Add returns the component-wise sum of two coordinates
func (c CubeCoord) Add(o CubeCoord) CubeCoord {
	return CubeCoord{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Neighbors returns the six adjacent coordinates in Directions order
func (c CubeCoord) Neighbors() [6]CubeCoord {
	var result [6]CubeCoord
	for i, dir := range Directions {
		result[i] = c.Add(dir)
	}
	return result
}

// Key returns the canonical "x,y,z" map key for the coordinate
func (c CubeCoord) Key() string {
	return Key(c)
}

// String implements fmt.Stringer
func (c CubeCoord) String() string {
	return "(" + Key(c) + ")"
}

// Key returns the canonical "x,y,z" map key for a coordinate
func Key(c CubeCoord) string {
	buf := make([]byte, 0, 24)
	buf = strconv.AppendInt(buf, int64(c.X), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(c.Y), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(c.Z), 10)
	return string(buf)
}

// CubeToOffset converts a cube coordinate to odd-r offset
func CubeToOffset(c CubeCoord) OffsetCoord {
	return OffsetCoord{
		Col: c.X + (c.Z-(c.Z&1))/2,
		Row: c.Z,
	}
}

// OffsetToCube converts an odd-r offset coordinate to cube
func OffsetToCube(o OffsetCoord) CubeCoord {
	x := o.Col - (o.Row-(o.Row&1))/2
	return NewCube(x, o.Row)
}

// Distance returns the number of hex steps between a and b ignoring obstacles
func Distance(a, b CubeCoord) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y), abs(a.Z-b.Z))
}

// StepsForMovement converts a movement budget in feet to whole hex steps.
// Remainders are discarded, so 14 feet is 2 steps.
func StepsForMovement(feet int) int {
	if feet <= 0 {
		return 0
	}
	return feet / FeetPerHex
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package dungeonmap

import (
	"github.com/KirkDiggler/rpg-dungeon-map/internal/hex"
)

// OccupiedBy returns the positions of every entity except excludeID
func (s *State) OccupiedBy(excludeID string) hex.Set {
	occupied := hex.NewSet()
	if s == nil {
		return occupied
	}
	for id, placement := range s.Entities {
		if id == excludeID {
			continue
		}
		occupied.Add(placement.Position)
	}
	return occupied
}

// WallHexes returns every hex covered by a wall segment
func (s *State) WallHexes() hex.Set {
	walls := hex.NewSet()
	if s == nil {
		return walls
	}
	for _, wall := range s.Walls {
		for _, c := range hex.Line(wall.Start, wall.End) {
			walls.Add(c)
		}
	}
	return walls
}

// DoorPositions splits door positions into open and closed sets
func (s *State) DoorPositions() (open hex.Set, closed hex.Set) {
	open, closed = hex.NewSet(), hex.NewSet()
	if s == nil {
		return open, closed
	}
	for _, door := range s.Doors {
		if door.IsOpen {
			open.Add(door.Position)
		} else {
			closed.Add(door.Position)
		}
	}
	return open, closed
}

// Blocked builds the obstacle predicate for moverID: hexes held by other
// entities, closed doors and wall hexes without an open door. With
// requireFloor set, any hex that is not revealed floor or an open door is
// blocked too.
func (s *State) Blocked(moverID string, requireFloor bool) hex.BlockedFunc {
	occupied := s.OccupiedBy(moverID)
	walls := s.WallHexes()
	open, closed := s.DoorPositions()

	fns := []hex.BlockedFunc{
		occupied.Blocked(),
		closed.Blocked(),
		// an open door cuts through the wall it sits in
		func(c hex.CubeCoord) bool { return walls.Contains(c) && !open.Contains(c) },
	}
	if requireFloor {
		fns = append(fns, func(c hex.CubeCoord) bool {
			return !s.HasFloor(c) && !open.Contains(c)
		})
	}

	return hex.AnyBlocked(fns...)
}

// MovementRange returns the hexes an entity can reach with movementFeet of
// movement, staying on revealed floor and around other entities. The bool
// is false when the entity is not on the map.
func MovementRange(state *State, entityID string, movementFeet int) (hex.Set, bool) {
	placement, ok := state.Entity(entityID)
	if !ok {
		return nil, false
	}

	steps := hex.StepsForMovement(movementFeet)
	return hex.Reachable(placement.Position, steps, state.Blocked(entityID, true)), true
}

// PathForEntity walks an entity toward a target hex using the greedy
// pathfinder. The bool is false when the entity is not on the map.
func PathForEntity(state *State, entityID string, to hex.CubeCoord) ([]hex.CubeCoord, bool) {
	placement, ok := state.Entity(entityID)
	if !ok {
		return nil, false
	}

	return hex.FindPath(placement.Position, to, state.Blocked(entityID, true)), true
}

package hex

import "sort"

// BlockedFunc reports whether a hex cannot be entered. A nil BlockedFunc
// blocks nothing.
type BlockedFunc func(CubeCoord) bool

// AnyBlocked combines predicates; a hex is blocked if any of them blocks it
func AnyBlocked(fns ...BlockedFunc) BlockedFunc {
	return func(c CubeCoord) bool {
		for _, fn := range fns {
			if fn != nil && fn(c) {
				return true
			}
		}
		return false
	}
}

func (fn BlockedFunc) blocked(c CubeCoord) bool {
	return fn != nil && fn(c)
}

// Set is a set of coordinates keyed by their canonical key
type Set map[string]CubeCoord

// NewSet creates a set holding the given coordinates
func NewSet(coords ...CubeCoord) Set {
	s := make(Set, len(coords))
	for _, c := range coords {
		s.Add(c)
	}
	return s
}

// Add inserts a coordinate
func (s Set) Add(c CubeCoord) {
	s[c.Key()] = c
}

// Contains reports whether the coordinate is in the set
func (s Set) Contains(c CubeCoord) bool {
	_, ok := s[c.Key()]
	return ok
}

// Blocked returns a BlockedFunc that blocks every member of the set
func (s Set) Blocked() BlockedFunc {
	return s.Contains
}

// Slice returns the members ordered by row (z), then x
func (s Set) Slice() []CubeCoord {
	out := make([]CubeCoord, 0, len(s))
	for _, c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Z != out[j].Z {
			return out[i].Z < out[j].Z
		}
		return out[i].X < out[j].X
	})
	return out
}

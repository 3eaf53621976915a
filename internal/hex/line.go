package hex

import "math"

// Line returns the hexes on the straight line from a to b, both ends
// included, in order.
func Line(a, b CubeCoord) []CubeCoord {
	n := Distance(a, b)
	if n == 0 {
		return []CubeCoord{a}
	}

	out := make([]CubeCoord, 0, n+1)
	// nudge off exact edges so ties round the same way every time
	const eps = 1e-6
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		out = append(out, round(
			lerp(float64(a.X)+eps, float64(b.X)+eps, t),
			lerp(float64(a.Y)+eps, float64(b.Y)+eps, t),
			lerp(float64(a.Z)-2*eps, float64(b.Z)-2*eps, t),
		))
	}
	return out
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// round snaps fractional cube coordinates to the nearest hex, fixing up
// the axis with the largest rounding error so the invariant holds
func round(fx, fy, fz float64) CubeCoord {
	rx, ry, rz := math.Round(fx), math.Round(fy), math.Round(fz)
	dx, dy, dz := math.Abs(rx-fx), math.Abs(ry-fy), math.Abs(rz-fz)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}

	return CubeCoord{X: int(rx), Y: int(ry), Z: int(rz)}
}

package motion

import "math"

// Speed returns base × timescale, reduced by √2 when moving diagonally so
// the diagonal magnitude per axis matches straight movement scaled by 1/√2.
func Speed(base, timescale float64, f Flags) float64 {
	speed := base * timescale
	if f.Diagonal() {
		speed /= math.Sqrt2
	}
	return speed
}

// Displacement returns the signed per-axis offset for the held directions.
// Opposing directions cancel.
func Displacement(f Flags, speed, delta float64) (dx, dy float64) {
	step := speed * delta
	if f.Left {
		dx -= step
	}
	if f.Right {
		dx += step
	}
	if f.Up {
		dy -= step
	}
	if f.Down {
		dy += step
	}
	return dx, dy
}

// Frame is everything one integrator step reads.
type Frame struct {
	Timestamp float64 // ms
	BaseSpeed float64
	Flags     Flags
	Position  Point
	Width     float64
	Height    float64
	ViewW     float64
	ViewH     float64
}

// Step runs one integrator update and returns the clamped new position.
func Step(s *State, fr Frame) Point {
	delta := s.Delta(fr.Timestamp)
	speed := Speed(fr.BaseSpeed, s.TimescaleFactor, fr.Flags)
	dx, dy := Displacement(fr.Flags, speed, delta)

	next := Point{X: fr.Position.X + dx, Y: fr.Position.Y + dy}
	return Bounds(fr.ViewW, fr.ViewH, fr.Width, fr.Height).ClampPoint(next)
}

// Place returns the clamped position that centers a w×h element on the cursor.
func Place(cx, cy, w, h, viewW, viewH float64) Point {
	return Bounds(viewW, viewH, w, h).ClampPoint(Centered(cx, cy, w, h))
}

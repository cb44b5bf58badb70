package motion

import "math"

// Point is a position in viewport pixels.
type Point struct {
	X, Y float64
}

// Rect is a closed interval on both axes.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Bounds returns the positions at which a w×h element stays fully inside
// a viewW×viewH viewport. If the element is larger than the viewport the
// maximum collapses onto the minimum.
func Bounds(viewW, viewH, w, h float64) Rect {
	return Rect{
		MinX: 0,
		MinY: 0,
		MaxX: math.Max(0, viewW-w),
		MaxY: math.Max(0, viewH-h),
	}
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// ClampPoint restricts p to r.
func (r Rect) ClampPoint(p Point) Point {
	return Point{
		X: Clamp(p.X, r.MinX, r.MaxX),
		Y: Clamp(p.Y, r.MinY, r.MaxY),
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Centered returns the top-left corner that centers a w×h element on (cx, cy).
func Centered(cx, cy, w, h float64) Point {
	return Point{X: cx - w/2, Y: cy - h/2}
}

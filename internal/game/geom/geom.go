// Package geom provides the axis-aligned rectangle math underlying the
// simulation's spatial model: overlap tests, containment, and minimal-axis
// penetration resolution.
package geom

// Vec2 is a point or displacement in world space.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectAround builds a rect centered on c with the given half-extents.
//
// Postcondition: the result's Center() equals c.
func RectAround(c Vec2, halfW, halfH float64) Rect {
	return Rect{X: c.X - halfW, Y: c.Y - halfH, Width: 2 * halfW, Height: 2 * halfH}
}

// Left returns the minimum x edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the maximum x edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the minimum y edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the maximum y edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the rect's midpoint.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Overlaps reports whether r and o share interior area. Rects that merely
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// PushOut displaces box so it no longer overlaps solid, along the axis with
// the smaller minimal penetration depth. The box ends flush against the
// nearest edge of solid. If box and solid do not overlap, box is returned
// unchanged.
//
// Postcondition: the result does not overlap solid beyond floating-point
// rounding.
func PushOut(box, solid Rect) Rect {
	if !box.Overlaps(solid) {
		return box
	}

	pushLeft := box.Right() - solid.Left()
	pushRight := solid.Right() - box.Left()
	pushUp := box.Bottom() - solid.Top()
	pushDown := solid.Bottom() - box.Top()

	minX := pushLeft
	if pushRight < minX {
		minX = pushRight
	}
	minY := pushUp
	if pushDown < minY {
		minY = pushDown
	}

	if minX <= minY {
		if pushLeft <= pushRight {
			box.X = solid.Left() - box.Width
		} else {
			box.X = solid.Right()
		}
		return box
	}
	if pushUp <= pushDown {
		box.Y = solid.Top() - box.Height
	} else {
		box.Y = solid.Bottom()
	}
	return box
}

// Clamp limits v to [lo, hi].
//
// Precondition: lo <= hi.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package world

import "github.com/jcoghill/wander/internal/game/geom"

// ResolveCollisions pushes box out of every obstacle and building it
// overlaps, one axis-minimal displacement per rectangle in placement order.
// A building whose door band the box touches does not push, leaving the
// overlap for entry detection.
//
// Postcondition: the returned box overlaps none of the rectangles it was
// pushed out of beyond floating-point epsilon.
func (w *World) ResolveCollisions(box geom.Rect) geom.Rect {
	for i := range w.obstacles {
		if box.Overlaps(w.obstacles[i].Box) {
			box = geom.PushOut(box, w.obstacles[i].Box)
		}
	}
	for i := range w.buildings {
		b := &w.buildings[i]
		if !box.Overlaps(b.Box) {
			continue
		}
		if box.Overlaps(b.Door()) {
			continue
		}
		box = geom.PushOut(box, b.Box)
	}
	return box
}

// DoorHit returns the building whose door band the box overlaps.
//
// Postcondition: ok is false when no door is touched.
func (w *World) DoorHit(box geom.Rect) (*Building, bool) {
	for i := range w.buildings {
		if box.Overlaps(w.buildings[i].Door()) {
			return &w.buildings[i], true
		}
	}
	return nil, false
}

// ClampToPlaySpace keeps box inside the playable area.
func (w *World) ClampToPlaySpace(box geom.Rect) geom.Rect {
	box.X = geom.Clamp(box.X, 0, w.Width-box.Width)
	box.Y = geom.Clamp(box.Y, 0, w.PlayHeight()-box.Height)
	return box
}

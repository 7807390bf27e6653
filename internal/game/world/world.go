package world

import (
	"go.uber.org/zap"

	"github.com/jcoghill/wander/internal/game/check"
	"github.com/jcoghill/wander/internal/game/geom"
)

// ZoneDef is the slice of the world descriptor the layout needs.
type ZoneDef struct {
	ID   string
	Name string
}

// World owns all world-space state for one session: the zone layout, the
// placed geometry, and any spawned pickups. NPC and player positions live
// with the actors; the world only answers spatial questions about them.
type World struct {
	// Width and Height are the outer dimensions in world units.
	Width  float64
	Height float64
	// UIBand is the strip reserved at the bottom, excluded from play space.
	UIBand float64

	zones     []Zone
	obstacles []Obstacle
	buildings []Building
	interiors map[string]*Interior
	pickups   []Pickup

	src    check.Source
	logger *zap.Logger
}

// New lays out a World of the given dimensions with one zone strip per
// descriptor entry.
//
// Precondition: width > 0, height > uiBand >= 0; src and logger non-nil.
// Postcondition: zone strips tile [0, width) exactly, in descriptor order; a
// world with no zone descriptors has an empty layout and still works.
func New(width, height, uiBand float64, defs []ZoneDef, src check.Source, logger *zap.Logger) *World {
	w := &World{
		Width:     width,
		Height:    height,
		UIBand:    uiBand,
		zones:     layoutZones(defs, width),
		interiors: make(map[string]*Interior),
		src:       src,
		logger:    logger,
	}
	logger.Info("world laid out",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Int("zones", len(w.zones)))
	return w
}

// layoutZones computes the zone strips for the given width. Each strip gets
// an equal share, the last absorbs the rounding remainder, and every strip
// starts exactly where the previous one ends.
//
// Postcondition: zones[i+1].X == zones[i].X + zones[i].Width for all i.
func layoutZones(defs []ZoneDef, width float64) []Zone {
	n := len(defs)
	zones := make([]Zone, n)
	left := 0.0
	for i, def := range defs {
		zoneWidth := width / float64(n)
		if i == n-1 {
			zoneWidth = width - left
		}
		zones[i] = Zone{
			ID:    def.ID,
			Name:  def.Name,
			X:     left,
			Width: zoneWidth,
		}
		left += zoneWidth
	}
	return zones
}

// PlayHeight returns the height of the playable area above the UI band.
func (w *World) PlayHeight() float64 {
	return w.Height - w.UIBand
}

// Zones returns a snapshot copy of the zone layout.
func (w *World) Zones() []Zone {
	out := make([]Zone, len(w.zones))
	copy(out, w.zones)
	return out
}

// ZoneCount returns the number of zones.
func (w *World) ZoneCount() int {
	return len(w.zones)
}

// Zone returns the zone at index i.
//
// Postcondition: ok is false when i is out of range.
func (w *World) Zone(i int) (Zone, bool) {
	if i < 0 || i >= len(w.zones) {
		return Zone{}, false
	}
	return w.zones[i], true
}

// ZoneAt returns the index of the zone containing the horizontal coordinate.
//
// Postcondition: ok is false when x falls outside every strip.
func (w *World) ZoneAt(x float64) (int, bool) {
	for i := range w.zones {
		if w.zones[i].Contains(x) {
			return i, true
		}
	}
	return 0, false
}

// ZoneBounds returns the wanderable area of zone i: the strip inset by
// Margin on every side, spanning the play-space height.
//
// Postcondition: ok is false when i is out of range.
func (w *World) ZoneBounds(i int) (geom.Rect, bool) {
	if i < 0 || i >= len(w.zones) {
		return geom.Rect{}, false
	}
	z := w.zones[i]
	return geom.Rect{
		X:      z.X + Margin,
		Y:      Margin,
		Width:  z.Width - 2*Margin,
		Height: w.PlayHeight() - 2*Margin,
	}, true
}

// Resize rescales the world to new outer dimensions: zones are re-laid over
// the new width, and every placed rectangle and pickup moves
// proportionally. Interiors keep their own coordinate space and are
// unaffected.
//
// Postcondition: zone tiling holds for the new width; relative positions of
// placed geometry are preserved.
func (w *World) Resize(width, height float64) {
	if width <= 0 || height <= w.UIBand {
		return
	}
	sx := width / w.Width
	sy := (height - w.UIBand) / w.PlayHeight()

	left := 0.0
	for i := range w.zones {
		zoneWidth := width / float64(len(w.zones))
		if i == len(w.zones)-1 {
			zoneWidth = width - left
		}
		w.zones[i].X = left
		w.zones[i].Width = zoneWidth
		left += zoneWidth
	}
	for i := range w.obstacles {
		w.obstacles[i].Box = scaleRect(w.obstacles[i].Box, sx, sy)
	}
	for i := range w.buildings {
		w.buildings[i].Box = scaleRect(w.buildings[i].Box, sx, sy)
	}
	for i := range w.pickups {
		w.pickups[i].Pos.X *= sx
		w.pickups[i].Pos.Y *= sy
	}

	w.logger.Info("world resized",
		zap.Float64("width", width),
		zap.Float64("height", height))
	w.Width = width
	w.Height = height
}

// scaleRect scales a rectangle's position and extent.
func scaleRect(r geom.Rect, sx, sy float64) geom.Rect {
	return geom.Rect{X: r.X * sx, Y: r.Y * sy, Width: r.Width * sx, Height: r.Height * sy}
}

// randomPointIn draws a uniform point inside r.
func (w *World) randomPointIn(r geom.Rect) geom.Vec2 {
	return geom.Vec2{
		X: r.X + w.src.Float64()*r.Width,
		Y: r.Y + w.src.Float64()*r.Height,
	}
}

package world

import (
	"go.uber.org/zap"

	"github.com/jcoghill/wander/internal/game/geom"
)

// Random obstacle extents, in world units.
const (
	obstacleMinW = 24
	obstacleMaxW = 72
	obstacleMinH = 16
	obstacleMaxH = 48

	// doorClearance keeps a building's door band reachable from below.
	doorClearance = 24
)

// ScatterObstacles places perZone random obstacles in every zone. Zones too
// small to hold one are skipped.
func (w *World) ScatterObstacles(perZone int) {
	for zi := range w.zones {
		for n := 0; n < perZone; n++ {
			bounds, _ := w.ZoneBounds(zi)
			width := obstacleMinW + w.src.Float64()*(obstacleMaxW-obstacleMinW)
			height := obstacleMinH + w.src.Float64()*(obstacleMaxH-obstacleMinH)
			if bounds.Width <= width || bounds.Height <= height {
				continue
			}
			pos := w.randomPointIn(geom.Rect{
				X:      bounds.X,
				Y:      bounds.Y,
				Width:  bounds.Width - width,
				Height: bounds.Height - height,
			})
			w.AddObstacle(zi, geom.Rect{X: pos.X, Y: pos.Y, Width: width, Height: height})
		}
	}
}

// AddObstacle places a fixed obstacle.
func (w *World) AddObstacle(zoneIndex int, box geom.Rect) {
	w.obstacles = append(w.obstacles, Obstacle{ZoneIndex: zoneIndex, Box: box})
}

// AddBuilding places a building owned by npcID at a random spot in the zone
// and creates its interior. Returns false when the zone does not exist or
// cannot fit a building, in which case the NPC simply has no home.
//
// Postcondition: on success, Interior(npcID) and BuildingFor(npcID) resolve.
func (w *World) AddBuilding(npcID string, zoneIndex int) (*Building, bool) {
	bounds, ok := w.ZoneBounds(zoneIndex)
	if !ok {
		w.logger.Warn("building zone does not exist",
			zap.String("npc", npcID),
			zap.Int("zone", zoneIndex))
		return nil, false
	}
	if bounds.Width <= BuildingWidth || bounds.Height <= BuildingHeight+doorClearance {
		w.logger.Warn("zone too small for a building",
			zap.String("npc", npcID),
			zap.Int("zone", zoneIndex))
		return nil, false
	}

	pos := w.randomPointIn(geom.Rect{
		X:      bounds.X,
		Y:      bounds.Y,
		Width:  bounds.Width - BuildingWidth,
		Height: bounds.Height - BuildingHeight - doorClearance,
	})
	w.buildings = append(w.buildings, Building{
		NPCID:     npcID,
		ZoneIndex: zoneIndex,
		Box:       geom.Rect{X: pos.X, Y: pos.Y, Width: BuildingWidth, Height: BuildingHeight},
	})
	w.interiors[npcID] = newInterior(npcID)

	b := &w.buildings[len(w.buildings)-1]
	w.logger.Debug("building placed",
		zap.String("npc", npcID),
		zap.Int("zone", zoneIndex),
		zap.Float64("x", b.Box.X),
		zap.Float64("y", b.Box.Y))
	return b, true
}

// Obstacles returns a snapshot copy of all placed obstacles.
func (w *World) Obstacles() []Obstacle {
	out := make([]Obstacle, len(w.obstacles))
	copy(out, w.obstacles)
	return out
}

// Buildings returns a snapshot copy of all placed buildings.
func (w *World) Buildings() []Building {
	out := make([]Building, len(w.buildings))
	copy(out, w.buildings)
	return out
}

// BuildingFor returns the building owned by npcID.
//
// Postcondition: ok is false when the NPC has no building.
func (w *World) BuildingFor(npcID string) (*Building, bool) {
	for i := range w.buildings {
		if w.buildings[i].NPCID == npcID {
			return &w.buildings[i], true
		}
	}
	return nil, false
}

// Interior returns the interior linked to npcID.
//
// Postcondition: ok is false when the NPC has no building.
func (w *World) Interior(npcID string) (*Interior, bool) {
	in, ok := w.interiors[npcID]
	return in, ok
}

// BuildingAt returns the building whose box contains the point.
//
// Postcondition: ok is false when no building is hit.
func (w *World) BuildingAt(p geom.Vec2) (*Building, bool) {
	for i := range w.buildings {
		if w.buildings[i].Box.Contains(p) {
			return &w.buildings[i], true
		}
	}
	return nil, false
}

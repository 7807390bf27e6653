package world

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jcoghill/wander/internal/game/geom"
)

// SpawnPickup drops exactly one pickup for the item id at a uniformly random
// position inside a uniformly chosen zone. With no zones the pickup lands
// somewhere in the open play space instead.
func (w *World) SpawnPickup(itemID string) {
	var area geom.Rect
	if len(w.zones) > 0 {
		area, _ = w.ZoneBounds(w.src.Intn(len(w.zones)))
	} else {
		area = geom.Rect{
			X:      Margin,
			Y:      Margin,
			Width:  w.Width - 2*Margin,
			Height: w.PlayHeight() - 2*Margin,
		}
	}

	p := Pickup{
		ID:     uuid.New().String(),
		ItemID: itemID,
		Pos:    w.randomPointIn(area),
	}
	w.pickups = append(w.pickups, p)
	w.logger.Debug("pickup spawned",
		zap.String("item", itemID),
		zap.Float64("x", p.Pos.X),
		zap.Float64("y", p.Pos.Y))
}

// HasPickup reports whether a pickup for the item id lies in the world.
func (w *World) HasPickup(itemID string) bool {
	for i := range w.pickups {
		if w.pickups[i].ItemID == itemID {
			return true
		}
	}
	return false
}

// Pickups returns a snapshot copy of all spawned pickups.
func (w *World) Pickups() []Pickup {
	out := make([]Pickup, len(w.pickups))
	copy(out, w.pickups)
	return out
}

// CollectAt removes and returns every pickup whose collect box overlaps box.
//
// Postcondition: returned pickups no longer exist in the world.
func (w *World) CollectAt(box geom.Rect) []Pickup {
	var collected []Pickup
	kept := w.pickups[:0]
	for _, p := range w.pickups {
		if box.Overlaps(p.Box()) {
			collected = append(collected, p)
			continue
		}
		kept = append(kept, p)
	}
	w.pickups = kept
	return collected
}

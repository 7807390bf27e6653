// Package world provides the spatial model: zones, obstacles, buildings,
// interiors, and spawned pickups.
package world

import (
	"fmt"

	"github.com/jcoghill/wander/internal/game/geom"
)

// Spatial constants, in world units.
const (
	// Margin keeps wandering NPCs and spawned pickups off zone borders.
	Margin = 16

	// DoorWidth and DoorHeight size the entry band straddling a building's
	// bottom edge. Standing in the band is how the player enters.
	DoorWidth  = 24
	DoorHeight = 8

	// BuildingWidth and BuildingHeight size every placed building.
	BuildingWidth  = 64
	BuildingHeight = 56

	// InteriorWidth and InteriorHeight size every interior space.
	InteriorWidth  = 320
	InteriorHeight = 240

	// PickupRadius is the half-extent of a pickup's collect box.
	PickupRadius = 6
)

// Zone is a vertical slice of the world: full play-space height, a strip of
// the width. Zones are laid out once at load and only move on resize.
type Zone struct {
	ID    string
	Name  string
	X     float64
	Width float64
}

// Contains reports whether the horizontal coordinate falls inside the zone.
func (z *Zone) Contains(x float64) bool {
	return x >= z.X && x < z.X+z.Width
}

// Validate checks zone invariants.
//
// Postcondition: returns nil iff ID is non-empty and Width is positive.
func (z *Zone) Validate() error {
	if z.ID == "" {
		return fmt.Errorf("zone ID must not be empty")
	}
	if z.Width <= 0 {
		return fmt.Errorf("zone %q: width must be positive, got %v", z.ID, z.Width)
	}
	return nil
}

// Obstacle is a static impassable rectangle placed at world init.
type Obstacle struct {
	ZoneIndex int
	Box       geom.Rect
}

// Building is a world-space structure owned by an NPC. Its door band is the
// only way in.
type Building struct {
	NPCID     string
	ZoneIndex int
	Box       geom.Rect
}

// Door returns the entry band: a horizontal band centered on the building's
// bottom edge.
func (b *Building) Door() geom.Rect {
	cx := b.Box.X + b.Box.Width/2
	return geom.Rect{
		X:      cx - DoorWidth/2,
		Y:      b.Box.Bottom() - DoorHeight/2,
		Width:  DoorWidth,
		Height: DoorHeight,
	}
}

// Interior is the bounded space inside a building, with its own coordinate
// origin. It holds the owning NPC and a door back out.
type Interior struct {
	NPCID  string
	Bounds geom.Rect
	// Spawn is where the player appears on entry, just inside the door.
	Spawn geom.Vec2
	// NPCPos is where the owning NPC stands.
	NPCPos geom.Vec2
}

// newInterior builds the interior for a building owner. All interiors share
// one floor plan.
func newInterior(npcID string) *Interior {
	return &Interior{
		NPCID:  npcID,
		Bounds: geom.Rect{X: 0, Y: 0, Width: InteriorWidth, Height: InteriorHeight},
		Spawn:  geom.Vec2{X: InteriorWidth / 2, Y: InteriorHeight - 32},
		NPCPos: geom.Vec2{X: InteriorWidth / 2, Y: 64},
	}
}

// Door returns the exit band centered on the interior's bottom edge.
func (i *Interior) Door() geom.Rect {
	cx := i.Bounds.X + i.Bounds.Width/2
	return geom.Rect{
		X:      cx - DoorWidth/2,
		Y:      i.Bounds.Bottom() - DoorHeight/2,
		Width:  DoorWidth,
		Height: DoorHeight,
	}
}

// Pickup is a spawned, collectible instance of a catalog item. Destroyed on
// pickup.
type Pickup struct {
	// ID is the runtime instance identifier.
	ID string
	// ItemID names the catalog item this pickup yields.
	ItemID string
	Pos    geom.Vec2
}

// Box returns the collect box around the pickup's position.
func (p *Pickup) Box() geom.Rect {
	return geom.RectAround(p.Pos, PickupRadius, PickupRadius)
}

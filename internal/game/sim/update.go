package sim

import (
	"go.uber.org/zap"

	"github.com/jcoghill/wander/internal/game/geom"
)

// MaxStep clamps one tick's elapsed time, in seconds, so a frame hitch
// cannot produce a huge simulation step.
const MaxStep = 0.1

// Update advances the session by dt seconds: timers first, then player
// movement (roam only), NPC wander, and pickup collection. Overlays
// freeze the player but the world keeps living.
func (s *Simulation) Update(dt float64) {
	if dt <= 0 {
		return
	}
	if dt > MaxStep {
		dt = MaxStep
	}

	s.feed.Tick(dt)
	s.bar.Tick(dt)
	for _, e := range s.player.Effects.Tick(dt) {
		s.feed.Postf("%s wears off.", e.Name)
	}

	if s.mode == ModeRoam {
		s.movePlayer(dt)
	}
	s.moveNPCs(dt)
	if s.interiorID == "" {
		s.collectPickups()
	}
}

func (s *Simulation) movePlayer(dt float64) {
	dx, dy := s.input.dx, s.input.dy
	if dx == 0 && dy == 0 {
		return
	}
	speed := s.player.Speed()
	step := geom.Vec2{X: dx * speed * dt, Y: dy * speed * dt}

	if s.interiorID != "" {
		s.moveInside(step)
		return
	}

	box := s.player.Box()
	box.X += step.X
	box.Y += step.Y
	box = s.world.ResolveCollisions(box)
	box = s.world.ClampToPlaySpace(box)
	s.player.MoveTo(box)

	if b, hit := s.world.DoorHit(box); hit {
		if !s.suppressDoor {
			s.enterInterior(b.NPCID)
		}
	} else {
		s.suppressDoor = false
	}
}

func (s *Simulation) moveInside(step geom.Vec2) {
	in, ok := s.world.Interior(s.interiorID)
	if !ok {
		s.exitInterior()
		return
	}
	box := s.player.Box()
	box.X += step.X
	box.Y += step.Y
	box.X = geom.Clamp(box.X, in.Bounds.X, in.Bounds.Right()-box.Width)
	box.Y = geom.Clamp(box.Y, in.Bounds.Y, in.Bounds.Bottom()-box.Height)
	s.player.MoveTo(box)

	if box.Overlaps(in.Door()) {
		s.exitInterior()
	}
}

func (s *Simulation) moveNPCs(dt float64) {
	for _, n := range s.npcs {
		if n.Indoors {
			continue
		}
		if bounds, ok := s.world.ZoneBounds(n.HomeZone); ok {
			n.Wander(dt, bounds)
		}
	}
}

func (s *Simulation) collectPickups() {
	for _, p := range s.world.CollectAt(s.player.Box()) {
		name := s.items.NameFor(p.ItemID)
		if s.state.Add(p.ItemID) {
			s.feed.Postf("Picked up %s.", name)
		} else {
			s.feed.Postf("You already carry %s.", name)
		}
	}
}

// enterInterior saves the player's world position and teleports to the
// interior's spawn anchor.
//
// Postcondition: the player occupies exactly one location; world
// position is recoverable verbatim on exit.
func (s *Simulation) enterInterior(npcID string) {
	in, ok := s.world.Interior(npcID)
	if !ok {
		return
	}
	s.savedPos = s.player.Pos
	s.interiorID = npcID
	s.player.Pos = in.Spawn
	s.logger.Debug("entered interior", zap.String("npc", npcID))
	s.feed.Post("You step inside.")
}

// exitInterior restores the saved world position verbatim. The saved
// spot usually overlaps the door band, so door entry stays suppressed
// until the player walks clear of it.
func (s *Simulation) exitInterior() {
	s.interiorID = ""
	s.player.Pos = s.savedPos
	s.suppressDoor = true
	s.logger.Debug("left interior")
	s.feed.Post("You step back outside.")
}

package actor

import (
	"github.com/jcoghill/wander/internal/game/check"
	"github.com/jcoghill/wander/internal/game/geom"
)

const (
	// NPCHalfWidth and NPCHalfHeight are the half extents of an NPC's
	// interaction box.
	NPCHalfWidth  = 8.0
	NPCHalfHeight = 8.0

	// DifficultyMin and DifficultyMax bound the check difficulty an NPC
	// may carry. Values outside the band are clamped at assignment.
	DifficultyMin = 0.30
	DifficultyMax = 0.80

	// wanderSpeedMin and wanderSpeedMax bound each velocity component of
	// a wandering NPC, in world units per second.
	wanderSpeedMin = 20.0
	wanderSpeedMax = 50.0
)

// NPC is a computer-driven actor confined to a home zone. Outdoor NPCs
// drift on a fixed velocity and bounce off their zone borders; indoor
// NPCs stand at a fixed post.
type NPC struct {
	// ID is the stable identifier used by dialogues and quests.
	ID string
	// Kind is the content-defined role, for example "merchant".
	Kind string
	// HomeZone indexes the zone the NPC belongs to.
	HomeZone int
	// Pos is the NPC's center in world coordinates. For indoor NPCs the
	// coordinates are interior-local.
	Pos geom.Vec2
	// Vel is the wander velocity. Zero for indoor NPCs.
	Vel geom.Vec2
	// Indoors marks NPCs posted inside a building rather than roaming
	// the zone.
	Indoors bool
	// Skill and Difficulty parameterize the check this NPC imposes on a
	// quest delivery.
	Skill      string
	Difficulty float64
}

// NewNPC places a roaming NPC at pos with a wander velocity drawn from
// src and a randomly rolled check profile.
//
// Postcondition: both velocity components have magnitude in
// [wanderSpeedMin, wanderSpeedMax], and Difficulty lies in
// [DifficultyMin, DifficultyMax].
func NewNPC(id, kind string, homeZone int, pos geom.Vec2, src check.Source) *NPC {
	skill, difficulty := RollCheckProfile(src)
	return &NPC{
		ID:         id,
		Kind:       kind,
		HomeZone:   homeZone,
		Pos:        pos,
		Vel:        geom.Vec2{X: wanderComponent(src), Y: wanderComponent(src)},
		Skill:      skill,
		Difficulty: difficulty,
	}
}

// NewIndoorNPC posts an NPC at a fixed interior position. It does not
// wander, but still carries a check profile for deliveries.
func NewIndoorNPC(id, kind string, homeZone int, pos geom.Vec2, src check.Source) *NPC {
	skill, difficulty := RollCheckProfile(src)
	return &NPC{
		ID:         id,
		Kind:       kind,
		HomeZone:   homeZone,
		Pos:        pos,
		Indoors:    true,
		Skill:      skill,
		Difficulty: difficulty,
	}
}

// RollCheckProfile draws the skill name and difficulty an NPC uses to
// gate deliveries. The skill comes from the default set; the difficulty
// is uniform over the allowed band.
func RollCheckProfile(src check.Source) (skill string, difficulty float64) {
	skill = DefaultSkillNames[src.Intn(len(DefaultSkillNames))]
	difficulty = DifficultyMin + src.Float64()*(DifficultyMax-DifficultyMin)
	return skill, difficulty
}

// ClampDifficulty forces v into the allowed difficulty band.
func ClampDifficulty(v float64) float64 {
	return geom.Clamp(v, DifficultyMin, DifficultyMax)
}

func wanderComponent(src check.Source) float64 {
	v := wanderSpeedMin + src.Float64()*(wanderSpeedMax-wanderSpeedMin)
	if src.Intn(2) == 1 {
		v = -v
	}
	return v
}

// Wander advances the NPC along its velocity and keeps it inside
// bounds. An axis that hits a border is clamped to it and has its
// velocity reflected, so the NPC drifts back the way it came.
//
// Postcondition: Pos lies within bounds.
func (n *NPC) Wander(dt float64, bounds geom.Rect) {
	if n.Indoors {
		return
	}
	n.Pos.X += n.Vel.X * dt
	n.Pos.Y += n.Vel.Y * dt
	if n.Pos.X < bounds.Left() {
		n.Pos.X = bounds.Left()
		n.Vel.X = -n.Vel.X
	} else if n.Pos.X > bounds.Right() {
		n.Pos.X = bounds.Right()
		n.Vel.X = -n.Vel.X
	}
	if n.Pos.Y < bounds.Top() {
		n.Pos.Y = bounds.Top()
		n.Vel.Y = -n.Vel.Y
	} else if n.Pos.Y > bounds.Bottom() {
		n.Pos.Y = bounds.Bottom()
		n.Vel.Y = -n.Vel.Y
	}
}

// Box returns the NPC's interaction box centered on Pos.
func (n *NPC) Box() geom.Rect {
	return geom.RectAround(n.Pos, NPCHalfWidth, NPCHalfHeight)
}

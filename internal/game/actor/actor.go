// Package actor holds the runtime state of the player and the NPCs that
// populate the world. Actors own their position, vitals, and skills;
// movement intent and collision resolution live with the simulation.
package actor

import (
	"github.com/jcoghill/wander/internal/game/effect"
	"github.com/jcoghill/wander/internal/game/geom"
)

const (
	// PlayerMaxHP is the ceiling for player hit points.
	PlayerMaxHP = 100
	// HealAmount is the flat recovery granted by a healing consumable.
	HealAmount = 25
	// BaseSpeed is the player's unmodified movement speed in world units
	// per second, before effect multipliers.
	BaseSpeed = 140.0

	// PlayerHalfWidth and PlayerHalfHeight are the half extents of the
	// player's collision box.
	PlayerHalfWidth  = 8.0
	PlayerHalfHeight = 8.0

	// DefaultSkillLevel is the starting level for every default skill.
	DefaultSkillLevel = 0.5
)

// DefaultSkillNames lists the skills every new player starts with.
var DefaultSkillNames = []string{"charisma", "strength", "agility", "lore"}

// Player is the single user-driven actor.
type Player struct {
	// Pos is the center of the player in world coordinates.
	Pos geom.Vec2
	// Skills maps skill name to base level. Levels are additive inputs
	// to checks; an absent skill counts as zero.
	Skills map[string]float64
	// HP and MaxHP track vitals. HP stays within [0, MaxHP].
	HP    int
	MaxHP int
	// Effects holds the timed modifiers currently applied to the player.
	Effects *effect.ActiveSet
}

// NewPlayer creates a player at pos with full vitals and the default
// skill set.
//
// Postcondition: every name in DefaultSkillNames is present at
// DefaultSkillLevel, and HP == MaxHP == PlayerMaxHP.
func NewPlayer(pos geom.Vec2) *Player {
	skills := make(map[string]float64, len(DefaultSkillNames))
	for _, name := range DefaultSkillNames {
		skills[name] = DefaultSkillLevel
	}
	return &Player{
		Pos:     pos,
		Skills:  skills,
		HP:      PlayerMaxHP,
		MaxHP:   PlayerMaxHP,
		Effects: effect.NewActiveSet(),
	}
}

// Skill returns the player's base level in the named skill. Unknown
// skills contribute zero rather than failing the lookup.
func (p *Player) Skill(name string) float64 {
	return p.Skills[name]
}

// SkillBonus returns the additive modifier that active effects grant to
// the named skill.
func (p *Player) SkillBonus(name string) float64 {
	return p.Effects.SumType(name)
}

// Speed returns the derived movement speed, the base speed scaled by the
// active speed multiplier.
func (p *Player) Speed() float64 {
	return BaseSpeed * p.Effects.SpeedMultiplier()
}

// Damage reduces HP by amount, never below zero. The player does not
// die; an empty bar is the floor.
func (p *Player) Damage(amount int) {
	if amount < 0 {
		return
	}
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
}

// Heal restores HP by amount, never above MaxHP.
func (p *Player) Heal(amount int) {
	if amount < 0 {
		return
	}
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// Box returns the player's collision box centered on Pos.
func (p *Player) Box() geom.Rect {
	return geom.RectAround(p.Pos, PlayerHalfWidth, PlayerHalfHeight)
}

// MoveTo recenters the player on box, typically after collision
// resolution has adjusted it.
func (p *Player) MoveTo(box geom.Rect) {
	p.Pos = box.Center()
}

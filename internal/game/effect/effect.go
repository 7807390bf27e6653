// Package effect tracks timed status effects on the player and computes the
// derived-stat modifiers they contribute.
package effect

// TypeSpeed is the effect type that scales movement speed. All other types
// are skill names and contribute to skill-check bonuses.
const TypeSpeed = "speed"

// Def is an immutable status-effect catalog entry.
type Def struct {
	// ID uniquely identifies the catalog entry.
	ID string
	// Name is the display name shown in effect messages.
	Name string
	// Type is the stat the effect modifies: TypeSpeed or a skill name.
	Type string
}

// Active is one running status effect. Effects of the same Type stack
// additively; the collection is unordered.
type Active struct {
	// Name is the display name of the effect.
	Name string
	// Type selects the modified stat.
	Type string
	// Value is the additive contribution while the effect runs.
	Value float64
	// Time is the remaining duration in seconds.
	Time float64
}

// ActiveSet tracks all effects currently applied to one actor.
// It is not safe for concurrent use; the caller must serialise access.
type ActiveSet struct {
	effects []Active
}

// NewActiveSet creates an empty ActiveSet.
func NewActiveSet() *ActiveSet {
	return &ActiveSet{}
}

// Apply adds an effect to the set. Re-applying an effect of the same type
// does not merge or extend: both instances run and stack additively.
//
// Postcondition: Len() increases by one.
func (s *ActiveSet) Apply(e Active) {
	s.effects = append(s.effects, e)
}

// Tick decrements every effect's remaining time by dt seconds and removes
// those whose time reaches zero or below.
//
// Precondition: dt >= 0.
// Postcondition: every returned effect is no longer in the set.
func (s *ActiveSet) Tick(dt float64) []Active {
	var expired []Active
	kept := s.effects[:0]
	for _, e := range s.effects {
		e.Time -= dt
		if e.Time <= 0 {
			expired = append(expired, e)
			continue
		}
		kept = append(kept, e)
	}
	s.effects = kept
	return expired
}

// SumType returns the additive total of Value over all active effects whose
// Type equals effectType, or 0 when none match.
func (s *ActiveSet) SumType(effectType string) float64 {
	var total float64
	for _, e := range s.effects {
		if e.Type == effectType {
			total += e.Value
		}
	}
	return total
}

// SpeedMultiplier returns the factor applied to base movement speed:
// 1 + the additive total of all speed effects.
func (s *ActiveSet) SpeedMultiplier() float64 {
	return 1 + s.SumType(TypeSpeed)
}

// All returns a copy of the active effects in unspecified order.
func (s *ActiveSet) All() []Active {
	out := make([]Active, len(s.effects))
	copy(out, s.effects)
	return out
}

// Len returns the number of active effects.
func (s *ActiveSet) Len() int {
	return len(s.effects)
}

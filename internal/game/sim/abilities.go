package sim

import "github.com/jcoghill/wander/internal/content"

// AbilityCooldown is the per-ability recovery time in seconds. Every
// ability carries its own independent timer.
const AbilityCooldown = 5.0

// AbilityBar binds abilities to hotbar slots in catalog order and
// tracks a cooldown per ability id.
type AbilityBar struct {
	slots     []content.Ability
	cooldowns map[string]float64
}

// NewAbilityBar builds a bar over the catalog's abilities.
func NewAbilityBar(abilities []content.Ability) *AbilityBar {
	slots := make([]content.Ability, len(abilities))
	copy(slots, abilities)
	return &AbilityBar{
		slots:     slots,
		cooldowns: make(map[string]float64, len(slots)),
	}
}

// Len returns the number of bound slots.
func (b *AbilityBar) Len() int {
	return len(b.slots)
}

// Slot returns the ability bound at index i.
func (b *AbilityBar) Slot(i int) (content.Ability, bool) {
	if i < 0 || i >= len(b.slots) {
		return content.Ability{}, false
	}
	return b.slots[i], true
}

// Remaining returns the cooldown left on slot i, zero when ready or
// when the slot is unbound.
func (b *AbilityBar) Remaining(i int) float64 {
	ab, ok := b.Slot(i)
	if !ok {
		return 0
	}
	return b.cooldowns[ab.ID]
}

// Ready reports whether slot i exists and is off cooldown.
func (b *AbilityBar) Ready(i int) bool {
	ab, ok := b.Slot(i)
	return ok && b.cooldowns[ab.ID] <= 0
}

// Use fires the ability at slot i, starting its cooldown. The bound
// ability is returned either way so callers can name it; fired is
// false when the slot is unbound or still cooling down.
//
// Postcondition: fired implies Remaining(i) == AbilityCooldown.
func (b *AbilityBar) Use(i int) (ab content.Ability, fired bool) {
	ab, ok := b.Slot(i)
	if !ok || b.cooldowns[ab.ID] > 0 {
		return ab, false
	}
	b.cooldowns[ab.ID] = AbilityCooldown
	return ab, true
}

// Tick advances every running cooldown by dt.
func (b *AbilityBar) Tick(dt float64) {
	for id, left := range b.cooldowns {
		left -= dt
		if left <= 0 {
			delete(b.cooldowns, id)
			continue
		}
		b.cooldowns[id] = left
	}
}

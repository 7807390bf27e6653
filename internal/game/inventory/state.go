package inventory

import (
	"errors"
	"fmt"
)

// ErrInsufficientGold marks a spend that exceeds the carried gold.
// Callers match it with errors.Is to turn it into a player-facing
// message instead of treating it as a fault.
var ErrInsufficientGold = errors.New("not enough gold")

// EquipResult reports what a ToggleEquip call did.
type EquipResult int

const (
	// Equipped means the item now occupies its slot.
	Equipped EquipResult = iota
	// Unequipped means the item was cleared from its slot.
	Unequipped
	// NotEquippable means the item's category has no equip slot.
	NotEquippable
)

// State tracks the items, gold, and equipment a single player carries.
// Items are stored as an ordered list of catalog ids; pickups and dialogue
// grants never add a second copy, but shop purchases may.
type State struct {
	items []string

	// Gold is the player's spendable currency.
	Gold int
	// Weapon is the equipped weapon item id, or empty when the slot is free.
	Weapon string
	// Armor is the equipped armor item id, or empty when the slot is free.
	Armor string
}

// NewState returns a State with no items and the given starting gold.
func NewState(gold int) *State {
	return &State{Gold: gold}
}

// Holds reports whether at least one copy of the item id is carried.
func (s *State) Holds(id string) bool {
	for _, held := range s.items {
		if held == id {
			return true
		}
	}
	return false
}

// Count returns how many copies of the item id are carried.
func (s *State) Count(id string) int {
	n := 0
	for _, held := range s.items {
		if held == id {
			n++
		}
	}
	return n
}

// Add carries the item unless a copy is already held.
//
// Postcondition: Holds(id) is true; returns true iff the list grew.
func (s *State) Add(id string) bool {
	if s.Holds(id) {
		return false
	}
	s.items = append(s.items, id)
	return true
}

// Append carries the item unconditionally, allowing duplicates.
//
// Postcondition: Count(id) increased by one.
func (s *State) Append(id string) {
	s.items = append(s.items, id)
}

// Remove drops the first carried copy of the item id.
//
// Postcondition: returns true iff a copy was removed; equipment slots never
// reference an id that is no longer held.
func (s *State) Remove(id string) bool {
	for i, held := range s.items {
		if held == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			if s.Weapon == id && !s.Holds(id) {
				s.Weapon = ""
			}
			if s.Armor == id && !s.Holds(id) {
				s.Armor = ""
			}
			return true
		}
	}
	return false
}

// Items returns a snapshot copy of the carried item ids in carry order.
//
// Postcondition: mutations of the returned slice do not affect the state.
func (s *State) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// IsEquipped reports whether the item id occupies either equip slot.
func (s *State) IsEquipped(id string) bool {
	return id != "" && (s.Weapon == id || s.Armor == id)
}

// ToggleEquip equips or unequips the held item with the given id. Re-clicking
// the equipped item clears its slot; equipping over an occupied slot replaces
// the prior item, which stays in the inventory as an unequipped entry.
//
// Precondition: the item must be held and registered in reg.
// Postcondition: on error, no slot changed.
func (s *State) ToggleEquip(id string, reg *Registry) (EquipResult, error) {
	if !s.Holds(id) {
		return NotEquippable, fmt.Errorf("inventory: cannot equip %q: not held", id)
	}
	def, ok := reg.Item(id)
	if !ok {
		return NotEquippable, fmt.Errorf("inventory: cannot equip %q: unknown item", id)
	}
	switch def.Category {
	case CategoryWeapon:
		if s.Weapon == id {
			s.Weapon = ""
			return Unequipped, nil
		}
		s.Weapon = id
		return Equipped, nil
	case CategoryArmor:
		if s.Armor == id {
			s.Armor = ""
			return Unequipped, nil
		}
		s.Armor = id
		return Equipped, nil
	default:
		return NotEquippable, nil
	}
}

// SpendGold debits amount from the carried gold.
//
// Precondition: amount >= 0.
// Postcondition: on error, Gold is unchanged.
func (s *State) SpendGold(amount int) error {
	if amount > s.Gold {
		return fmt.Errorf("inventory: %w: have %d, need %d", ErrInsufficientGold, s.Gold, amount)
	}
	s.Gold -= amount
	return nil
}

// AddGold credits amount to the carried gold.
//
// Precondition: amount >= 0.
func (s *State) AddGold(amount int) {
	s.Gold += amount
}

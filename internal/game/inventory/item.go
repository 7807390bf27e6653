// Package inventory provides the item catalog, the player's carried state,
// and the shop economy.
package inventory

import (
	"errors"
	"fmt"
)

// Category constants for ItemDef.Category.
const (
	CategoryWeapon     = "weapon"
	CategoryArmor      = "armor"
	CategoryConsumable = "consumable"
	CategoryQuest      = "quest"
)

// knownCategories is the set of categories with dedicated behavior. Items
// carrying any other category are still carried and sold, but cannot be
// equipped or consumed.
var knownCategories = map[string]bool{
	CategoryWeapon:     true,
	CategoryArmor:      true,
	CategoryConsumable: true,
	CategoryQuest:      true,
}

// ItemDef defines the static properties of a catalog item.
type ItemDef struct {
	ID       string
	Name     string
	Category string
}

// Validate checks that the ItemDef satisfies its invariants. Unrecognized
// categories pass validation; generated catalogs drift, and the shop prices
// them like consumables.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff ID and Name are non-empty.
func (d *ItemDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %v", errs)
	}
	return nil
}

// Equippable reports whether items of this definition occupy an equip slot.
//
// Postcondition: true iff Category is weapon or armor.
func (d *ItemDef) Equippable() bool {
	return d.Category == CategoryWeapon || d.Category == CategoryArmor
}

// KnownCategory reports whether the category has dedicated behavior.
func KnownCategory(category string) bool {
	return knownCategories[category]
}

package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcoghill/wander/internal/game/inventory"
)

// newTestRegistry builds a registry with a representative catalog spread
// across every category plus one the catalog invented.
func newTestRegistry(t *testing.T) *inventory.Registry {
	t.Helper()
	reg := inventory.NewRegistry()
	defs := []*inventory.ItemDef{
		{ID: "sword_iron", Name: "Iron Sword", Category: inventory.CategoryWeapon},
		{ID: "dagger_bent", Name: "Bent Dagger", Category: inventory.CategoryWeapon},
		{ID: "coat_leather", Name: "Leather Coat", Category: inventory.CategoryArmor},
		{ID: "potion_minor", Name: "Minor Potion", Category: inventory.CategoryConsumable},
		{ID: "charm_fox", Name: "Fox Charm", Category: inventory.CategoryConsumable},
		{ID: "ledger_page", Name: "Torn Ledger Page", Category: inventory.CategoryQuest},
		{ID: "gizmo", Name: "Odd Gizmo", Category: "trinket"},
	}
	for _, d := range defs {
		require.NoError(t, reg.RegisterItem(d))
	}
	return reg
}

// TestRegistry_RegisterAndLookup verifies the postcondition:
// Item(d.ID) returns the registered definition.
func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := newTestRegistry(t)
	d, ok := reg.Item("sword_iron")
	require.True(t, ok)
	assert.Equal(t, "Iron Sword", d.Name)
	assert.Equal(t, 7, reg.Len())
}

// TestRegistry_RegisterDuplicateFails verifies double registration errors.
func TestRegistry_RegisterDuplicateFails(t *testing.T) {
	reg := newTestRegistry(t)
	err := reg.RegisterItem(&inventory.ItemDef{ID: "sword_iron", Name: "Second Sword", Category: inventory.CategoryWeapon})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

// TestRegistry_LookupMissing verifies ok is false for unregistered ids.
func TestRegistry_LookupMissing(t *testing.T) {
	reg := newTestRegistry(t)
	_, ok := reg.Item("no_such_item")
	assert.False(t, ok)
}

// TestRegistry_NameFor verifies the display-name fallback for unknown ids.
func TestRegistry_NameFor(t *testing.T) {
	reg := newTestRegistry(t)
	assert.Equal(t, "Iron Sword", reg.NameFor("sword_iron"))
	assert.Equal(t, "no_such_item", reg.NameFor("no_such_item"))
}

// TestRegistry_AllSortedByID verifies the ordering postcondition that makes
// stock sampling reproducible.
func TestRegistry_AllSortedByID(t *testing.T) {
	reg := newTestRegistry(t)
	all := reg.All()
	require.Len(t, all, 7)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID, "All() must be sorted by ID")
	}
}

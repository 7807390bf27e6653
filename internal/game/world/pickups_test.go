package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jcoghill/wander/internal/game/geom"
	"github.com/jcoghill/wander/internal/game/world"
)

// TestSpawnPickup verifies placement inside the chosen zone and the item
// index.
func TestSpawnPickup(t *testing.T) {
	src := &scriptedSource{ints: []int{2}}
	w := world.New(960, 640, 96, fourZones(), src, zaptest.NewLogger(t))

	w.SpawnPickup("ledger_page")
	require.True(t, w.HasPickup("ledger_page"))
	assert.False(t, w.HasPickup("quill"))

	pickups := w.Pickups()
	require.Len(t, pickups, 1)
	assert.Equal(t, "ledger_page", pickups[0].ItemID)
	assert.NotEmpty(t, pickups[0].ID)

	bounds, _ := w.ZoneBounds(2)
	assert.True(t, bounds.Contains(pickups[0].Pos), "pickup must land inside the chosen zone")
}

// TestSpawnPickup_DistinctInstanceIDs verifies every spawn mints a fresh id.
func TestSpawnPickup_DistinctInstanceIDs(t *testing.T) {
	w := newTestWorld(t)
	w.SpawnPickup("ledger_page")
	w.SpawnPickup("quill")

	pickups := w.Pickups()
	require.Len(t, pickups, 2)
	assert.NotEqual(t, pickups[0].ID, pickups[1].ID)
}

// TestSpawnPickup_NoZones verifies the degenerate world still gets a usable
// drop.
func TestSpawnPickup_NoZones(t *testing.T) {
	w := world.New(960, 640, 96, nil, &scriptedSource{}, zaptest.NewLogger(t))
	w.SpawnPickup("ledger_page")

	pickups := w.Pickups()
	require.Len(t, pickups, 1)
	assert.GreaterOrEqual(t, pickups[0].Pos.X, float64(world.Margin))
	assert.LessOrEqual(t, pickups[0].Pos.Y, w.PlayHeight()-world.Margin)
}

// TestCollectAt verifies walking over a pickup removes exactly it.
func TestCollectAt(t *testing.T) {
	src := &scriptedSource{floats: []float64{0.2, 0.2, 0.8, 0.8}}
	w := world.New(960, 640, 96, fourZones(), src, zaptest.NewLogger(t))
	w.SpawnPickup("ledger_page")
	w.SpawnPickup("quill")
	pickups := w.Pickups()
	require.Len(t, pickups, 2)

	collected := w.CollectAt(geom.RectAround(pickups[0].Pos, 8, 8))
	require.Len(t, collected, 1)
	assert.Equal(t, pickups[0].ItemID, collected[0].ItemID)
	assert.False(t, w.HasPickup(pickups[0].ItemID))
	assert.True(t, w.HasPickup(pickups[1].ItemID), "other pickups stay put")
}

// TestCollectAt_Misses verifies a far-away box collects nothing.
func TestCollectAt_Misses(t *testing.T) {
	w := newTestWorld(t)
	w.SpawnPickup("ledger_page")

	collected := w.CollectAt(geom.Rect{X: 900, Y: 500, Width: 16, Height: 16})
	assert.Empty(t, collected)
	assert.True(t, w.HasPickup("ledger_page"))
}

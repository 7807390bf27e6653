package world_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"

	"github.com/jcoghill/wander/internal/game/world"
)

// scriptedSource feeds fixed draws to world generation, then midpoints and
// zeros once the script runs out.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func fourZones() []world.ZoneDef {
	return []world.ZoneDef{
		{ID: "z_mill", Name: "The Mill"},
		{ID: "z_market", Name: "Market Row"},
		{ID: "z_docks", Name: "The Docks"},
		{ID: "z_hollow", Name: "Fern Hollow"},
	}
}

func newTestWorld(t *testing.T) *world.World {
	t.Helper()
	return world.New(960, 640, 96, fourZones(), &scriptedSource{}, zaptest.NewLogger(t))
}

// TestNew_ZoneLayout verifies equal strips in descriptor order.
func TestNew_ZoneLayout(t *testing.T) {
	w := newTestWorld(t)
	zones := w.Zones()
	require.Len(t, zones, 4)

	assert.Equal(t, "z_mill", zones[0].ID)
	assert.Equal(t, 0.0, zones[0].X)
	assert.InDelta(t, 240, zones[0].Width, 1e-9)
	assert.Equal(t, "z_hollow", zones[3].ID)
	assert.InDelta(t, 720, zones[3].X, 1e-9)
}

// TestNew_ZoneTiling verifies the tiling invariant: contiguous strips whose
// widths sum to the world width.
func TestNew_ZoneTiling(t *testing.T) {
	w := newTestWorld(t)
	zones := w.Zones()

	sum := 0.0
	for i, z := range zones {
		sum += z.Width
		if i > 0 {
			assert.Equal(t, zones[i-1].X+zones[i-1].Width, z.X,
				"zone %d must start exactly where zone %d ends", i, i-1)
		}
	}
	assert.InDelta(t, w.Width, sum, 1e-9)
}

// TestNew_ZoneTiling_Property verifies tiling for arbitrary zone counts and
// world widths, including the empty world.
func TestNew_ZoneTiling_Property(t *testing.T) {
	logger := zaptest.NewLogger(t)
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 12).Draw(rt, "zones")
		width := rapid.Float64Range(100, 5000).Draw(rt, "width")
		defs := make([]world.ZoneDef, n)
		for i := range defs {
			defs[i] = world.ZoneDef{ID: fmt.Sprintf("z%02d", i), Name: fmt.Sprintf("Zone %d", i)}
		}
		w := world.New(width, 640, 96, defs, &scriptedSource{}, logger)

		zones := w.Zones()
		if len(zones) != n {
			rt.Fatalf("zone count: got %d, want %d", len(zones), n)
		}
		sum := 0.0
		for i, z := range zones {
			if z.Width <= 0 {
				rt.Fatalf("zone %d has non-positive width %v", i, z.Width)
			}
			sum += z.Width
			if i > 0 && zones[i-1].X+zones[i-1].Width != z.X {
				rt.Fatalf("zone %d not contiguous with zone %d", i, i-1)
			}
		}
		if n > 0 && (sum < width-1e-6 || sum > width+1e-6) {
			rt.Fatalf("widths sum to %v, want %v", sum, width)
		}
	})
}

// TestZoneAt verifies coordinate-to-zone lookup, including strip edges.
func TestZoneAt(t *testing.T) {
	w := newTestWorld(t)

	i, ok := w.ZoneAt(0)
	require.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = w.ZoneAt(240)
	require.True(t, ok)
	assert.Equal(t, 1, i, "a strip edge belongs to the right-hand zone")

	i, ok = w.ZoneAt(959.9)
	require.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = w.ZoneAt(-1)
	assert.False(t, ok)
	_, ok = w.ZoneAt(960)
	assert.False(t, ok)
}

// TestZoneBounds verifies the margin inset and the play-space height.
func TestZoneBounds(t *testing.T) {
	w := newTestWorld(t)
	b, ok := w.ZoneBounds(0)
	require.True(t, ok)
	assert.Equal(t, float64(world.Margin), b.X)
	assert.Equal(t, float64(world.Margin), b.Y)
	assert.InDelta(t, 240-2*world.Margin, b.Width, 1e-9)
	assert.InDelta(t, (640-96)-2*world.Margin, b.Height, 1e-9)

	_, ok = w.ZoneBounds(4)
	assert.False(t, ok)
	_, ok = w.ZoneBounds(-1)
	assert.False(t, ok)
}

// TestResize verifies re-layout keeps the tiling invariant and scales placed
// geometry proportionally.
func TestResize(t *testing.T) {
	src := &scriptedSource{}
	w := world.New(960, 640, 96, fourZones(), src, zaptest.NewLogger(t))
	_, ok := w.AddBuilding("npc_merchant", 1)
	require.True(t, ok)
	before := w.Buildings()[0].Box

	w.Resize(1920, 640)

	zones := w.Zones()
	sum := 0.0
	for i, z := range zones {
		sum += z.Width
		if i > 0 {
			assert.Equal(t, zones[i-1].X+zones[i-1].Width, z.X)
		}
	}
	assert.InDelta(t, 1920, sum, 1e-9)

	after := w.Buildings()[0].Box
	assert.InDelta(t, before.X*2, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9, "height unchanged, vertical position too")
	assert.InDelta(t, before.Width*2, after.Width, 1e-9)
}

// TestResize_IgnoresDegenerateDimensions verifies garbage sizes are dropped.
func TestResize_IgnoresDegenerateDimensions(t *testing.T) {
	w := newTestWorld(t)
	w.Resize(0, 640)
	w.Resize(960, 50)
	assert.Equal(t, 960.0, w.Width)
	assert.Equal(t, 640.0, w.Height)
}

// TestNew_NoZones verifies the degenerate world still answers queries.
func TestNew_NoZones(t *testing.T) {
	w := world.New(960, 640, 96, nil, &scriptedSource{}, zaptest.NewLogger(t))
	assert.Equal(t, 0, w.ZoneCount())
	_, ok := w.ZoneAt(100)
	assert.False(t, ok)
	_, ok = w.Zone(0)
	assert.False(t, ok)
}

// TestZone_Validate verifies the zone invariants.
func TestZone_Validate(t *testing.T) {
	z := world.Zone{ID: "z_mill", Name: "The Mill", Width: 240}
	require.NoError(t, z.Validate())

	z = world.Zone{Width: 240}
	assert.Error(t, z.Validate())

	z = world.Zone{ID: "z_mill"}
	assert.Error(t, z.Validate())
}

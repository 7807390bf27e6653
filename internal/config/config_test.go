package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		World: WorldConfig{
			Width:            960,
			Height:           640,
			UIBand:           96,
			ObstaclesPerZone: 3,
		},
		Sim: SimConfig{
			TickRate:     30,
			StartingGold: 100,
		},
		Content: ContentConfig{
			Dir: "content",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
world:
  width: 1280
  height: 720
  ui_band: 80
  obstacles_per_zone: 2
sim:
  tick_rate: 60
  starting_gold: 50
content:
  dir: testdata/content
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 1280.0, cfg.World.Width)
	assert.Equal(t, 60, cfg.Sim.TickRate)
	assert.Equal(t, 50, cfg.Sim.StartingGold)
	assert.Equal(t, "testdata/content", cfg.Content.Dir)
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minimal.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: warn
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 960.0, cfg.World.Width)
	assert.Equal(t, 30, cfg.Sim.TickRate)
	assert.Equal(t, "content", cfg.Content.Dir)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateWorldDimensions(t *testing.T) {
	cfg := validConfig()
	cfg.World.Width = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.World.Height = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateUIBandExceedsHeight(t *testing.T) {
	cfg := validConfig()
	cfg.World.UIBand = cfg.World.Height
	assert.Error(t, cfg.Validate())
}

func TestValidateObstaclesPerZone(t *testing.T) {
	cfg := validConfig()
	cfg.World.ObstaclesPerZone = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateTickRate(t *testing.T) {
	cfg := validConfig()
	cfg.Sim.TickRate = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Sim.TickRate = 241
	assert.Error(t, cfg.Validate())
}

func TestValidateStartingGold(t *testing.T) {
	cfg := validConfig()
	cfg.Sim.StartingGold = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateContentDirEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Content.Dir = ""
	assert.Error(t, cfg.Validate())
}

// Property-based tests

func TestPropertyValidTickRateRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rate := rapid.IntRange(1, 240).Draw(t, "rate")
		cfg := validConfig()
		cfg.Sim.TickRate = rate
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid tick rate %d rejected: %v", rate, err)
		}
	})
}

func TestPropertyInvalidTickRateRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rate := rapid.OneOf(
			rapid.IntRange(-1000, 0),
			rapid.IntRange(241, 100000),
		).Draw(t, "rate")
		cfg := validConfig()
		cfg.Sim.TickRate = rate
		if cfg.Validate() == nil {
			t.Fatalf("invalid tick rate %d accepted", rate)
		}
	})
}

func TestPropertyUIBandWithinHeight(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		height := rapid.Float64Range(1, 4096).Draw(t, "height")
		band := rapid.Float64Range(0, 4096).Draw(t, "band")
		cfg := validConfig()
		cfg.World.Height = height
		cfg.World.UIBand = band
		err := cfg.Validate()
		if band < height {
			if err != nil {
				t.Fatalf("band %g under height %g rejected: %v", band, height, err)
			}
		} else if err == nil {
			t.Fatalf("band %g at or over height %g accepted", band, height)
		}
	})
}

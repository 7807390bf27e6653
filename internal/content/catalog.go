package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jcoghill/wander/internal/game/dialogue"
	"github.com/jcoghill/wander/internal/game/effect"
	"github.com/jcoghill/wander/internal/game/inventory"
	"github.com/jcoghill/wander/internal/game/quest"
	"github.com/jcoghill/wander/internal/game/world"
)

// Descriptor file names inside a content directory. The generator
// writes these names and the loader reads them.
const (
	WorldFile    = "world.json"
	DialogueFile = "dialogues.json"
	QuestFile    = "quests.json"
	ItemFile     = "items.json"
	AbilityFile  = "abilities.json"
	EffectFile   = "effects.json"
)

// WorldSpec is the normalized world descriptor: the zone strip order
// and the NPC roster.
type WorldSpec struct {
	Zones []world.ZoneDef
	NPCs  []NPCSpec
}

// NPCIDs returns the NPC ids in descriptor order.
func (s WorldSpec) NPCIDs() []string {
	ids := make([]string, 0, len(s.NPCs))
	for _, n := range s.NPCs {
		ids = append(ids, n.ID)
	}
	return ids
}

// KindMerchant is the NPC kind that gets a building, an interior post,
// and a browsable shop.
const KindMerchant = "merchant"

// NPCSpec describes one NPC to place in the world.
type NPCSpec struct {
	ID   string
	Kind string
	// HomeZone indexes WorldSpec.Zones.
	HomeZone int
}

// Ability is a usable ability as described by content. Abilities bind
// to hotbar slots in descriptor order.
type Ability struct {
	ID          string
	Name        string
	Description string
}

// Catalog is one load's worth of normalized game content.
type Catalog struct {
	World     WorldSpec
	Dialogues *dialogue.Set
	Quests    []quest.Definition
	Items     *inventory.Registry
	Abilities []Ability
	Effects   []effect.Def
}

// Load reads every descriptor from dir, logging one warning per repair
// the parsers made. A missing descriptor file degrades to empty content
// for that concern; a descriptor that exists but cannot be parsed fails
// the load, since that points at a broken generation run rather than a
// sparse one.
//
// Precondition: logger must be non-nil.
// Postcondition: the returned catalog has non-nil Dialogues and Items.
func Load(dir string, logger *zap.Logger) (*Catalog, error) {
	cat := &Catalog{
		Dialogues: dialogue.NewSet(nil),
		Items:     inventory.NewRegistry(),
	}

	if data, ok, err := readDescriptor(dir, WorldFile, logger); err != nil {
		return nil, err
	} else if ok {
		spec, warns, err := ParseWorld(data)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", WorldFile, err)
		}
		logWarnings(logger, WorldFile, warns)
		cat.World = spec
	}

	if data, ok, err := readDescriptor(dir, DialogueFile, logger); err != nil {
		return nil, err
	} else if ok {
		set, warns, err := ParseDialogues(data)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", DialogueFile, err)
		}
		logWarnings(logger, DialogueFile, warns)
		cat.Dialogues = set
	}

	if data, ok, err := readDescriptor(dir, QuestFile, logger); err != nil {
		return nil, err
	} else if ok {
		defs, warns, err := ParseQuests(data)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", QuestFile, err)
		}
		logWarnings(logger, QuestFile, warns)
		cat.Quests = defs
	}

	if data, ok, err := readDescriptor(dir, ItemFile, logger); err != nil {
		return nil, err
	} else if ok {
		reg, warns, err := ParseItems(data)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", ItemFile, err)
		}
		logWarnings(logger, ItemFile, warns)
		cat.Items = reg
	}

	if data, ok, err := readDescriptor(dir, AbilityFile, logger); err != nil {
		return nil, err
	} else if ok {
		abilities, warns, err := ParseAbilities(data)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", AbilityFile, err)
		}
		logWarnings(logger, AbilityFile, warns)
		cat.Abilities = abilities
	}

	if data, ok, err := readDescriptor(dir, EffectFile, logger); err != nil {
		return nil, err
	} else if ok {
		defs, warns, err := ParseEffects(data)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", EffectFile, err)
		}
		logWarnings(logger, EffectFile, warns)
		cat.Effects = defs
	}

	logger.Info("content loaded",
		zap.String("dir", dir),
		zap.Int("zones", len(cat.World.Zones)),
		zap.Int("npcs", len(cat.World.NPCs)),
		zap.Int("dialogues", cat.Dialogues.Len()),
		zap.Int("quests", len(cat.Quests)),
		zap.Int("items", cat.Items.Len()),
		zap.Int("abilities", len(cat.Abilities)),
		zap.Int("effects", len(cat.Effects)))
	return cat, nil
}

func readDescriptor(dir, name string, logger *zap.Logger) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if errors.Is(err, os.ErrNotExist) {
		logger.Warn("content file missing, using empty defaults", zap.String("file", name))
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, true, nil
}

func logWarnings(logger *zap.Logger, file string, warnings []string) {
	for _, w := range warnings {
		logger.Warn("content normalized", zap.String("file", file), zap.String("detail", w))
	}
}

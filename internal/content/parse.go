package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jcoghill/wander/internal/game/dialogue"
	"github.com/jcoghill/wander/internal/game/effect"
	"github.com/jcoghill/wander/internal/game/inventory"
	"github.com/jcoghill/wander/internal/game/quest"
	"github.com/jcoghill/wander/internal/game/world"
)

// ParseWorld parses the world descriptor and normalizes it: zones and
// NPCs without ids are dropped, zone names default to their id, NPC
// kinds are lowercased, and home zone indexes are clamped into range.
//
// Postcondition: every returned NPC home zone indexes a returned zone,
// unless there are no zones at all.
func ParseWorld(data []byte) (WorldSpec, []string, error) {
	var file worldFile
	if err := json.Unmarshal(data, &file); err != nil {
		return WorldSpec{}, nil, fmt.Errorf("parsing world descriptor: %w", err)
	}

	var warnings []string
	var spec WorldSpec
	seenZones := make(map[string]bool, len(file.Zones))
	for i, z := range file.Zones {
		id := strings.TrimSpace(z.ID)
		if id == "" {
			warnings = append(warnings, fmt.Sprintf("zone %d has no id, dropped", i))
			continue
		}
		if seenZones[id] {
			warnings = append(warnings, fmt.Sprintf("zone %q repeated, keeping the first", id))
			continue
		}
		seenZones[id] = true
		name := strings.TrimSpace(z.Name)
		if name == "" {
			name = id
		}
		spec.Zones = append(spec.Zones, world.ZoneDef{ID: id, Name: name})
	}

	seenNPCs := make(map[string]bool, len(file.NPCs))
	for i, n := range file.NPCs {
		id := strings.TrimSpace(n.ID)
		if id == "" {
			warnings = append(warnings, fmt.Sprintf("npc %d has no id, dropped", i))
			continue
		}
		if seenNPCs[id] {
			warnings = append(warnings, fmt.Sprintf("npc %q repeated, keeping the first", id))
			continue
		}
		seenNPCs[id] = true
		home := n.HomeZone
		if home < 0 {
			warnings = append(warnings, fmt.Sprintf("npc %q home_zone %d is negative, clamped to 0", id, home))
			home = 0
		} else if len(spec.Zones) > 0 && home >= len(spec.Zones) {
			warnings = append(warnings, fmt.Sprintf("npc %q home_zone %d out of range, clamped to %d", id, home, len(spec.Zones)-1))
			home = len(spec.Zones) - 1
		}
		spec.NPCs = append(spec.NPCs, NPCSpec{
			ID:       id,
			Kind:     strings.ToLower(strings.TrimSpace(n.Kind)),
			HomeZone: home,
		})
	}
	return spec, warnings, nil
}

// ParseDialogues parses the dialogue descriptor into an indexed set.
// Nodes with a missing speaker default to the player; dialogues whose
// graphs fail structural validation are dropped rather than aborting
// the load.
func ParseDialogues(data []byte) (*dialogue.Set, []string, error) {
	var entries []dialogueEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil, fmt.Errorf("parsing dialogue descriptor: %w", err)
	}

	var warnings []string
	var graphs []*dialogue.Graph
	seen := make(map[string]bool, len(entries))
	for i, d := range entries {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			warnings = append(warnings, fmt.Sprintf("dialogue %d has no id, dropped", i))
			continue
		}
		if seen[id] {
			warnings = append(warnings, fmt.Sprintf("dialogue %q repeated, keeping the first", id))
			continue
		}

		nodes := make([]dialogue.Node, 0, len(d.Nodes))
		for _, n := range d.Nodes {
			node := dialogue.Node{
				ID:      strings.TrimSpace(n.NodeID),
				Speaker: strings.TrimSpace(n.Speaker),
				Text:    n.Text,
				Grants:  cleanStrings(n.Grants),
				Options: make([]dialogue.Option, 0, len(n.Options)),
			}
			if node.Speaker == "" {
				node.Speaker = dialogue.SpeakerPlayer
			}
			for _, o := range n.Options {
				node.Options = append(node.Options, dialogue.Option{
					Text:     o.ChoiceText,
					TargetID: strings.TrimSpace(o.ToID),
					Grants:   cleanStrings(o.Grants),
					Tags:     cleanStrings(o.Tags),
				})
			}
			nodes = append(nodes, node)
		}

		g, err := dialogue.NewGraph(id, nodes)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("dialogue %q dropped: %v", id, err))
			continue
		}
		seen[id] = true
		graphs = append(graphs, g)
	}
	return dialogue.NewSet(graphs), warnings, nil
}

// ParseQuests parses the quest descriptor. Missing titles default to
// the quest id; quests without an id are dropped.
func ParseQuests(data []byte) ([]quest.Definition, []string, error) {
	var entries []questEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil, fmt.Errorf("parsing quest descriptor: %w", err)
	}

	var warnings []string
	var defs []quest.Definition
	seen := make(map[string]bool, len(entries))
	for i, q := range entries {
		id := strings.TrimSpace(q.ID)
		if id == "" {
			warnings = append(warnings, fmt.Sprintf("quest %d has no id, dropped", i))
			continue
		}
		if seen[id] {
			warnings = append(warnings, fmt.Sprintf("quest %q repeated, keeping the first", id))
			continue
		}
		title := strings.TrimSpace(q.Title)
		if title == "" {
			title = id
			warnings = append(warnings, fmt.Sprintf("quest %q has no title, using its id", id))
		}

		def := quest.Definition{
			ID:     id,
			Title:  title,
			IsMain: q.IsMain,
			Steps:  make([]quest.Step, 0, len(q.Steps)),
		}
		for _, s := range q.Steps {
			def.Steps = append(def.Steps, quest.Step{
				Goal:         strings.TrimSpace(s.Goal),
				LocationHint: strings.TrimSpace(s.Hint),
				Requires:     cleanStrings(s.Requires),
			})
		}
		if err := def.Validate(); err != nil {
			warnings = append(warnings, fmt.Sprintf("quest %q dropped: %v", id, err))
			continue
		}
		seen[id] = true
		defs = append(defs, def)
	}
	return defs, warnings, nil
}

// ParseItems parses the item catalog into a registry. Categories are
// lowercased; unrecognized categories are kept but reported, since the
// shop still prices them.
func ParseItems(data []byte) (*inventory.Registry, []string, error) {
	var entries []itemEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil, fmt.Errorf("parsing item descriptor: %w", err)
	}

	var warnings []string
	reg := inventory.NewRegistry()
	for i, it := range entries {
		id := strings.TrimSpace(it.ItemID)
		if id == "" {
			warnings = append(warnings, fmt.Sprintf("item %d has no item_id, dropped", i))
			continue
		}
		name := strings.TrimSpace(it.Name)
		if name == "" {
			name = id
		}
		category := strings.ToLower(strings.TrimSpace(it.Category))
		if category != "" && !inventory.KnownCategory(category) {
			warnings = append(warnings, fmt.Sprintf("item %q has unrecognized category %q", id, category))
		}
		if err := reg.RegisterItem(&inventory.ItemDef{ID: id, Name: name, Category: category}); err != nil {
			warnings = append(warnings, fmt.Sprintf("item %q dropped: %v", id, err))
		}
	}
	return reg, warnings, nil
}

// ParseAbilities parses the ability descriptor. Slot order follows
// descriptor order.
func ParseAbilities(data []byte) ([]Ability, []string, error) {
	var entries []abilityEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil, fmt.Errorf("parsing ability descriptor: %w", err)
	}

	var warnings []string
	var abilities []Ability
	seen := make(map[string]bool, len(entries))
	for i, a := range entries {
		id := strings.TrimSpace(a.ID)
		if id == "" {
			warnings = append(warnings, fmt.Sprintf("ability %d has no id, dropped", i))
			continue
		}
		if seen[id] {
			warnings = append(warnings, fmt.Sprintf("ability %q repeated, keeping the first", id))
			continue
		}
		seen[id] = true
		name := strings.TrimSpace(a.Name)
		if name == "" {
			name = id
		}
		abilities = append(abilities, Ability{
			ID:          id,
			Name:        name,
			Description: strings.TrimSpace(a.Description),
		})
	}
	return abilities, warnings, nil
}

// ParseEffects parses the status effect catalog. Effect types are
// lowercased; a missing type defaults to speed so generated buffs stay
// usable.
func ParseEffects(data []byte) ([]effect.Def, []string, error) {
	var entries []effectEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil, fmt.Errorf("parsing effect descriptor: %w", err)
	}

	var warnings []string
	var defs []effect.Def
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			warnings = append(warnings, fmt.Sprintf("effect %d has no id, dropped", i))
			continue
		}
		if seen[id] {
			warnings = append(warnings, fmt.Sprintf("effect %q repeated, keeping the first", id))
			continue
		}
		seen[id] = true
		name := strings.TrimSpace(e.Name)
		if name == "" {
			name = id
		}
		typ := strings.ToLower(strings.TrimSpace(e.Effect))
		if typ == "" {
			warnings = append(warnings, fmt.Sprintf("effect %q has no effect type, defaulting to %q", id, effect.TypeSpeed))
			typ = effect.TypeSpeed
		}
		defs = append(defs, effect.Def{ID: id, Name: name, Type: typ})
	}
	return defs, warnings, nil
}

// cleanStrings trims every element and drops the empty ones. The result
// is never nil.
func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

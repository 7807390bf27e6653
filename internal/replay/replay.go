// Package replay parses YAML tick scripts and drives a simulation
// through them deterministically. A script is a flat list of steps;
// each step may set movement intent, apply one discrete action, and
// advance a number of fixed-size ticks. Paired with a scripted
// randomness source, the same script always produces the same session.
package replay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jcoghill/wander/internal/game/sim"
)

// DefaultDT is the fixed per-tick delta a drive uses, in seconds.
const DefaultDT = 1.0 / 30.0

// Script is one parsed tick script.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one script entry. Move and Action are optional; Ticks says
// how many fixed ticks to run after applying them.
type Step struct {
	// Ticks is the number of Update calls this step runs. Zero is
	// allowed for steps that only apply an action.
	Ticks int `yaml:"ticks"`
	// Move sets the movement intent for this step's ticks and beyond.
	Move *Move `yaml:"move"`
	// Action applies one discrete input before the ticks run.
	Action *Action `yaml:"action"`
}

// Move is a movement intent on both axes, each in [-1, 1].
type Move struct {
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`
}

// Action names one discrete input in script form.
type Action struct {
	Kind  string `yaml:"kind"`
	Index int    `yaml:"index"`
	ID    string `yaml:"id"`
}

// actionKinds maps script action names to the dispatcher's closed set.
var actionKinds = map[string]sim.ActionKind{
	"enter-building": sim.ActionEnterBuilding,
	"exit-interior":  sim.ActionExitInterior,
	"start-talk":     sim.ActionStartTalk,
	"select-option":  sim.ActionSelectOption,
	"deliver":        sim.ActionDeliver,
	"open-shop":      sim.ActionOpenShop,
	"close-overlay":  sim.ActionCloseOverlay,
	"purchase":       sim.ActionPurchase,
	"toggle-equip":   sim.ActionToggleEquip,
	"use-item":       sim.ActionUseItem,
	"use-ability":    sim.ActionUseAbility,
	"open-inventory": sim.ActionOpenInventory,
	"open-quest-log": sim.ActionOpenQuestLog,
	"pick-quest":     sim.ActionPickQuest,
}

// Parse reads a script from YAML. Unlike game content, scripts are
// authored by hand for a known build, so a malformed script is an
// error rather than something to repair.
//
// Postcondition: every step of the returned script has non-negative
// Ticks and a resolvable action kind.
func Parse(data []byte) (Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Script{}, fmt.Errorf("replay: parsing script: %w", err)
	}
	for i, step := range sc.Steps {
		if step.Ticks < 0 {
			return Script{}, fmt.Errorf("replay: step %d: ticks must be >= 0, got %d", i, step.Ticks)
		}
		if step.Action != nil {
			if _, ok := actionKinds[step.Action.Kind]; !ok {
				return Script{}, fmt.Errorf("replay: step %d: unknown action kind %q", i, step.Action.Kind)
			}
		}
	}
	return sc, nil
}

// LoadFile reads and parses a script file.
func LoadFile(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("replay: reading script %q: %w", path, err)
	}
	return Parse(data)
}

// Drive runs the script against s with a fixed dt per tick. Each step
// applies its action first, then its movement intent, then its ticks.
//
// Precondition: dt must be > 0; use DefaultDT unless the script was
// authored for another rate.
func Drive(s *sim.Simulation, sc Script, dt float64) {
	for _, step := range sc.Steps {
		if step.Action != nil {
			s.Apply(sim.Action{
				Kind:  actionKinds[step.Action.Kind],
				Index: step.Action.Index,
				ID:    step.Action.ID,
			})
		}
		if step.Move != nil {
			s.SetInput(step.Move.DX, step.Move.DY)
		}
		for i := 0; i < step.Ticks; i++ {
			s.Update(dt)
		}
	}
}

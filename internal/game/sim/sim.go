// Package sim owns the mutable runtime state of one play session and
// advances it frame by frame. Everything that can change during play
// lives on the Simulation struct; catalog data stays immutable and is
// only read. Mutation happens through exactly two entry points: Update
// for elapsed time and Apply for discrete input, both called from a
// single goroutine, so nothing here locks.
package sim

import (
	"math"

	"go.uber.org/zap"

	"github.com/jcoghill/wander/internal/content"
	"github.com/jcoghill/wander/internal/game/actor"
	"github.com/jcoghill/wander/internal/game/check"
	"github.com/jcoghill/wander/internal/game/dialogue"
	"github.com/jcoghill/wander/internal/game/effect"
	"github.com/jcoghill/wander/internal/game/geom"
	"github.com/jcoghill/wander/internal/game/inventory"
	"github.com/jcoghill/wander/internal/game/quest"
	"github.com/jcoghill/wander/internal/game/world"
)

const (
	// GrantGold is paid on every dialogue grant event, including
	// re-grants of items already held.
	GrantGold = 5

	// BuffValue and BuffDuration parameterize the timed effect a
	// non-healing consumable applies.
	BuffValue    = 0.25
	BuffDuration = 30.0

	defaultWidth        = 960
	defaultHeight       = 640
	defaultUIBand       = 96
	defaultStartingGold = 100
)

// Options configures a new session. Zero values fall back to defaults.
type Options struct {
	// Width and Height are the world dimensions in world units.
	Width  float64
	Height float64
	// UIBand is the height reserved at the bottom for the message feed
	// and hotbar.
	UIBand float64
	// StartingGold seeds the player's purse.
	StartingGold int
	// ObstaclesPerZone controls how cluttered the zones are; zero
	// leaves them open.
	ObstaclesPerZone int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.UIBand <= 0 {
		o.UIBand = defaultUIBand
	}
	if o.StartingGold <= 0 {
		o.StartingGold = defaultStartingGold
	}
	if o.ObstaclesPerZone < 0 {
		o.ObstaclesPerZone = 0
	}
	return o
}

// Simulation is the single session context. It owns the world, the
// actors, the player's belongings, the quest tracker, and the transient
// interaction state (current conversation, open shop, overlay mode).
type Simulation struct {
	world  *world.World
	player *actor.Player
	npcs   []*actor.NPC
	byID   map[string]*actor.NPC

	items     *inventory.Registry
	dialogues *dialogue.Set
	abilities []content.Ability
	effects   []effect.Def

	tracker *quest.Tracker
	state   *inventory.State
	feed    *MessageFeed
	bar     *AbilityBar

	mode       Mode
	session    *dialogue.Session
	sessionNPC string
	shop       *inventory.Shop

	// interiorID names the interior the player currently occupies, or
	// is empty in the world. savedPos is the world position restored on
	// exit; suppressDoor blocks re-entry until the player leaves the
	// door band after exiting.
	interiorID   string
	savedPos     geom.Vec2
	suppressDoor bool

	input   inputState
	src     check.Source
	checker *check.Checker
	logger  *zap.Logger
}

type inputState struct {
	dx, dy float64
}

// New builds a session from loaded content: lays out zones, scatters
// obstacles, raises a building per merchant, and places every NPC in
// its home zone. Content with zero zones or zero NPCs produces a quiet
// but functional world.
//
// Precondition: cat, src, and logger must be non-nil.
func New(cat *content.Catalog, opts Options, src check.Source, logger *zap.Logger) *Simulation {
	opts = opts.withDefaults()

	w := world.New(opts.Width, opts.Height, opts.UIBand, cat.World.Zones, src, logger)
	w.ScatterObstacles(opts.ObstaclesPerZone)

	s := &Simulation{
		world:     w,
		byID:      make(map[string]*actor.NPC, len(cat.World.NPCs)),
		items:     cat.Items,
		dialogues: cat.Dialogues,
		abilities: cat.Abilities,
		effects:   cat.Effects,
		state:     inventory.NewState(opts.StartingGold),
		feed:      NewMessageFeed(),
		bar:       NewAbilityBar(cat.Abilities),
		src:       src,
		checker:   check.NewLoggedChecker(src, logger),
		logger:    logger,
	}

	for _, spec := range cat.World.NPCs {
		n := s.placeNPC(spec)
		if n == nil {
			continue
		}
		s.npcs = append(s.npcs, n)
		s.byID[n.ID] = n
	}

	defs := make([]*quest.Definition, 0, len(cat.Quests))
	for i := range cat.Quests {
		defs = append(defs, &cat.Quests[i])
	}
	s.tracker = quest.NewTracker(defs, cat.World.NPCIDs(), logger)

	s.player = actor.NewPlayer(s.startPosition())

	logger.Info("session built",
		zap.Int("zones", w.ZoneCount()),
		zap.Int("npcs", len(s.npcs)),
		zap.Int("buildings", len(w.Buildings())),
		zap.Int("quests", len(defs)))
	return s
}

// placeNPC realizes one NPC spec. Merchants get a building in their
// home zone and stand inside it; everyone else wanders outdoors. A
// world with no usable zone for the NPC drops it.
func (s *Simulation) placeNPC(spec content.NPCSpec) *actor.NPC {
	bounds, ok := s.world.ZoneBounds(spec.HomeZone)
	if !ok {
		s.logger.Warn("npc has no zone to live in, skipped",
			zap.String("npc", spec.ID),
			zap.Int("home_zone", spec.HomeZone))
		return nil
	}

	if spec.Kind == content.KindMerchant {
		if _, ok := s.world.AddBuilding(spec.ID, spec.HomeZone); ok {
			in, _ := s.world.Interior(spec.ID)
			return actor.NewIndoorNPC(spec.ID, spec.Kind, spec.HomeZone, in.NPCPos, s.src)
		}
		s.logger.Warn("no room for a building, merchant roams outdoors",
			zap.String("npc", spec.ID))
	}

	pos := geom.Vec2{
		X: bounds.X + s.src.Float64()*bounds.Width,
		Y: bounds.Y + s.src.Float64()*bounds.Height,
	}
	return actor.NewNPC(spec.ID, spec.Kind, spec.HomeZone, pos, s.src)
}

// startPosition picks where the player begins: the center of the first
// zone, or the center of the play space when there are no zones.
func (s *Simulation) startPosition() geom.Vec2 {
	if bounds, ok := s.world.ZoneBounds(0); ok {
		return bounds.Center()
	}
	return geom.Rect{Width: s.world.Width, Height: s.world.PlayHeight()}.Center()
}

// SetInput records the player's movement intent for subsequent ticks.
// Each axis is clamped to [-1, 1] and diagonals are normalized so
// diagonal movement is no faster than straight movement.
func (s *Simulation) SetInput(dx, dy float64) {
	dx = geom.Clamp(dx, -1, 1)
	dy = geom.Clamp(dy, -1, 1)
	if mag := math.Hypot(dx, dy); mag > 1 {
		dx /= mag
		dy /= mag
	}
	s.input = inputState{dx: dx, dy: dy}
}

// World returns the spatial model.
func (s *Simulation) World() *world.World { return s.world }

// Player returns the player actor.
func (s *Simulation) Player() *actor.Player { return s.player }

// NPCs returns the live NPC list in placement order.
func (s *Simulation) NPCs() []*actor.NPC { return s.npcs }

// NPC returns the NPC with the given id.
func (s *Simulation) NPC(id string) (*actor.NPC, bool) {
	n, ok := s.byID[id]
	return n, ok
}

// Mode returns the current interaction mode.
func (s *Simulation) Mode() Mode { return s.mode }

// Inventory returns the player's belongings.
func (s *Simulation) Inventory() *inventory.State { return s.state }

// Items returns the immutable item catalog.
func (s *Simulation) Items() *inventory.Registry { return s.items }

// Tracker returns the quest tracker.
func (s *Simulation) Tracker() *quest.Tracker { return s.tracker }

// Session returns the active conversation, or nil outside dialogue.
func (s *Simulation) Session() *dialogue.Session { return s.session }

// SessionNPC returns the id of the NPC the player is talking to, or
// empty outside dialogue.
func (s *Simulation) SessionNPC() string { return s.sessionNPC }

// Shop returns the open shop, or nil when none is open.
func (s *Simulation) Shop() *inventory.Shop { return s.shop }

// Feed returns the transient message feed.
func (s *Simulation) Feed() *MessageFeed { return s.feed }

// Abilities returns the hotbar.
func (s *Simulation) Abilities() *AbilityBar { return s.bar }

// InteriorID returns the id of the occupied interior, or empty when
// the player is outside.
func (s *Simulation) InteriorID() string { return s.interiorID }

// CanDeliver reports whether the deliver affordance shows in the
// current conversation: the NPC must be the active step's assignee and
// the player must hold everything the step requires.
func (s *Simulation) CanDeliver() bool {
	return s.mode == ModeDialogue && s.sessionNPC != "" &&
		s.tracker.CanDeliver(s.sessionNPC, s.state)
}

// CanBrowse reports whether the browse-wares affordance shows in the
// current conversation.
func (s *Simulation) CanBrowse() bool {
	if s.mode != ModeDialogue {
		return false
	}
	n, ok := s.byID[s.sessionNPC]
	return ok && n.Kind == content.KindMerchant
}

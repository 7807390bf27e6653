package sim

import "github.com/jcoghill/wander/internal/game/geom"

// Mode is the current interaction surface. Roam is the world itself;
// the others are modal overlays that capture input until closed.
type Mode int

const (
	ModeRoam Mode = iota
	ModeDialogue
	ModeShop
	ModeInventory
	ModeQuestLog
)

// String returns the mode name for logs.
func (m Mode) String() string {
	switch m {
	case ModeRoam:
		return "roam"
	case ModeDialogue:
		return "dialogue"
	case ModeShop:
		return "shop"
	case ModeInventory:
		return "inventory"
	case ModeQuestLog:
		return "quest-log"
	default:
		return "unknown"
	}
}

// HitKind classifies what a pointer or key event landed on. World-space
// kinds come from HitTest; overlay kinds come from whoever rendered the
// overlay and knows what occupies each row or button.
type HitKind int

const (
	HitNone HitKind = iota
	// HitNPC targets an actor; ID carries the npc id.
	HitNPC
	// HitDoor targets a building door band; ID carries the owning npc.
	HitDoor
	// HitInteriorDoor targets the exit door of the occupied interior.
	HitInteriorDoor
	// HitOption targets a dialogue choice; Index is the option index.
	HitOption
	// HitDeliver targets the deliver affordance of a conversation.
	HitDeliver
	// HitShop targets the browse-wares affordance of a conversation.
	HitShop
	// HitClose targets an overlay's close control.
	HitClose
	// HitStock targets a shop row; Index is the stock index.
	HitStock
	// HitGear targets an equippable inventory row; ID is the item id.
	HitGear
	// HitConsumable targets a consumable inventory row; ID is the item.
	HitConsumable
	// HitQuest targets a quest log row; ID is the quest id.
	HitQuest
	// HitAbility targets a hotbar slot; Index is the slot.
	HitAbility
	// HitInventoryButton and HitQuestButton target the UI band toggles.
	HitInventoryButton
	HitQuestButton
)

// Hit is a classified input target.
type Hit struct {
	Kind  HitKind
	Index int
	ID    string
}

// ActionKind enumerates every state mutation input can request. The
// set is closed: Apply ignores anything it does not recognize.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionEnterBuilding
	ActionExitInterior
	ActionStartTalk
	ActionSelectOption
	ActionDeliver
	ActionOpenShop
	ActionCloseOverlay
	ActionPurchase
	ActionToggleEquip
	ActionUseItem
	ActionUseAbility
	ActionOpenInventory
	ActionOpenQuestLog
	ActionPickQuest
)

// Action is one requested state mutation.
type Action struct {
	Kind  ActionKind
	Index int
	ID    string
}

// Dispatch maps a classified hit to the action it requests under the
// given mode. It is pure: hit-testing happens before it, state
// mutation after, so the routing table tests on its own.
func Dispatch(mode Mode, hit Hit) Action {
	switch mode {
	case ModeRoam:
		switch hit.Kind {
		case HitNPC:
			return Action{Kind: ActionStartTalk, ID: hit.ID}
		case HitDoor:
			return Action{Kind: ActionEnterBuilding, ID: hit.ID}
		case HitInteriorDoor:
			return Action{Kind: ActionExitInterior}
		case HitAbility:
			return Action{Kind: ActionUseAbility, Index: hit.Index}
		case HitInventoryButton:
			return Action{Kind: ActionOpenInventory}
		case HitQuestButton:
			return Action{Kind: ActionOpenQuestLog}
		}
	case ModeDialogue:
		switch hit.Kind {
		case HitOption:
			return Action{Kind: ActionSelectOption, Index: hit.Index}
		case HitDeliver:
			return Action{Kind: ActionDeliver}
		case HitShop:
			return Action{Kind: ActionOpenShop}
		case HitClose:
			return Action{Kind: ActionCloseOverlay}
		}
	case ModeShop:
		switch hit.Kind {
		case HitStock:
			return Action{Kind: ActionPurchase, Index: hit.Index}
		case HitClose:
			return Action{Kind: ActionCloseOverlay}
		}
	case ModeInventory:
		switch hit.Kind {
		case HitGear:
			return Action{Kind: ActionToggleEquip, ID: hit.ID}
		case HitConsumable:
			return Action{Kind: ActionUseItem, ID: hit.ID}
		case HitClose:
			return Action{Kind: ActionCloseOverlay}
		}
	case ModeQuestLog:
		switch hit.Kind {
		case HitQuest:
			return Action{Kind: ActionPickQuest, ID: hit.ID}
		case HitClose:
			return Action{Kind: ActionCloseOverlay}
		}
	}
	return Action{Kind: ActionNone}
}

// HitTest classifies a world-space point against what the player can
// interact with while roaming: NPCs, building doors, and the exit door
// of the occupied interior. Overlay surfaces are classified by their
// renderer, not here.
func (s *Simulation) HitTest(p geom.Vec2) Hit {
	if s.mode != ModeRoam {
		return Hit{Kind: HitNone}
	}

	if s.interiorID != "" {
		if n, ok := s.byID[s.interiorID]; ok && n.Box().Contains(p) {
			return Hit{Kind: HitNPC, ID: n.ID}
		}
		if in, ok := s.world.Interior(s.interiorID); ok && in.Door().Contains(p) {
			return Hit{Kind: HitInteriorDoor}
		}
		return Hit{Kind: HitNone}
	}

	for _, n := range s.npcs {
		if !n.Indoors && n.Box().Contains(p) {
			return Hit{Kind: HitNPC, ID: n.ID}
		}
	}
	for _, b := range s.world.Buildings() {
		if b.Door().Contains(p) {
			return Hit{Kind: HitDoor, ID: b.NPCID}
		}
	}
	return Hit{Kind: HitNone}
}

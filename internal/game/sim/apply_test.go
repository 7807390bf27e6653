package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcoghill/wander/internal/game/inventory"
	"github.com/jcoghill/wander/internal/game/quest"
	"github.com/jcoghill/wander/internal/game/sim"
)

func TestApplyStartTalk(t *testing.T) {
	s := newTestSim(t)

	s.Apply(sim.Action{Kind: sim.ActionStartTalk, ID: "npc_elder"})

	require.Equal(t, sim.ModeDialogue, s.Mode())
	require.NotNil(t, s.Session())
	assert.Equal(t, "greet", s.Session().Current().ID)
	assert.Equal(t, "npc_elder", s.SessionNPC())

	// The first node grants the ledger page and pays the grant reward.
	assert.True(t, s.Inventory().Holds("ledger_page"))
	assert.Equal(t, 105, s.Inventory().Gold)
	assert.Contains(t, s.Feed().Lines(), "Received Torn Ledger Page.")
}

func TestApplyStartTalkUnknownNPCIsNoOp(t *testing.T) {
	s := newTestSim(t)
	s.Apply(sim.Action{Kind: sim.ActionStartTalk, ID: "npc_ghost"})
	assert.Equal(t, sim.ModeRoam, s.Mode())
	assert.Nil(t, s.Session())
}

func TestApplyRepeatGrantPaysGoldWithoutDuplicate(t *testing.T) {
	s := newTestSim(t)

	s.Apply(sim.Action{Kind: sim.ActionStartTalk, ID: "npc_elder"})
	s.Apply(sim.Action{Kind: sim.ActionCloseOverlay})
	s.Apply(sim.Action{Kind: sim.ActionStartTalk, ID: "npc_elder"})

	assert.Equal(t, 1, s.Inventory().Count("ledger_page"), "the item is not re-added")
	assert.Equal(t, 110, s.Inventory().Gold, "every grant event pays, held or not")
	assert.Contains(t, s.Feed().Lines(), "+5 gold.")
}

func TestApplySelectOptionFollowsAndEnds(t *testing.T) {
	s := newTestSim(t)
	s.Apply(sim.Action{Kind: sim.ActionStartTalk, ID: "npc_elder"})

	s.Apply(sim.Action{Kind: sim.ActionSelectOption, Index: 0})
	require.NotNil(t, s.Session())
	assert.Equal(t, "more", s.Session().Current().ID)

	// "Farewell." carries no target, so the conversation ends.
	s.Apply(sim.Action{Kind: sim.ActionSelectOption, Index: 0})
	assert.Nil(t, s.Session())
	assert.Equal(t, sim.ModeRoam, s.Mode())
}

func TestApplySelectOptionOutOfRangeIsNoOp(t *testing.T) {
	s := newTestSim(t)
	s.Apply(sim.Action{Kind: sim.ActionStartTalk, ID: "npc_elder"})

	s.Apply(sim.Action{Kind: sim.ActionSelectOption, Index: 9})
	require.NotNil(t, s.Session())
	assert.Equal(t, "greet", s.Session().Current().ID)
}

// startLedgerQuest walks the quest-log surface the way input would.
func startLedgerQuest(t *testing.T, s *sim.Simulation) {
	t.Helper()
	s.Apply(sim.Action{Kind: sim.ActionOpenQuestLog})
	s.Apply(sim.Action{Kind: sim.ActionPickQuest, ID: "q_ledger"})
	s.Apply(sim.Action{Kind: sim.ActionCloseOverlay})
	st, ok := s.Tracker().Get("q_ledger")
	require.True(t, ok)
	require.Equal(t, quest.StatusInProgress, st.Status)
}

func TestApplyDeliverSuccess(t *testing.T) {
	s := newTestSim(t)
	startLedgerQuest(t, s)

	// Step 0 needs the ledger page, which only the elder's talk grants.
	assert.False(t, s.World().HasPickup("ledger_page"))

	elder, _ := s.NPC("npc_elder")
	elder.Skill = "charisma"
	elder.Difficulty = 0.4 // threshold 0.5+0-0.4+0.5 = 0.6 > midpoint roll

	goldBefore := s.Inventory().Gold
	s.Apply(sim.Action{Kind: sim.ActionStartTalk, ID: "npc_elder"})
	require.True(t, s.CanDeliver(), "assignee plus held items shows the affordance")

	s.Apply(sim.Action{Kind: sim.ActionDeliver})

	st, _ := s.Tracker().Get("q_ledger")
	assert.Equal(t, 1, st.CurrentStep)
	assert.False(t, s.Inventory().Holds("ledger_page"), "required items are consumed")
	assert.Equal(t, goldBefore+5+20, s.Inventory().Gold, "grant reward plus step reward")
	assert.Equal(t, 100, s.Player().HP, "a passed contest costs nothing")
	assert.Contains(t, s.Feed().Lines(), "Elder accepts the delivery.")
	assert.True(t, s.World().HasPickup("ink_pot"), "the next step's item spawns")
}

func TestApplyDeliverFailureDamagesButAdvances(t *testing.T) {
	s := newTestSim(t)
	startLedgerQuest(t, s)

	elder, _ := s.NPC("npc_elder")
	elder.Skill = "charisma"
	elder.Difficulty = 0.8 // threshold 0.2 <= midpoint roll

	s.Apply(sim.Action{Kind: sim.ActionStartTalk, ID: "npc_elder"})
	s.Apply(sim.Action{Kind: sim.ActionDeliver})

	st, _ := s.Tracker().Get("q_ledger")
	assert.Equal(t, 1, st.CurrentStep, "failure never blocks the step")
	assert.Equal(t, 90, s.Player().HP)
	assert.Contains(t, s.Feed().Lines(), "The handoff goes badly. You take 10 damage.")
}

func TestApplyDeliverWithoutActiveStepIsNoOp(t *testing.T) {
	s := newTestSim(t)

	s.Apply(sim.Action{Kind: sim.ActionStartTalk, ID: "npc_elder"})
	assert.False(t, s.CanDeliver())
	goldBefore := s.Inventory().Gold
	hpBefore := s.Player().HP

	s.Apply(sim.Action{Kind: sim.ActionDeliver})

	assert.Equal(t, goldBefore, s.Inventory().Gold)
	assert.Equal(t, hpBefore, s.Player().HP)
	assert.Contains(t, s.Feed().Lines(), "Elder is not waiting on anything from you.")
}

func TestApplyPickQuestTwiceIsNoOp(t *testing.T) {
	s := newTestSim(t)
	startLedgerQuest(t, s)
	pickupsBefore := len(s.World().Pickups())

	s.Apply(sim.Action{Kind: sim.ActionOpenQuestLog})
	s.Apply(sim.Action{Kind: sim.ActionPickQuest, ID: "q_ledger"})

	st, _ := s.Tracker().Get("q_ledger")
	assert.Equal(t, quest.StatusInProgress, st.Status)
	assert.Equal(t, 0, st.CurrentStep)
	assert.Len(t, s.World().Pickups(), pickupsBefore, "no new pickups on a repeat start")
	assert.Contains(t, s.Feed().Lines(), "That quest is already underway.")
}

func TestApplyShopFlow(t *testing.T) {
	s := newTestSim(t)

	s.Apply(sim.Action{Kind: sim.ActionEnterBuilding, ID: "npc_trader"})
	require.Equal(t, "npc_trader", s.InteriorID())

	s.Apply(sim.Action{Kind: sim.ActionStartTalk, ID: "npc_trader"})
	require.True(t, s.CanBrowse())

	s.Apply(sim.Action{Kind: sim.ActionOpenShop})
	require.Equal(t, sim.ModeShop, s.Mode())
	require.NotNil(t, s.Shop())
	stockBefore := s.Shop().Len()
	require.Greater(t, stockBefore, 0)

	itemID := s.Shop().Stock()[0]
	def, ok := s.Items().Item(itemID)
	require.True(t, ok)
	goldBefore := s.Inventory().Gold

	s.Apply(sim.Action{Kind: sim.ActionPurchase, Index: 0})

	assert.Equal(t, goldBefore-inventory.PriceFor(def), s.Inventory().Gold)
	assert.True(t, s.Inventory().Holds(itemID))
	assert.Equal(t, stockBefore-1, s.Shop().Len(), "sold stock leaves the shelf")
}

func TestApplyPurchaseInsufficientGold(t *testing.T) {
	s := newTestSim(t)
	require.NoError(t, s.Inventory().SpendGold(95))

	s.Apply(sim.Action{Kind: sim.ActionEnterBuilding, ID: "npc_trader"})
	s.Apply(sim.Action{Kind: sim.ActionStartTalk, ID: "npc_trader"})
	s.Apply(sim.Action{Kind: sim.ActionOpenShop})
	stockBefore := s.Shop().Len()

	s.Apply(sim.Action{Kind: sim.ActionPurchase, Index: 0})

	assert.Equal(t, 5, s.Inventory().Gold, "state unchanged")
	assert.Equal(t, stockBefore, s.Shop().Len())
	assert.Contains(t, s.Feed().Lines(), "You cannot afford that.")
}

func TestApplyToggleEquip(t *testing.T) {
	s := newTestSim(t)
	s.Inventory().Add("sword_iron")
	s.Apply(sim.Action{Kind: sim.ActionOpenInventory})

	s.Apply(sim.Action{Kind: sim.ActionToggleEquip, ID: "sword_iron"})
	assert.True(t, s.Inventory().IsEquipped("sword_iron"))
	assert.Contains(t, s.Feed().Lines(), "Equipped Iron Sword.")

	s.Apply(sim.Action{Kind: sim.ActionToggleEquip, ID: "sword_iron"})
	assert.False(t, s.Inventory().IsEquipped("sword_iron"))
	assert.True(t, s.Inventory().Holds("sword_iron"), "unequipping keeps the item")
}

func TestApplyToggleEquipNonEquippable(t *testing.T) {
	s := newTestSim(t)
	s.Inventory().Add("quill")
	s.Apply(sim.Action{Kind: sim.ActionOpenInventory})

	s.Apply(sim.Action{Kind: sim.ActionToggleEquip, ID: "quill"})
	assert.False(t, s.Inventory().IsEquipped("quill"))
	assert.Contains(t, s.Feed().Lines(), "You cannot equip that.")
}

func TestApplyUseHealingConsumable(t *testing.T) {
	s := newTestSim(t)
	s.Player().Damage(40)
	s.Inventory().Add("potion_minor")
	s.Apply(sim.Action{Kind: sim.ActionOpenInventory})

	s.Apply(sim.Action{Kind: sim.ActionUseItem, ID: "potion_minor"})

	assert.Equal(t, 85, s.Player().HP, "60 plus the flat heal of 25")
	assert.False(t, s.Inventory().Holds("potion_minor"))
}

func TestApplyUseBuffConsumable(t *testing.T) {
	s := newTestSim(t)
	s.Inventory().Add("charm_fox")
	s.Apply(sim.Action{Kind: sim.ActionOpenInventory})

	s.Apply(sim.Action{Kind: sim.ActionUseItem, ID: "charm_fox"})

	assert.False(t, s.Inventory().Holds("charm_fox"))
	require.Equal(t, 1, s.Player().Effects.Len())
	assert.Equal(t, "Swiftness", s.Player().Effects.All()[0].Name, "drawn from the effect catalog")
	assert.Contains(t, s.Feed().Lines(), "You use Fox Charm. Swiftness takes hold.")
}

func TestApplyUseItemNotHeldIsNoOp(t *testing.T) {
	s := newTestSim(t)
	s.Apply(sim.Action{Kind: sim.ActionOpenInventory})
	s.Apply(sim.Action{Kind: sim.ActionUseItem, ID: "potion_minor"})
	assert.Zero(t, s.Feed().Len())
}

func TestApplyUseAbilityCooldown(t *testing.T) {
	s := newTestSim(t)

	s.Apply(sim.Action{Kind: sim.ActionUseAbility, Index: 0})
	assert.Contains(t, s.Feed().Lines(), "You use Dash. A short burst of speed.")
	assert.False(t, s.Abilities().Ready(0))

	s.Apply(sim.Action{Kind: sim.ActionUseAbility, Index: 0})
	assert.Contains(t, s.Feed().Lines(), "Dash is not ready.")

	for i := 0; i < 51; i++ {
		s.Update(sim.MaxStep)
	}
	assert.True(t, s.Abilities().Ready(0), "cooldown expires with time")
}

func TestApplyActionsIgnoredInWrongMode(t *testing.T) {
	s := newTestSim(t)

	// Purchase outside a shop, equip outside the inventory, deliver
	// outside a conversation: all must leave state untouched.
	s.Inventory().Add("sword_iron")
	s.Apply(sim.Action{Kind: sim.ActionPurchase, Index: 0})
	s.Apply(sim.Action{Kind: sim.ActionToggleEquip, ID: "sword_iron"})
	s.Apply(sim.Action{Kind: sim.ActionDeliver})

	assert.Equal(t, sim.ModeRoam, s.Mode())
	assert.Equal(t, 100, s.Inventory().Gold)
	assert.False(t, s.Inventory().IsEquipped("sword_iron"))
}

func TestInteriorEnterAndExitRestoresPosition(t *testing.T) {
	s := newTestSim(t)
	saved := s.Player().Pos

	s.Apply(sim.Action{Kind: sim.ActionEnterBuilding, ID: "npc_trader"})
	require.Equal(t, "npc_trader", s.InteriorID())
	in, ok := s.World().Interior("npc_trader")
	require.True(t, ok)
	assert.Equal(t, in.Spawn, s.Player().Pos, "teleported to the spawn anchor")

	s.Apply(sim.Action{Kind: sim.ActionExitInterior})
	assert.Empty(t, s.InteriorID())
	assert.Equal(t, saved, s.Player().Pos, "the saved position is restored verbatim")
}

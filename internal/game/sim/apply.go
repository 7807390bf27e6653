package sim

import (
	"errors"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/jcoghill/wander/internal/game/actor"
	"github.com/jcoghill/wander/internal/game/check"
	"github.com/jcoghill/wander/internal/game/dialogue"
	"github.com/jcoghill/wander/internal/game/effect"
	"github.com/jcoghill/wander/internal/game/inventory"
	"github.com/jcoghill/wander/internal/game/quest"
)

// Apply executes one action synchronously between ticks. Actions that
// do not fit the current mode or state are no-ops; conditions the
// player should know about surface on the message feed, everything
// else goes to the debug log. No action can fail the session.
func (s *Simulation) Apply(a Action) {
	switch a.Kind {
	case ActionEnterBuilding:
		if s.mode == ModeRoam && s.interiorID == "" {
			s.enterInterior(a.ID)
		}
	case ActionExitInterior:
		if s.mode == ModeRoam && s.interiorID != "" {
			s.exitInterior()
		}
	case ActionStartTalk:
		s.applyStartTalk(a.ID)
	case ActionSelectOption:
		s.applySelectOption(a.Index)
	case ActionDeliver:
		s.applyDeliver()
	case ActionOpenShop:
		s.applyOpenShop()
	case ActionCloseOverlay:
		s.closeOverlay()
	case ActionPurchase:
		s.applyPurchase(a.Index)
	case ActionToggleEquip:
		s.applyToggleEquip(a.ID)
	case ActionUseItem:
		s.applyUseItem(a.ID)
	case ActionUseAbility:
		s.applyUseAbility(a.Index)
	case ActionOpenInventory:
		if s.mode == ModeRoam {
			s.mode = ModeInventory
		}
	case ActionOpenQuestLog:
		if s.mode == ModeRoam {
			s.mode = ModeQuestLog
		}
	case ActionPickQuest:
		s.applyPickQuest(a.ID)
	}
}

func (s *Simulation) applyStartTalk(id string) {
	if s.mode != ModeRoam {
		return
	}
	n, ok := s.byID[id]
	if !ok {
		return
	}
	if n.Indoors && s.interiorID != n.ID {
		return
	}
	g, ok := s.dialogues.ForNPC(id)
	if !ok {
		// Content gave this NPC nothing to say; the interaction just
		// does not open.
		s.logger.Debug("npc has no dialogue", zap.String("npc", id))
		return
	}
	session, granted := dialogue.Start(g)
	if session == nil {
		return
	}
	s.session = session
	s.sessionNPC = id
	s.mode = ModeDialogue
	s.logger.Debug("conversation started",
		zap.String("npc", id),
		zap.String("session", session.ID))
	s.grantItems(granted)
}

func (s *Simulation) applySelectOption(i int) {
	if s.mode != ModeDialogue || s.session == nil {
		return
	}
	granted, ended, err := s.session.Choose(i)
	if err != nil {
		s.logger.Debug("option rejected", zap.Int("index", i), zap.Error(err))
		return
	}
	s.grantItems(granted)
	if ended {
		s.closeDialogue()
	}
}

func (s *Simulation) applyDeliver() {
	if s.mode != ModeDialogue || s.session == nil {
		return
	}
	n, ok := s.byID[s.sessionNPC]
	if !ok {
		return
	}
	contest := func() check.Result {
		return s.checker.Contest(n.Skill, s.player.Skill(n.Skill), s.player.SkillBonus(n.Skill), n.Difficulty)
	}

	res, outcome := s.tracker.Deliver(n.ID, s.state, s.world, s.dialogues, contest)
	switch outcome {
	case quest.NotAssignee:
		s.feed.Postf("%s is not waiting on anything from you.", npcName(n.ID))
	case quest.MissingItems:
		s.feed.Postf("You do not have everything %s needs.", npcName(n.ID))
	case quest.Delivered:
		if res.Damage > 0 {
			s.player.Damage(res.Damage)
			s.feed.Postf("The handoff goes badly. You take %d damage.", res.Damage)
		} else {
			s.feed.Postf("%s accepts the delivery.", npcName(n.ID))
		}
		s.state.AddGold(res.Gold)
		if res.Completed {
			s.feed.Postf("Quest complete: %s. +%d gold.", res.Quest.Title(), res.Gold)
		} else {
			s.feed.Postf("+%d gold.", res.Gold)
			if step, ok := res.Quest.ActiveStep(); ok {
				s.feed.Postf("Next: %s", step.Goal)
			}
		}
	}
}

func (s *Simulation) applyOpenShop() {
	if !s.CanBrowse() {
		return
	}
	s.closeDialogue()
	s.shop = inventory.NewShop(s.items, s.src)
	s.mode = ModeShop
}

func (s *Simulation) applyPurchase(i int) {
	if s.mode != ModeShop || s.shop == nil {
		return
	}
	def, err := s.shop.Purchase(i, s.state, s.items)
	if err != nil {
		if errors.Is(err, inventory.ErrInsufficientGold) {
			s.feed.Post("You cannot afford that.")
		} else {
			s.logger.Debug("purchase rejected", zap.Int("index", i), zap.Error(err))
		}
		return
	}
	s.feed.Postf("Bought %s for %d gold.", def.Name, inventory.PriceFor(def))
}

func (s *Simulation) applyToggleEquip(id string) {
	if s.mode != ModeInventory {
		return
	}
	res, err := s.state.ToggleEquip(id, s.items)
	if err != nil {
		s.logger.Debug("equip rejected", zap.String("item", id), zap.Error(err))
		return
	}
	switch res {
	case inventory.Equipped:
		s.feed.Postf("Equipped %s.", s.items.NameFor(id))
	case inventory.Unequipped:
		s.feed.Postf("Unequipped %s.", s.items.NameFor(id))
	case inventory.NotEquippable:
		s.feed.Post("You cannot equip that.")
	}
}

func (s *Simulation) applyUseItem(id string) {
	if s.mode != ModeInventory {
		return
	}
	if !s.state.Holds(id) {
		return
	}
	def, ok := s.items.Item(id)
	if !ok || def.Category != inventory.CategoryConsumable {
		s.feed.Post("Nothing happens.")
		return
	}

	switch effect.Classify(def.Name) {
	case effect.KindHeal:
		s.state.Remove(id)
		s.player.Heal(actor.HealAmount)
		s.feed.Postf("You use %s and recover %d health.", def.Name, actor.HealAmount)
	default:
		active := s.randomBuff(def.Name)
		s.state.Remove(id)
		s.player.Effects.Apply(active)
		s.feed.Postf("You use %s. %s takes hold.", def.Name, active.Name)
	}
}

// randomBuff draws a buff from the effect catalog. An empty catalog
// falls back to a plain speed buff named after the consumable.
func (s *Simulation) randomBuff(fallbackName string) effect.Active {
	if len(s.effects) == 0 {
		return effect.Active{Name: fallbackName, Type: effect.TypeSpeed, Value: BuffValue, Time: BuffDuration}
	}
	d := s.effects[s.src.Intn(len(s.effects))]
	return effect.Active{Name: d.Name, Type: d.Type, Value: BuffValue, Time: BuffDuration}
}

func (s *Simulation) applyUseAbility(slot int) {
	if s.mode != ModeRoam {
		return
	}
	ab, fired := s.bar.Use(slot)
	if ab.ID == "" {
		return
	}
	if !fired {
		s.feed.Postf("%s is not ready.", ab.Name)
		return
	}
	if ab.Description != "" {
		s.feed.Postf("You use %s. %s", ab.Name, ab.Description)
	} else {
		s.feed.Postf("You use %s.", ab.Name)
	}
}

func (s *Simulation) applyPickQuest(id string) {
	if s.mode != ModeQuestLog {
		return
	}
	outcome, err := s.tracker.Start(id, s.state, s.world, s.dialogues)
	if err != nil {
		s.logger.Debug("quest start rejected", zap.String("quest", id), zap.Error(err))
		return
	}
	switch outcome {
	case quest.Started:
		q, _ := s.tracker.Get(id)
		s.feed.Postf("Quest started: %s.", q.Title())
		if step, ok := q.ActiveStep(); ok {
			s.feed.Postf("Goal: %s", step.Goal)
		}
	case quest.AlreadyActive:
		s.feed.Post("That quest is already underway.")
	case quest.AlreadyCompleted:
		s.feed.Post("That quest is finished.")
	}
}

// grantItems awards each granted item id, paying the grant reward per
// event. An item already held is not re-added but still pays, so the
// purse line makes the repeat visible.
func (s *Simulation) grantItems(ids []string) {
	for _, id := range ids {
		added := s.state.Add(id)
		s.state.AddGold(GrantGold)
		if added {
			s.feed.Postf("Received %s.", s.items.NameFor(id))
		} else {
			s.feed.Postf("+%d gold.", GrantGold)
		}
	}
}

func (s *Simulation) closeOverlay() {
	switch s.mode {
	case ModeDialogue:
		s.closeDialogue()
	case ModeShop:
		s.shop = nil
		s.mode = ModeRoam
	case ModeInventory, ModeQuestLog:
		s.mode = ModeRoam
	}
}

func (s *Simulation) closeDialogue() {
	s.session = nil
	s.sessionNPC = ""
	s.mode = ModeRoam
}

// npcName turns an npc id into a presentable name: "npc_old_marla"
// becomes "Old Marla".
func npcName(id string) string {
	words := strings.Split(strings.TrimPrefix(id, "npc_"), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

package quest

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jcoghill/wander/internal/game/check"
)

// Bag is the slice of the player's inventory the tracker needs: requirement
// checks before a delivery and item consumption when it resolves.
type Bag interface {
	Holds(id string) bool
	Remove(id string) bool
}

// Spawner places and inspects world pickups.
type Spawner interface {
	// HasPickup reports whether a pickup for the item id already lies
	// somewhere in the world.
	HasPickup(itemID string) bool
	// SpawnPickup drops exactly one pickup for the item id at a spot of the
	// world's choosing.
	SpawnPickup(itemID string)
}

// GrantIndex reports which item ids conversations can hand out. Those items
// are never spawned as pickups; talking is their only source.
type GrantIndex interface {
	DialogueGrantable(itemID string) bool
}

// ContestFunc runs the skill contest gating a delivery. The tracker calls it
// exactly once per resolved delivery and never for rejected ones.
type ContestFunc func() check.Result

// StartOutcome reports what Start did.
type StartOutcome int

const (
	// Started means the quest moved to in-progress.
	Started StartOutcome = iota
	// AlreadyActive means the quest was in-progress; nothing changed.
	AlreadyActive
	// AlreadyCompleted means the quest was finished; nothing changed.
	AlreadyCompleted
)

// DeliverOutcome reports what Deliver did.
type DeliverOutcome int

const (
	// Delivered means the step resolved and the quest advanced.
	Delivered DeliverOutcome = iota
	// NotAssignee means the NPC owns no deliverable step right now.
	NotAssignee
	// MissingItems means the NPC owns the active step but the bag lacks at
	// least one required item.
	MissingItems
)

// DeliverResult reports everything a resolved delivery changed. The caller
// applies Gold and Damage to the player; the tracker has no view of vitals
// or currency.
type DeliverResult struct {
	Quest     *State
	Step      Step         // the step that was just resolved
	Check     check.Result // the contest that gated it
	Removed   []string     // item ids consumed from the bag
	Gold      int          // StepReward, or CompletionReward on the final step
	Damage    int          // DeliveryDamage when the contest failed, else 0
	Completed bool         // the quest reached completed
}

// Tracker owns every quest's progress for one session. Step assignees are
// fixed at construction by walking the NPC list round-robin across all
// quests' steps in catalog order, so the same content always produces the
// same assignments.
type Tracker struct {
	quests map[string]*State
	order  []string
	logger *zap.Logger
}

// NewTracker builds a Tracker over defs with assignments drawn from npcIDs.
//
// Precondition: logger must be non-nil; defs must have unique IDs.
// Postcondition: every quest is not-started; with no NPCs every assignment
// is empty and the affected steps are simply undeliverable.
func NewTracker(defs []*Definition, npcIDs []string, logger *zap.Logger) *Tracker {
	t := &Tracker{
		quests: make(map[string]*State, len(defs)),
		order:  make([]string, 0, len(defs)),
		logger: logger,
	}
	cursor := 0
	for _, def := range defs {
		if _, exists := t.quests[def.ID]; exists {
			continue
		}
		st := &State{
			Def:       def,
			Status:    StatusNotStarted,
			Assignees: make([]string, len(def.Steps)),
		}
		for i := range def.Steps {
			if len(npcIDs) == 0 {
				logger.Warn("no NPCs available to assign quest step",
					zap.String("quest", def.ID),
					zap.Int("step", i))
				continue
			}
			st.Assignees[i] = npcIDs[cursor%len(npcIDs)]
			cursor++
		}
		t.quests[def.ID] = st
		t.order = append(t.order, def.ID)
	}
	return t
}

// Get returns the state for a quest id.
//
// Postcondition: ok is true iff the id is tracked.
func (t *Tracker) Get(id string) (*State, bool) {
	st, ok := t.quests[id]
	return st, ok
}

// All returns every quest state in catalog order.
func (t *Tracker) All() []*State {
	out := make([]*State, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.quests[id])
	}
	return out
}

// Main returns the first main-line quest in catalog order.
//
// Postcondition: ok is false when the catalog has no main quest.
func (t *Tracker) Main() (*State, bool) {
	for _, id := range t.order {
		if t.quests[id].Def.IsMain {
			return t.quests[id], true
		}
	}
	return nil, false
}

// Start moves a not-started quest to in-progress and spawns the items its
// first step requires. Starting an active or finished quest changes
// nothing.
//
// Postcondition: on Started, Status is in-progress (or completed for a
// zero-step quest) and CurrentStep is 0.
func (t *Tracker) Start(id string, bag Bag, world Spawner, grants GrantIndex) (StartOutcome, error) {
	st, ok := t.quests[id]
	if !ok {
		return AlreadyCompleted, fmt.Errorf("quest: Tracker.Start: unknown quest %q", id)
	}
	switch st.Status {
	case StatusInProgress:
		return AlreadyActive, nil
	case StatusCompleted:
		return AlreadyCompleted, nil
	}

	st.Status = StatusInProgress
	st.CurrentStep = 0
	t.logger.Info("quest started",
		zap.String("quest", id),
		zap.String("title", st.Title()),
		zap.Int("steps", len(st.Def.Steps)))

	if len(st.Def.Steps) == 0 {
		// Nothing to deliver. The quest is over the moment it begins, and
		// no delivery ever happens, so no reward is owed.
		st.Status = StatusCompleted
		t.logger.Warn("quest has no steps, completing immediately", zap.String("quest", id))
		return Started, nil
	}

	t.SpawnStepItems(st, bag, world, grants)
	return Started, nil
}

// SpawnStepItems places pickups for the active step's requirements. An item
// is skipped when a conversation can grant it, when the bag already holds
// it, or when a pickup for it already exists, so repeated calls never
// duplicate pickups.
//
// Postcondition: at most one pickup exists per required item id.
func (t *Tracker) SpawnStepItems(st *State, bag Bag, world Spawner, grants GrantIndex) {
	step, ok := st.ActiveStep()
	if !ok {
		return
	}
	for _, itemID := range step.Requires {
		if grants.DialogueGrantable(itemID) || bag.Holds(itemID) || world.HasPickup(itemID) {
			continue
		}
		world.SpawnPickup(itemID)
		t.logger.Debug("spawned quest item",
			zap.String("quest", st.Def.ID),
			zap.Int("step", st.CurrentStep),
			zap.String("item", itemID))
	}
}

// CanDeliver reports whether npcID owns the active step of some in-progress
// quest and the bag holds everything that step requires. The conversation
// overlay uses this to decide whether to offer a handoff.
func (t *Tracker) CanDeliver(npcID string, bag Bag) bool {
	_, _, outcome := t.findDeliverable(npcID, bag)
	return outcome == Delivered
}

// Deliver resolves the active step assigned to npcID: the contest runs once,
// required items leave the bag whatever the outcome, and the quest advances.
// A failed contest costs DeliveryDamage but never blocks the step.
//
// Precondition: contest must be non-nil.
// Postcondition: on Delivered, CurrentStep increased by one; on the final
// step Status is completed and Gold is CompletionReward, otherwise Gold is
// StepReward and the next step's items are spawned. On any other outcome
// nothing changed and contest was never called.
func (t *Tracker) Deliver(npcID string, bag Bag, world Spawner, grants GrantIndex, contest ContestFunc) (*DeliverResult, DeliverOutcome) {
	st, step, outcome := t.findDeliverable(npcID, bag)
	if outcome != Delivered {
		return nil, outcome
	}

	result := contest()

	removed := make([]string, 0, len(step.Requires))
	for _, itemID := range step.Requires {
		if bag.Remove(itemID) {
			removed = append(removed, itemID)
		}
	}

	res := &DeliverResult{
		Quest:   st,
		Step:    step,
		Check:   result,
		Removed: removed,
	}
	if !result.Success {
		res.Damage = DeliveryDamage
	}

	st.CurrentStep++
	if st.CurrentStep == len(st.Def.Steps) {
		st.Status = StatusCompleted
		res.Gold = CompletionReward
		res.Completed = true
	} else {
		res.Gold = StepReward
		t.SpawnStepItems(st, bag, world, grants)
	}

	t.logger.Info("quest step delivered",
		zap.String("quest", st.Def.ID),
		zap.String("npc", npcID),
		zap.Int("step", st.CurrentStep-1),
		zap.Bool("check_success", result.Success),
		zap.Bool("completed", res.Completed),
		zap.Int("gold", res.Gold))
	return res, Delivered
}

// findDeliverable locates the first in-progress quest, in catalog order,
// whose active step is assigned to npcID.
func (t *Tracker) findDeliverable(npcID string, bag Bag) (*State, Step, DeliverOutcome) {
	if npcID == "" {
		return nil, Step{}, NotAssignee
	}
	for _, id := range t.order {
		st := t.quests[id]
		if st.ActiveAssignee() != npcID {
			continue
		}
		step, ok := st.ActiveStep()
		if !ok {
			continue
		}
		for _, itemID := range step.Requires {
			if !bag.Holds(itemID) {
				return st, step, MissingItems
			}
		}
		return st, step, Delivered
	}
	return nil, Step{}, NotAssignee
}

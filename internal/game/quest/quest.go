// Package quest provides the quest catalog and the delivery-driven state
// machine that advances it.
package quest

import (
	"errors"
	"fmt"
)

// Status of a quest. The machine only ever moves forward:
// not-started, then in-progress, then completed.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Gold rewards and the penalty for a botched delivery.
const (
	// StepReward is granted for each intermediate step delivered.
	StepReward = 20
	// CompletionReward is granted when the final step completes the quest.
	CompletionReward = 50
	// DeliveryDamage is the HP lost when a delivery's skill contest fails.
	// The step still advances; the handoff just goes badly.
	DeliveryDamage = 10
)

// Step is one delivery goal within a quest.
type Step struct {
	// Goal describes what the step asks for.
	Goal string
	// LocationHint points the player somewhere useful.
	LocationHint string
	// Requires lists the item ids that must be held to deliver; all of them
	// are consumed when the step resolves.
	Requires []string
}

// Definition is the immutable description of a quest.
type Definition struct {
	ID     string
	Title  string
	IsMain bool
	Steps  []Step
}

// Validate checks that the Definition satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff ID and Title are non-empty.
func (d *Definition) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if d.Title == "" {
		errs = append(errs, errors.New("Title must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("quest validation failed: %v", errs)
	}
	return nil
}

// State is the mutable progress of one quest.
//
// Invariant: CurrentStep only increases while Status is in-progress;
// reaching len(Def.Steps) freezes it and flips Status to completed.
type State struct {
	Def         *Definition
	Status      Status
	CurrentStep int
	// Assignees holds the NPC id responsible for each step, fixed at
	// tracker construction. An empty entry means no NPC was available; the
	// step can never be delivered, and the session keeps running anyway.
	Assignees []string
}

// ActiveStep returns the step awaiting delivery.
//
// Postcondition: ok is true iff Status is in-progress, in which case the
// returned step is Def.Steps[CurrentStep].
func (s *State) ActiveStep() (Step, bool) {
	if s.Status != StatusInProgress || s.CurrentStep >= len(s.Def.Steps) {
		return Step{}, false
	}
	return s.Def.Steps[s.CurrentStep], true
}

// ActiveAssignee returns the NPC id responsible for the step awaiting
// delivery, or empty when the quest is not in-progress or the step was
// never assigned.
func (s *State) ActiveAssignee() string {
	if s.Status != StatusInProgress || s.CurrentStep >= len(s.Assignees) {
		return ""
	}
	return s.Assignees[s.CurrentStep]
}

// Title returns the quest's display title, falling back to its id.
func (s *State) Title() string {
	if s.Def.Title != "" {
		return s.Def.Title
	}
	return s.Def.ID
}

// Package check provides the randomness abstraction and the skill contest
// used to gate quest deliveries.
package check

import "fmt"

// Result holds the full audit trail for a single skill contest.
//
// Postcondition: Success == (Roll < Threshold()).
type Result struct {
	Skill      string  // skill the contest was rolled against
	Base       float64 // actor's rating in the skill
	Bonus      float64 // additive modifier from active effects
	Difficulty float64 // opposing rating
	Roll       float64 // uniform draw in [0, 1)
	Success    bool
}

// Threshold returns the cutoff the roll was compared against. The contest
// succeeds when the roll lands strictly below it, so equal ratings give even
// odds and each point of advantage shifts the odds by the same amount.
func (r Result) Threshold() float64 {
	return r.Base + r.Bonus - r.Difficulty + 0.5
}

// String returns a human-readable audit string in the format:
//
//	"charisma 0.231 vs 0.600 → success"
//
// Precondition: r.Skill is non-empty.
func (r Result) String() string {
	if r.Skill == "" {
		panic("check: Result.String() precondition violated: Skill must be non-empty")
	}
	outcome := "failure"
	if r.Success {
		outcome = "success"
	}
	return fmt.Sprintf("%s %.3f vs %.3f → %s", r.Skill, r.Roll, r.Threshold(), outcome)
}

// Source is the randomness provider for skill contests and world generation.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Float64 returns a random float64 in [0, 1).
	Float64() float64

	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Passes reports whether a roll wins a contest with the given ratings.
//
// Postcondition: return value == (roll < base+bonus-difficulty+0.5).
func Passes(roll, base, bonus, difficulty float64) bool {
	return roll < base+bonus-difficulty+0.5
}

// Contest draws a roll from src and evaluates it against the given ratings.
//
// Precondition: src must be non-nil.
// Postcondition: result.Success == Passes(result.Roll, base, bonus, difficulty).
func Contest(skill string, base, bonus, difficulty float64, src Source) Result {
	roll := src.Float64()
	return Result{
		Skill:      skill,
		Base:       base,
		Bonus:      bonus,
		Difficulty: difficulty,
		Roll:       roll,
		Success:    Passes(roll, base, bonus, difficulty),
	}
}

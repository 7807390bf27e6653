package check

import "go.uber.org/zap"

// Checker wraps a Source and logger to provide logged skill contests.
// All contests are logged at debug level with skill, ratings, roll, and outcome.
type Checker struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedChecker creates a Checker that rolls with src and logs each
// contest to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedChecker(src Source, logger *zap.Logger) *Checker {
	return &Checker{src: src, logger: logger}
}

// Contest rolls a skill contest and logs the result at debug level.
//
// Postcondition: result logged; result.Success == Passes(result.Roll, base, bonus, difficulty).
func (c *Checker) Contest(skill string, base, bonus, difficulty float64) Result {
	result := Contest(skill, base, bonus, difficulty, c.src)
	c.logger.Debug("skill contest",
		zap.String("skill", result.Skill),
		zap.Float64("base", result.Base),
		zap.Float64("bonus", result.Bonus),
		zap.Float64("difficulty", result.Difficulty),
		zap.Float64("roll", result.Roll),
		zap.Float64("threshold", result.Threshold()),
		zap.Bool("success", result.Success),
	)
	return result
}

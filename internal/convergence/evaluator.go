package convergence

import (
	"time"

	"github.com/oaz/profiler/internal/profile"
)

// Reason explains why a session stopped.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonMaxItems  Reason = "max_items"
	ReasonTimeout   Reason = "timeout"
	ReasonConverged Reason = "converged"
	ReasonExhausted Reason = "catalog_exhausted"
)

// Config holds the stopping thresholds.
type Config struct {
	// MinItems is the floor before convergence may stop the session.
	MinItems int

	// MaxItems is the hard ceiling on issued items.
	MaxItems int

	// Timeout is the hard wall-clock ceiling from session start.
	Timeout time.Duration

	// CIThreshold is the confidence interval at or below which a
	// competency counts as converged.
	CIThreshold float64

	// MinConvergedCompetencies is how many competencies must be
	// converged for the session to stop early.
	MinConvergedCompetencies int
}

// DefaultConfig returns the production stopping thresholds.
func DefaultConfig() Config {
	return Config{
		MinItems:                 8,
		MaxItems:                 12,
		Timeout:                  12 * time.Minute,
		CIThreshold:              12,
		MinConvergedCompetencies: 6,
	}
}

// Evaluator decides whether a session should stop. Invoked after every
// update.
type Evaluator struct {
	cfg Config
}

// NewEvaluator creates an evaluator with the given thresholds.
func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Config returns the evaluator's thresholds.
func (e *Evaluator) Config() Config {
	return e.cfg
}

// Evaluate applies the stopping rules in strict precedence order:
// max items, then timeout, then CI convergence. The first two are hard
// ceilings and win even when convergence has not been reached.
func (e *Evaluator) Evaluate(prof *profile.Profile, itemsAnswered int, elapsed time.Duration) (bool, Reason) {
	if itemsAnswered >= e.cfg.MaxItems {
		return true, ReasonMaxItems
	}
	if elapsed >= e.cfg.Timeout {
		return true, ReasonTimeout
	}
	if itemsAnswered >= e.cfg.MinItems &&
		prof.ConvergedCount(e.cfg.CIThreshold) >= e.cfg.MinConvergedCompetencies {
		return true, ReasonConverged
	}
	return false, ReasonNone
}

package scoring

import (
	"math"

	"github.com/oaz/profiler/internal/catalog"
	"github.com/oaz/profiler/internal/profile"
)

// Probability returns the two-parameter logistic model probability of a
// correct response: P = 1 / (1 + exp(-a * (theta - b))). For any positive
// a the result is strictly inside (0, 1) and strictly increasing in theta.
func Probability(theta, a, b float64) float64 {
	return 1.0 / (1.0 + math.Exp(-a*(theta-b)))
}

// Information returns the Fisher information of an item at ability theta:
// I = a^2 * P * (1 - P). It peaks where difficulty matches ability, which
// is what makes it the selection criterion for maximally discriminating
// items.
func Information(theta, a, b float64) float64 {
	p := Probability(theta, a, b)
	return a * a * p * (1 - p)
}

// Engine updates competency estimates from graded responses.
type Engine struct {
	cfg Config
}

// NewEngine creates a scoring engine with the given constants.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's constants.
func (e *Engine) Config() Config {
	return e.cfg
}

// Apply folds one graded response into the item's competency state.
// observed is the graded score in [0,1], treated as a soft label so that
// partial-credit open-ended grading moves theta proportionally.
//
// The update is a gradient step toward the observed performance:
// theta' = theta + L * a * (observed - P). The confidence interval shrinks
// by a fixed factor per answer down to a floor, independent of the update
// direction: more data always reduces uncertainty.
func (e *Engine) Apply(state *profile.CompetencyState, item catalog.Item, observed float64) {
	if observed < 0 {
		observed = 0
	}
	if observed > 1 {
		observed = 1
	}

	p := Probability(state.Theta, item.Discrimination, item.Difficulty)
	state.Theta += e.cfg.LearningRate * item.Discrimination * (observed - p)

	if state.Theta > e.cfg.ThetaBound {
		state.Theta = e.cfg.ThetaBound
	}
	if state.Theta < -e.cfg.ThetaBound {
		state.Theta = -e.cfg.ThetaBound
	}

	state.ItemsAnswered++
	state.CI = e.nextCI(state.CI)
}

// nextCI shrinks a confidence interval by one answer's worth of evidence.
// Monotonically non-increasing and never below the floor.
func (e *Engine) nextCI(ci float64) float64 {
	next := ci * e.cfg.CIDecay
	if next < e.cfg.CIFloor {
		next = e.cfg.CIFloor
	}
	if next > ci {
		next = ci
	}
	return next
}

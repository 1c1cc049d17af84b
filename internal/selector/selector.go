package selector

import (
	"context"
	"errors"

	"github.com/oaz/profiler/internal/catalog"
	"github.com/oaz/profiler/internal/competency"
	"github.com/oaz/profiler/internal/profile"
	"github.com/oaz/profiler/internal/scoring"
)

// ErrNoEligibleItems indicates the catalog is exhausted. Not a fatal
// error: the orchestrator treats it as forced convergence.
var ErrNoEligibleItems = errors.New("no eligible items")

// History is the selection-relevant slice of session history.
type History struct {
	// Asked holds the IDs of items already presented this session.
	Asked map[string]bool

	// LastType and LastCompetency describe the immediately preceding
	// item, for diversification. Zero values mean no previous item.
	LastType       catalog.ItemType
	LastCompetency competency.Competency
}

// Config holds the weights of the selection objective.
type Config struct {
	// UncertaintyWeight scores candidates by their competency's current
	// CI, driving information gain where it is most needed.
	UncertaintyWeight float64

	// InformationWeight scores candidates by the Fisher information of
	// the item at the competency's current theta.
	InformationWeight float64

	// RepeatCompetencyPenalty is subtracted when the candidate's
	// competency equals the previous item's.
	RepeatCompetencyPenalty float64

	// RepeatTypePenalty is subtracted when the candidate's type equals
	// the previous item's.
	RepeatTypePenalty float64

	// DiscriminationFloor is the a-parameter below which candidates are
	// deprioritized (not excluded). Must be >= 1.
	DiscriminationFloor float64

	// BelowFloorPenalty is subtracted from below-floor candidates.
	BelowFloorPenalty float64
}

// DefaultConfig returns the production selection weights.
func DefaultConfig() Config {
	return Config{
		UncertaintyWeight:       0.5,
		InformationWeight:       10.0,
		RepeatCompetencyPenalty: 5.0,
		RepeatTypePenalty:       3.0,
		DiscriminationFloor:     1.0,
		BelowFloorPenalty:       8.0,
	}
}

// Adaptive chooses the next item by scoring every eligible candidate
// with a weighted objective. Selection is fully deterministic: candidates
// arrive ordered by ID and ties keep the lowest ID.
type Adaptive struct {
	source catalog.Source
	cfg    Config
}

// NewAdaptive creates an adaptive selector over the given item source.
func NewAdaptive(source catalog.Source, cfg Config) *Adaptive {
	return &Adaptive{source: source, cfg: cfg}
}

// Next returns the best-scoring eligible item.
func (s *Adaptive) Next(ctx context.Context, prof *profile.Profile, hist History) (catalog.Item, error) {
	candidates, err := s.source.EligibleItems(ctx, "", hist.Asked)
	if err != nil {
		return catalog.Item{}, err
	}
	if len(candidates) == 0 {
		return catalog.Item{}, ErrNoEligibleItems
	}

	best := candidates[0]
	bestScore := s.scoreItem(best, prof, hist)
	for _, it := range candidates[1:] {
		// Strict inequality keeps the lowest ID on ties.
		if score := s.scoreItem(it, prof, hist); score > bestScore {
			best = it
			bestScore = score
		}
	}
	return best, nil
}

// scoreItem computes the selection objective for one candidate.
// Higher is better.
func (s *Adaptive) scoreItem(it catalog.Item, prof *profile.Profile, hist History) float64 {
	state := prof.State(it.Competency)
	if state == nil {
		return 0
	}

	score := s.cfg.UncertaintyWeight * state.CI
	score += s.cfg.InformationWeight * scoring.Information(state.Theta, it.Discrimination, it.Difficulty)

	if hist.LastCompetency != "" && it.Competency == hist.LastCompetency {
		score -= s.cfg.RepeatCompetencyPenalty
	}
	if hist.LastType != "" && it.Type == hist.LastType {
		score -= s.cfg.RepeatTypePenalty
	}
	if it.Discrimination < s.cfg.DiscriminationFloor {
		score -= s.cfg.BelowFloorPenalty
	}

	return score
}

package profile

import (
	"github.com/oaz/profiler/internal/competency"
)

// thetaScoreSlope maps the nominal theta range -3..+3 onto 0..100.
const thetaScoreSlope = 50.0 / 3.0

// CompetencyState is the estimation state for one competency in one
// session. Theta is the single source of truth; the 0-100 score is always
// recomputed from it, never stored or drifted independently.
type CompetencyState struct {
	Competency    competency.Competency
	Theta         float64 // latent ability estimate
	CI            float64 // half-width uncertainty band, in score units
	ItemsAnswered int
}

// Score derives the user-facing 0-100 score from theta.
func (s *CompetencyState) Score() float64 {
	return ScoreForTheta(s.Theta)
}

// Level returns the proficiency band for the derived score.
func (s *CompetencyState) Level() competency.Level {
	return competency.LevelForScore(s.Score())
}

// ScoreForTheta converts a theta value to the 0-100 score scale,
// clamped at the ends. The mapping is fixed and strictly monotonic
// inside the clamp region: -3 -> 0, 0 -> 50, +3 -> 100.
func ScoreForTheta(theta float64) float64 {
	score := 50 + theta*thetaScoreSlope
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

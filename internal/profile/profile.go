package profile

import (
	"fmt"

	"github.com/oaz/profiler/internal/competency"
)

// Profile holds the per-competency estimation state for one session.
// It is owned by the session orchestrator and must only be mutated through
// the single serialized per-session pipeline.
type Profile struct {
	states map[competency.Competency]*CompetencyState
}

// New creates a Profile with every competency at theta 0 and the given
// initial confidence interval.
func New(initialCI float64) *Profile {
	p := &Profile{states: make(map[competency.Competency]*CompetencyState)}
	for _, c := range competency.All() {
		p.states[c] = &CompetencyState{
			Competency: c,
			Theta:      0,
			CI:         initialCI,
		}
	}
	return p
}

// SeedFromCalibration shifts every competency's initial theta by a shared
// offset derived from the competency-agnostic calibration (P0) score.
// A neutral 0.5 score leaves all thetas at zero.
func (p *Profile) SeedFromCalibration(gradedScore, weight float64) {
	offset := weight * (gradedScore - 0.5)
	for _, s := range p.states {
		s.Theta += offset
	}
}

// State returns the state for a competency, or nil if unknown.
func (p *Profile) State(c competency.Competency) *CompetencyState {
	return p.states[c]
}

// States returns all competency states in declaration order.
func (p *Profile) States() []*CompetencyState {
	out := make([]*CompetencyState, 0, len(p.states))
	for _, c := range competency.All() {
		if s, ok := p.states[c]; ok {
			out = append(out, s)
		}
	}
	return out
}

// GlobalScore returns the mean of the derived per-competency scores.
func (p *Profile) GlobalScore() float64 {
	states := p.States()
	if len(states) == 0 {
		return 50
	}
	sum := 0.0
	for _, s := range states {
		sum += s.Score()
	}
	return sum / float64(len(states))
}

// GlobalLevel returns the band for the global score.
func (p *Profile) GlobalLevel() competency.Level {
	return competency.LevelForScore(p.GlobalScore())
}

// ConvergedCount returns how many competencies have CI at or below the
// given threshold.
func (p *Profile) ConvergedCount(ciThreshold float64) int {
	n := 0
	for _, s := range p.states {
		if s.CI <= ciThreshold {
			n++
		}
	}
	return n
}

// Validate checks the structural invariants that must hold for any
// well-formed profile. A violation means corrupted state: the session
// must be abandoned rather than finalized.
func (p *Profile) Validate() error {
	for _, s := range p.states {
		if s.CI < 0 {
			return fmt.Errorf("competency %s: negative confidence interval %g", s.Competency, s.CI)
		}
		if s.ItemsAnswered < 0 {
			return fmt.Errorf("competency %s: negative answer count %d", s.Competency, s.ItemsAnswered)
		}
	}
	return nil
}

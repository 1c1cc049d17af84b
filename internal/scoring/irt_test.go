package scoring

import (
	"math"
	"testing"

	"github.com/oaz/profiler/internal/catalog"
	"github.com/oaz/profiler/internal/profile"
)

func TestProbability_Bounds(t *testing.T) {
	for _, theta := range []float64{-6, -3, 0, 3, 6} {
		for _, a := range []float64{0.5, 1.0, 1.8} {
			for _, b := range []float64{-1, 0, 2} {
				p := Probability(theta, a, b)
				if p <= 0 || p >= 1 {
					t.Errorf("Probability(%v, %v, %v) = %v, want strictly inside (0,1)", theta, a, b, p)
				}
			}
		}
	}
}

func TestProbability_MonotoneInTheta(t *testing.T) {
	prev := 0.0
	for theta := -6.0; theta <= 6.0; theta += 0.25 {
		p := Probability(theta, 1.5, 0.5)
		if p <= prev {
			t.Fatalf("P not strictly increasing at theta=%v: %v <= %v", theta, p, prev)
		}
		prev = p
	}
}

func TestProbability_HalfAtDifficulty(t *testing.T) {
	p := Probability(1.2, 1.7, 1.2)
	if math.Abs(p-0.5) > 1e-12 {
		t.Errorf("P(theta=b) = %v, want 0.5", p)
	}
}

func TestInformation_PeaksAtAbility(t *testing.T) {
	at := Information(0.5, 1.5, 0.5)
	for _, b := range []float64{-1, 0, 1.5, 2} {
		if off := Information(0.5, 1.5, b); off >= at {
			t.Errorf("Information at b=%v (%v) >= information at matched difficulty (%v)", b, off, at)
		}
	}
}

func testItem(a, b float64) catalog.Item {
	return catalog.Item{
		ID:             "itm",
		Type:           catalog.TypeMultipleChoice,
		Discrimination: a,
		Difficulty:     b,
	}
}

func TestApply_DirectionOfUpdate(t *testing.T) {
	e := NewEngine(DefaultConfig())

	correct := &profile.CompetencyState{CI: 30}
	e.Apply(correct, testItem(1.5, 0), 1.0)
	if correct.Theta <= 0 {
		t.Errorf("theta after correct answer = %v, want > 0", correct.Theta)
	}

	wrong := &profile.CompetencyState{CI: 30}
	e.Apply(wrong, testItem(1.5, 0), 0.0)
	if wrong.Theta >= 0 {
		t.Errorf("theta after wrong answer = %v, want < 0", wrong.Theta)
	}
}

func TestApply_SoftLabelPartialCredit(t *testing.T) {
	e := NewEngine(DefaultConfig())

	full := &profile.CompetencyState{CI: 30}
	half := &profile.CompetencyState{CI: 30}
	e.Apply(full, testItem(1.5, 0), 1.0)
	e.Apply(half, testItem(1.5, 0), 0.75)

	if half.Theta <= 0 || half.Theta >= full.Theta {
		t.Errorf("partial credit theta %v, want in (0, %v)", half.Theta, full.Theta)
	}
}

func TestApply_ObservedClamped(t *testing.T) {
	e := NewEngine(DefaultConfig())

	high := &profile.CompetencyState{CI: 30}
	one := &profile.CompetencyState{CI: 30}
	e.Apply(high, testItem(1.5, 0), 3.0)
	e.Apply(one, testItem(1.5, 0), 1.0)
	if high.Theta != one.Theta {
		t.Errorf("observed above 1 not clamped: %v != %v", high.Theta, one.Theta)
	}
}

func TestApply_ThetaBound(t *testing.T) {
	cfg := DefaultConfig()
	e := NewEngine(cfg)
	state := &profile.CompetencyState{CI: 30}

	// Easy items answered correctly over and over push theta up, but
	// never past the safety bound.
	for i := 0; i < 500; i++ {
		e.Apply(state, testItem(1.8, -1), 1.0)
		if state.Theta > cfg.ThetaBound {
			t.Fatalf("theta %v escaped bound %v after %d updates", state.Theta, cfg.ThetaBound, i+1)
		}
	}

	for i := 0; i < 500; i++ {
		e.Apply(state, testItem(1.8, 2), 0.0)
		if state.Theta < -cfg.ThetaBound {
			t.Fatalf("theta %v escaped bound %v", state.Theta, -cfg.ThetaBound)
		}
	}
}

func TestApply_CIMonotoneAndFloored(t *testing.T) {
	cfg := DefaultConfig()
	e := NewEngine(cfg)
	state := &profile.CompetencyState{CI: cfg.InitialCI}

	prev := state.CI
	for i := 0; i < 40; i++ {
		// Direction of the answer must not matter to CI.
		observed := float64(i % 2)
		e.Apply(state, testItem(1.5, 0), observed)
		if state.CI > prev {
			t.Fatalf("CI increased from %v to %v at step %d", prev, state.CI, i)
		}
		if state.CI < cfg.CIFloor {
			t.Fatalf("CI %v fell below floor %v", state.CI, cfg.CIFloor)
		}
		prev = state.CI
	}
	if state.CI != cfg.CIFloor {
		t.Errorf("CI after 40 answers = %v, want floor %v", state.CI, cfg.CIFloor)
	}
	if state.ItemsAnswered != 40 {
		t.Errorf("ItemsAnswered = %d, want 40", state.ItemsAnswered)
	}
}

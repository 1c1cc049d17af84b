package convergence

import (
	"testing"
	"time"

	"github.com/oaz/profiler/internal/competency"
	"github.com/oaz/profiler/internal/profile"
)

// convergedProfile returns a profile with n competencies at or below the
// default CI threshold.
func convergedProfile(n int) *profile.Profile {
	p := profile.New(30)
	for i, c := range competency.All() {
		if i >= n {
			break
		}
		p.State(c).CI = 12
	}
	return p
}

func TestEvaluate_Continue(t *testing.T) {
	e := NewEvaluator(DefaultConfig())
	stop, reason := e.Evaluate(profile.New(30), 5, time.Minute)
	if stop || reason != ReasonNone {
		t.Fatalf("expected to continue, got stop=%v reason=%s", stop, reason)
	}
}

func TestEvaluate_MaxItemsWinsOverEverything(t *testing.T) {
	e := NewEvaluator(DefaultConfig())

	// Even with full convergence and an expired clock, max items is
	// reported first.
	stop, reason := e.Evaluate(convergedProfile(9), 12, time.Hour)
	if !stop || reason != ReasonMaxItems {
		t.Fatalf("got stop=%v reason=%s, want max_items", stop, reason)
	}

	stop, reason = e.Evaluate(profile.New(30), 12, 0)
	if !stop || reason != ReasonMaxItems {
		t.Fatalf("unconverged profile at max items: stop=%v reason=%s", stop, reason)
	}
}

func TestEvaluate_TimeoutBeatsConvergence(t *testing.T) {
	e := NewEvaluator(DefaultConfig())
	stop, reason := e.Evaluate(convergedProfile(9), 9, 12*time.Minute)
	if !stop || reason != ReasonTimeout {
		t.Fatalf("got stop=%v reason=%s, want timeout", stop, reason)
	}
}

func TestEvaluate_ConvergenceBoundaries(t *testing.T) {
	e := NewEvaluator(DefaultConfig())

	// One item short of the minimum must not stop, no matter how
	// certain the profile is.
	stop, _ := e.Evaluate(convergedProfile(9), 7, time.Minute)
	if stop {
		t.Fatal("stopped at minItems-1")
	}

	// At the minimum with enough converged competencies it stops.
	stop, reason := e.Evaluate(convergedProfile(6), 8, time.Minute)
	if !stop || reason != ReasonConverged {
		t.Fatalf("got stop=%v reason=%s, want converged", stop, reason)
	}

	// One competency short keeps going.
	stop, _ = e.Evaluate(convergedProfile(5), 8, time.Minute)
	if stop {
		t.Fatal("stopped with too few converged competencies")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MinItems != 8 || cfg.MaxItems != 12 {
		t.Errorf("item bounds = %d/%d, want 8/12", cfg.MinItems, cfg.MaxItems)
	}
	if cfg.Timeout != 12*time.Minute {
		t.Errorf("timeout = %v, want 12m", cfg.Timeout)
	}
	if cfg.CIThreshold != 12 || cfg.MinConvergedCompetencies != 6 {
		t.Errorf("convergence thresholds = %v/%d, want 12/6", cfg.CIThreshold, cfg.MinConvergedCompetencies)
	}
}

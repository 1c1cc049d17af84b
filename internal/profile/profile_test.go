package profile

import (
	"math"
	"testing"
	"time"

	"github.com/oaz/profiler/internal/competency"
)

func TestNew_AllCompetenciesSeeded(t *testing.T) {
	p := New(30)
	states := p.States()
	if len(states) != len(competency.All()) {
		t.Fatalf("expected %d states, got %d", len(competency.All()), len(states))
	}
	for i, s := range states {
		if s.Competency != competency.All()[i] {
			t.Errorf("state %d out of declaration order: %s", i, s.Competency)
		}
		if s.Theta != 0 || s.CI != 30 || s.ItemsAnswered != 0 {
			t.Errorf("state %s not at initial values: %+v", s.Competency, s)
		}
	}
}

func TestScoreForTheta(t *testing.T) {
	cases := []struct {
		theta, want float64
	}{
		{0, 50},
		{3, 100},
		{-3, 0},
		{6, 100},  // clamped
		{-6, 0},   // clamped
		{1.5, 75},
	}
	for _, c := range cases {
		if got := ScoreForTheta(c.theta); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ScoreForTheta(%v) = %v, want %v", c.theta, got, c.want)
		}
	}
}

func TestSeedFromCalibration(t *testing.T) {
	p := New(30)
	p.SeedFromCalibration(1.0, 0.5)
	for _, s := range p.States() {
		if math.Abs(s.Theta-0.25) > 1e-9 {
			t.Errorf("%s: theta = %v, want 0.25", s.Competency, s.Theta)
		}
	}

	neutral := New(30)
	neutral.SeedFromCalibration(0.5, 0.5)
	for _, s := range neutral.States() {
		if s.Theta != 0 {
			t.Errorf("%s: neutral calibration moved theta to %v", s.Competency, s.Theta)
		}
	}

	low := New(30)
	low.SeedFromCalibration(0, 0.5)
	for _, s := range low.States() {
		if math.Abs(s.Theta+0.25) > 1e-9 {
			t.Errorf("%s: theta = %v, want -0.25", s.Competency, s.Theta)
		}
	}
}

func TestGlobalScoreAndLevel(t *testing.T) {
	p := New(30)
	if got := p.GlobalScore(); got != 50 {
		t.Errorf("fresh profile GlobalScore = %v, want 50", got)
	}
	if got := p.GlobalLevel(); got != competency.LevelN2 {
		t.Errorf("fresh profile GlobalLevel = %s, want N2", got)
	}

	// Push one competency to the top; the mean moves a little.
	p.State(competency.Fundamentals).Theta = 3
	want := (100.0 + 8*50.0) / 9.0
	if got := p.GlobalScore(); math.Abs(got-want) > 1e-9 {
		t.Errorf("GlobalScore = %v, want %v", got, want)
	}
}

func TestConvergedCount(t *testing.T) {
	p := New(30)
	if got := p.ConvergedCount(12); got != 0 {
		t.Errorf("fresh profile ConvergedCount = %d, want 0", got)
	}
	p.State(competency.Fundamentals).CI = 12
	p.State(competency.Ethics).CI = 4
	if got := p.ConvergedCount(12); got != 2 {
		t.Errorf("ConvergedCount = %d, want 2 (threshold is inclusive)", got)
	}
}

func TestValidate(t *testing.T) {
	p := New(30)
	if err := p.Validate(); err != nil {
		t.Fatalf("fresh profile invalid: %v", err)
	}
	p.State(competency.DataRAG).CI = -1
	if err := p.Validate(); err == nil {
		t.Fatal("negative CI not detected")
	}
}

func TestSeal_DeclarationOrderAndDerivedFields(t *testing.T) {
	p := New(30)
	p.State(competency.PromptEngineering).Theta = 1.5
	p.State(competency.PromptEngineering).CI = 8

	snap := Seal("sess-1", p, time.Now())
	if snap.SessionID != "sess-1" {
		t.Errorf("SessionID = %q", snap.SessionID)
	}
	if len(snap.Competencies) != len(competency.All()) {
		t.Fatalf("expected %d results, got %d", len(competency.All()), len(snap.Competencies))
	}
	for i, res := range snap.Competencies {
		if res.Competency != competency.All()[i] {
			t.Errorf("result %d out of declaration order: %s", i, res.Competency)
		}
	}
	pe := snap.Competencies[2]
	if pe.Competency != competency.PromptEngineering || pe.Score != 75 || pe.Level != competency.LevelN4 {
		t.Errorf("prompt-engineering result = %+v", pe)
	}
}

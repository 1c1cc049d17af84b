package selector

import (
	"context"
	"errors"
	"testing"

	"github.com/oaz/profiler/internal/catalog"
	"github.com/oaz/profiler/internal/competency"
	"github.com/oaz/profiler/internal/profile"
)

func item(id string, comp competency.Competency, typ catalog.ItemType, a, b float64) catalog.Item {
	it := catalog.Item{
		ID:             id,
		Type:           typ,
		Competency:     comp,
		Difficulty:     b,
		Discrimination: a,
		Stem:           "stem",
	}
	if typ.Objective() {
		it.Choices = []string{"x", "y"}
		it.AnswerKey = "x"
	} else {
		it.Rubric = "rubric"
	}
	return it
}

func emptyHistory() History {
	return History{Asked: make(map[string]bool)}
}

func TestAdaptive_Deterministic(t *testing.T) {
	src := catalog.NewMemorySource([]catalog.Item{
		item("a-1", competency.Fundamentals, catalog.TypeMultipleChoice, 1.5, 0),
		item("b-1", competency.Ethics, catalog.TypeScenario, 1.5, 0.5),
		item("c-1", competency.DataRAG, catalog.TypeOpenEnded, 1.2, -0.5),
	})
	sel := NewAdaptive(src, DefaultConfig())
	prof := profile.New(30)

	first, err := sel.Next(context.Background(), prof, emptyHistory())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := sel.Next(context.Background(), prof, emptyHistory())
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if again.ID != first.ID {
			t.Fatalf("selection not deterministic: %s then %s", first.ID, again.ID)
		}
	}
}

func TestAdaptive_TieBreakLowestID(t *testing.T) {
	// Identical parameters and competency: the objective ties exactly,
	// so the lowest ID must win.
	src := catalog.NewMemorySource([]catalog.Item{
		item("q-b", competency.Fundamentals, catalog.TypeMultipleChoice, 1.5, 0),
		item("q-a", competency.Fundamentals, catalog.TypeMultipleChoice, 1.5, 0),
	})
	sel := NewAdaptive(src, DefaultConfig())

	got, err := sel.Next(context.Background(), profile.New(30), emptyHistory())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got.ID != "q-a" {
		t.Errorf("tie-break picked %s, want q-a", got.ID)
	}
}

func TestAdaptive_PrefersUncertainCompetency(t *testing.T) {
	src := catalog.NewMemorySource([]catalog.Item{
		item("certain", competency.Fundamentals, catalog.TypeMultipleChoice, 1.5, 0),
		item("uncertain", competency.Ethics, catalog.TypeScenario, 1.5, 0),
	})
	sel := NewAdaptive(src, DefaultConfig())

	prof := profile.New(30)
	prof.State(competency.Fundamentals).CI = 4

	got, err := sel.Next(context.Background(), prof, emptyHistory())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got.ID != "uncertain" {
		t.Errorf("picked %s, want the item probing the uncertain competency", got.ID)
	}
}

func TestAdaptive_PrefersMatchedDifficulty(t *testing.T) {
	src := catalog.NewMemorySource([]catalog.Item{
		item("far", competency.Fundamentals, catalog.TypeMultipleChoice, 1.5, 2.0),
		item("near", competency.Fundamentals, catalog.TypeMultipleChoice, 1.5, 0.1),
	})
	sel := NewAdaptive(src, DefaultConfig())

	got, err := sel.Next(context.Background(), profile.New(30), emptyHistory())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got.ID != "near" {
		t.Errorf("picked %s, want the difficulty-matched item", got.ID)
	}
}

func TestAdaptive_DiversificationPenalty(t *testing.T) {
	src := catalog.NewMemorySource([]catalog.Item{
		item("same-comp", competency.Fundamentals, catalog.TypeMultipleChoice, 1.5, 0),
		item("other-comp", competency.Ethics, catalog.TypeScenario, 1.5, 0),
	})
	sel := NewAdaptive(src, DefaultConfig())

	hist := emptyHistory()
	hist.LastCompetency = competency.Fundamentals
	hist.LastType = catalog.TypeMultipleChoice

	got, err := sel.Next(context.Background(), profile.New(30), hist)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got.ID != "other-comp" {
		t.Errorf("picked %s, want the diversifying item", got.ID)
	}
}

func TestAdaptive_DiscriminationFloorDeprioritizes(t *testing.T) {
	src := catalog.NewMemorySource([]catalog.Item{
		item("blunt", competency.Fundamentals, catalog.TypeMultipleChoice, 0.4, 0),
		item("sharp", competency.Ethics, catalog.TypeScenario, 1.2, 0),
	})
	sel := NewAdaptive(src, DefaultConfig())

	got, err := sel.Next(context.Background(), profile.New(30), emptyHistory())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got.ID != "sharp" {
		t.Errorf("picked %s, want the above-floor item", got.ID)
	}

	// Below-floor items are deprioritized, not excluded: with nothing
	// else left they are still served.
	hist := emptyHistory()
	hist.Asked["sharp"] = true
	got, err = sel.Next(context.Background(), profile.New(30), hist)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got.ID != "blunt" {
		t.Errorf("picked %s, want the only remaining item", got.ID)
	}
}

func TestAdaptive_Exhaustion(t *testing.T) {
	src := catalog.NewMemorySource([]catalog.Item{
		item("only", competency.Fundamentals, catalog.TypeMultipleChoice, 1.5, 0),
	})
	sel := NewAdaptive(src, DefaultConfig())

	hist := emptyHistory()
	hist.Asked["only"] = true
	_, err := sel.Next(context.Background(), profile.New(30), hist)
	if !errors.Is(err, ErrNoEligibleItems) {
		t.Fatalf("expected ErrNoEligibleItems, got %v", err)
	}
}

func TestFixedBlock_Order(t *testing.T) {
	src := catalog.NewMemorySource([]catalog.Item{
		item("x-1", competency.Fundamentals, catalog.TypeMultipleChoice, 1.5, 0),
		item("x-2", competency.Ethics, catalog.TypeScenario, 1.5, 0),
		item("x-3", competency.DataRAG, catalog.TypeOpenEnded, 1.2, 0),
	})
	sel := NewFixedBlock(src, []string{"x-2", "missing", "x-3", "x-1"})

	hist := emptyHistory()
	prof := profile.New(30)
	var served []string
	for {
		it, err := sel.Next(context.Background(), prof, hist)
		if err != nil {
			if !errors.Is(err, ErrNoEligibleItems) {
				t.Fatalf("Next: %v", err)
			}
			break
		}
		served = append(served, it.ID)
		hist.Asked[it.ID] = true
	}

	want := []string{"x-2", "x-3", "x-1"}
	if len(served) != len(want) {
		t.Fatalf("served %v, want %v", served, want)
	}
	for i := range want {
		if served[i] != want[i] {
			t.Fatalf("served %v, want %v", served, want)
		}
	}
}

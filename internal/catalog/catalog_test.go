package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/oaz/profiler/internal/competency"
)

func validObjective() Item {
	return Item{
		ID:             "q1",
		Type:           TypeMultipleChoice,
		Competency:     competency.Fundamentals,
		Difficulty:     0.5,
		Discrimination: 1.5,
		Stem:           "Pick one.",
		Choices:        []string{"a", "b", "c"},
		AnswerKey:      "b",
	}
}

func TestItemValidate(t *testing.T) {
	if err := validObjective().Validate(); err != nil {
		t.Fatalf("valid item rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Item)
	}{
		{"empty id", func(it *Item) { it.ID = "" }},
		{"unknown type", func(it *Item) { it.Type = "essay" }},
		{"unknown competency", func(it *Item) { it.Competency = "basket-weaving" }},
		{"zero discrimination", func(it *Item) { it.Discrimination = 0 }},
		{"negative discrimination", func(it *Item) { it.Discrimination = -1 }},
		{"one choice", func(it *Item) { it.Choices = []string{"a"}; it.AnswerKey = "a" }},
		{"key not among choices", func(it *Item) { it.AnswerKey = "z" }},
	}
	for _, c := range cases {
		it := validObjective()
		c.mutate(&it)
		if err := it.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}

	subjective := Item{
		ID:             "q2",
		Type:           TypeOpenEnded,
		Competency:     competency.Ethics,
		Difficulty:     0.2,
		Discrimination: 1.1,
		Stem:           "Explain.",
	}
	if err := subjective.Validate(); err == nil {
		t.Error("subjective item without rubric accepted")
	}
	subjective.Rubric = "looks for tradeoffs"
	if err := subjective.Validate(); err != nil {
		t.Errorf("subjective item with rubric rejected: %v", err)
	}
}

func TestItemTypeObjective(t *testing.T) {
	if !TypeMultipleChoice.Objective() || !TypeScenario.Objective() {
		t.Error("choice-keyed types must be objective")
	}
	if TypePromptWriting.Objective() || TypeOpenEnded.Objective() {
		t.Error("rubric-graded types must not be objective")
	}
}

func TestParseBank(t *testing.T) {
	const src = `
items:
  - id: b1
    type: multiple_choice
    competency: ai-ml-fundamentals
    difficulty: 0.1
    discrimination: 1.2
    stem: "Q?"
    choices: ["x", "y"]
    answer_key: "x"
  - id: a1
    type: open_ended
    competency: ethics-and-compliance
    difficulty: 0.5
    discrimination: 1.4
    stem: "Explain."
    rubric: "depth"
`
	items, err := ParseBank([]byte(src))
	if err != nil {
		t.Fatalf("ParseBank: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "b1" || items[0].AnswerKey != "x" {
		t.Errorf("first item parsed wrong: %+v", items[0])
	}
	if items[1].Rubric != "depth" {
		t.Errorf("rubric not parsed: %+v", items[1])
	}
}

func TestParseBank_Errors(t *testing.T) {
	if _, err := ParseBank([]byte("items: []")); err == nil {
		t.Error("empty bank accepted")
	}
	dup := `
items:
  - {id: d1, type: multiple_choice, competency: ai-ml-fundamentals, difficulty: 0, discrimination: 1, stem: q, choices: [a, b], answer_key: a}
  - {id: d1, type: multiple_choice, competency: ai-ml-fundamentals, difficulty: 0, discrimination: 1, stem: q, choices: [a, b], answer_key: a}
`
	if _, err := ParseBank([]byte(dup)); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("duplicate id not rejected: %v", err)
	}
}

func TestDefaultBank(t *testing.T) {
	items, err := DefaultBank()
	if err != nil {
		t.Fatalf("DefaultBank: %v", err)
	}

	perComp := make(map[competency.Competency]int)
	for _, it := range items {
		perComp[it.Competency]++
	}
	for _, c := range competency.All() {
		if perComp[c] < 3 {
			t.Errorf("competency %s has %d items, want at least 3", c, perComp[c])
		}
	}
}

func TestMemorySource(t *testing.T) {
	items := []Item{validObjective()}
	second := validObjective()
	second.ID = "q0"
	items = append(items, second)

	src := NewMemorySource(items)
	got, err := src.EligibleItems(context.Background(), competency.Fundamentals, nil)
	if err != nil {
		t.Fatalf("EligibleItems: %v", err)
	}
	if len(got) != 2 || got[0].ID != "q0" || got[1].ID != "q1" {
		t.Fatalf("expected id-sorted [q0 q1], got %+v", got)
	}

	got, err = src.EligibleItems(context.Background(), competency.Fundamentals, map[string]bool{"q0": true})
	if err != nil {
		t.Fatalf("EligibleItems with exclude: %v", err)
	}
	if len(got) != 1 || got[0].ID != "q1" {
		t.Fatalf("exclusion not applied: %+v", got)
	}

	got, err = src.EligibleItems(context.Background(), competency.Ethics, nil)
	if err != nil {
		t.Fatalf("EligibleItems empty competency: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

package catalog

import (
	"fmt"

	"github.com/oaz/profiler/internal/competency"
)

// ItemType classifies how an item is presented and graded.
type ItemType string

const (
	TypeMultipleChoice ItemType = "multiple_choice"
	TypeScenario       ItemType = "scenario"
	TypePromptWriting  ItemType = "prompt_writing"
	TypeOpenEnded      ItemType = "open_ended"
)

// Objective reports whether the type is graded deterministically against an
// answer key. Non-objective types are graded against a rubric by the
// external grading collaborator.
func (t ItemType) Objective() bool {
	return t == TypeMultipleChoice || t == TypeScenario
}

// Item is a single assessment question. Immutable once issued to a session.
type Item struct {
	ID             string
	Type           ItemType
	Competency     competency.Competency
	Difficulty     float64 // IRT b parameter, roughly -1..+2
	Discrimination float64 // IRT a parameter, must be positive
	Stem           string
	Choices        []string // objective items only
	AnswerKey      string   // objective items only, must be one of Choices
	Rubric         string   // subjective items only
}

// Validate checks structural item invariants.
func (it Item) Validate() error {
	if it.ID == "" {
		return fmt.Errorf("item has empty id")
	}
	switch it.Type {
	case TypeMultipleChoice, TypeScenario, TypePromptWriting, TypeOpenEnded:
	default:
		return fmt.Errorf("item %s: unknown type %q", it.ID, it.Type)
	}
	if !competency.IsValid(it.Competency) {
		return fmt.Errorf("item %s: unknown competency %q", it.ID, it.Competency)
	}
	if it.Discrimination <= 0 {
		return fmt.Errorf("item %s: discrimination must be positive, got %g", it.ID, it.Discrimination)
	}
	if it.Type.Objective() {
		if len(it.Choices) < 2 {
			return fmt.Errorf("item %s: objective item needs at least 2 choices", it.ID)
		}
		found := false
		for _, c := range it.Choices {
			if c == it.AnswerKey {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("item %s: answer key %q is not among the choices", it.ID, it.AnswerKey)
		}
	} else if it.Rubric == "" {
		return fmt.Errorf("item %s: subjective item needs a rubric", it.ID)
	}
	return nil
}

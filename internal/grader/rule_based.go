package grader

import (
	"context"
	"strings"

	"github.com/oaz/profiler/internal/catalog"
)

// RuleBased is a deterministic SubjectiveGrader for environments without
// a model backend. It scores by rubric keyword coverage: the fraction of
// rubric terms (words of 4+ characters) that appear in the answer,
// dampened so that keyword stuffing cannot reach a perfect score.
type RuleBased struct{}

// NewRuleBased creates the deterministic rubric grader.
func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

func (r *RuleBased) Grade(_ context.Context, item catalog.Item, answer string) (Result, error) {
	terms := rubricTerms(item.Rubric)
	if len(terms) == 0 {
		return Result{Score: 0.5}, nil
	}

	lower := strings.ToLower(answer)
	hits := 0
	for term := range terms {
		if strings.Contains(lower, term) {
			hits++
		}
	}

	coverage := float64(hits) / float64(len(terms))
	score := 0.15 + 0.7*coverage
	if score > 1 {
		score = 1
	}

	var flags []Flag
	if hits == 0 && len(strings.Fields(answer)) > 5 {
		flags = append(flags, FlagOffTopic)
	}

	return Result{Score: score, Flags: flags}, nil
}

// rubricTerms extracts the distinct significant words from a rubric.
func rubricTerms(rubric string) map[string]bool {
	terms := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(rubric)) {
		w = strings.Trim(w, ".,;:()[]\"'")
		if len(w) >= 4 {
			terms[w] = true
		}
	}
	return terms
}

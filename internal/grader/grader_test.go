package grader

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oaz/profiler/internal/catalog"
	"github.com/oaz/profiler/internal/competency"
)

func mcItem() catalog.Item {
	return catalog.Item{
		ID:             "mc-1",
		Type:           catalog.TypeMultipleChoice,
		Competency:     competency.Fundamentals,
		Discrimination: 1.5,
		Choices:        []string{"Paris", "London", "Berlin"},
		AnswerKey:      "Paris",
	}
}

func openItem() catalog.Item {
	return catalog.Item{
		ID:             "oe-1",
		Type:           catalog.TypeOpenEnded,
		Competency:     competency.Ethics,
		Discrimination: 1.2,
		Rubric:         "mentions consent and transparency tradeoffs",
	}
}

// failingGrader always errors, counting its calls.
type failingGrader struct {
	calls int
}

func (f *failingGrader) Grade(context.Context, catalog.Item, string) (Result, error) {
	f.calls++
	return Result{}, errors.New("backend unavailable")
}

// flakyGrader fails a fixed number of times before succeeding.
type flakyGrader struct {
	failures int
	result   Result
}

func (f *flakyGrader) Grade(context.Context, catalog.Item, string) (Result, error) {
	if f.failures > 0 {
		f.failures--
		return Result{}, errors.New("transient")
	}
	return f.result, nil
}

// rangeViolator returns a score outside [0,1].
type rangeViolator struct{}

func (rangeViolator) Grade(context.Context, catalog.Item, string) (Result, error) {
	return Result{Score: 1.7}, nil
}

func TestGrade_ObjectiveCorrectAndWrong(t *testing.T) {
	g := New(nil, DefaultConfig())

	res, err := g.Grade(context.Background(), mcItem(), "Paris")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 1 {
		t.Errorf("correct answer scored %v, want 1", res.Score)
	}

	res, err = g.Grade(context.Background(), mcItem(), "London")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 0 {
		t.Errorf("wrong answer scored %v, want 0", res.Score)
	}
}

func TestGrade_ObjectiveNormalization(t *testing.T) {
	g := New(nil, DefaultConfig())
	res, err := g.Grade(context.Background(), mcItem(), "  paris ")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 1 {
		t.Errorf("case-insensitive match scored %v, want 1", res.Score)
	}
}

func TestGrade_InvalidChoice(t *testing.T) {
	g := New(nil, DefaultConfig())
	for _, answer := range []string{"Madrid", "", "   "} {
		if _, err := g.Grade(context.Background(), mcItem(), answer); !errors.Is(err, ErrInvalidAnswer) {
			t.Errorf("answer %q: expected ErrInvalidAnswer, got %v", answer, err)
		}
	}
}

func TestGrade_SubjectiveDelegation(t *testing.T) {
	backend := &flakyGrader{result: Result{Score: 0.8, Feedback: "solid"}}
	g := New(backend, DefaultConfig())

	res, err := g.Grade(context.Background(), openItem(), "A thoughtful answer about consent and transparency in data use.")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 0.8 || res.Feedback != "solid" {
		t.Errorf("delegated result not passed through: %+v", res)
	}
	if len(res.Flags) != 0 {
		t.Errorf("unexpected flags %v", res.Flags)
	}
}

func TestGrade_TooShortFlag(t *testing.T) {
	backend := &flakyGrader{result: Result{Score: 0.3}}
	g := New(backend, DefaultConfig())

	res, err := g.Grade(context.Background(), openItem(), "short answer")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if !hasFlag(res.Flags, FlagTooShort) {
		t.Errorf("flags %v, want tooShort", res.Flags)
	}
}

func TestGrade_EmptySubjectiveAnswerFlagged(t *testing.T) {
	backend := &flakyGrader{result: Result{Score: 0.1}}
	g := New(backend, DefaultConfig())

	res, err := g.Grade(context.Background(), openItem(), "   ")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if !hasFlag(res.Flags, FlagNoAnswer) {
		t.Errorf("flags %v, want noAnswer", res.Flags)
	}
}

func TestGrade_FallbackAfterThreeFailures(t *testing.T) {
	backend := &failingGrader{}
	cfg := DefaultConfig()
	cfg.AttemptTimeout = 50 * time.Millisecond
	g := New(backend, cfg)

	done := make(chan Result, 1)
	go func() {
		res, _ := g.Grade(context.Background(), openItem(), "An answer the backend will never manage to grade properly.")
		done <- res
	}()

	var res Result
	select {
	case res = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("grading hung instead of falling back")
	}

	if backend.calls != cfg.MaxAttempts {
		t.Errorf("backend called %d times, want %d", backend.calls, cfg.MaxAttempts)
	}
	if res.Score != cfg.NeutralScore {
		t.Errorf("fallback score %v, want %v", res.Score, cfg.NeutralScore)
	}
	if !hasFlag(res.Flags, FlagGradingDegraded) {
		t.Errorf("flags %v, want gradingDegraded", res.Flags)
	}
}

func TestGrade_RetryThenSuccess(t *testing.T) {
	backend := &flakyGrader{failures: 2, result: Result{Score: 0.6}}
	g := New(backend, DefaultConfig())

	res, err := g.Grade(context.Background(), openItem(), "An answer that eventually gets graded on the third attempt.")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 0.6 {
		t.Errorf("score %v, want 0.6 from the successful attempt", res.Score)
	}
	if hasFlag(res.Flags, FlagGradingDegraded) {
		t.Errorf("successful retry must not be flagged degraded: %v", res.Flags)
	}
}

func TestGrade_OutOfRangeScoreIsFailure(t *testing.T) {
	g := New(rangeViolator{}, DefaultConfig())

	res, err := g.Grade(context.Background(), openItem(), "An answer graded by a backend that cannot count to one.")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != DefaultConfig().NeutralScore || !hasFlag(res.Flags, FlagGradingDegraded) {
		t.Errorf("out-of-range backend score must degrade to neutral, got %+v", res)
	}
}

func TestGrade_NilBackendDegrades(t *testing.T) {
	g := New(nil, DefaultConfig())
	res, err := g.Grade(context.Background(), openItem(), "An answer with nobody around to grade it subjectively.")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != DefaultConfig().NeutralScore || !hasFlag(res.Flags, FlagGradingDegraded) {
		t.Errorf("nil backend must degrade to neutral, got %+v", res)
	}
}

func TestRuleBased(t *testing.T) {
	rb := NewRuleBased()
	item := openItem()

	good, err := rb.Grade(context.Background(), item, "I would weigh consent against transparency tradeoffs explicitly.")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	bad, err := rb.Grade(context.Background(), item, "Bananas are an excellent source of potassium for athletes everywhere.")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if good.Score <= bad.Score {
		t.Errorf("coverage not rewarded: good=%v bad=%v", good.Score, bad.Score)
	}
	if !hasFlag(bad.Flags, FlagOffTopic) {
		t.Errorf("off-topic answer not flagged: %v", bad.Flags)
	}
	for _, res := range []Result{good, bad} {
		if res.Score < 0 || res.Score > 1 {
			t.Errorf("score %v out of range", res.Score)
		}
	}
}

func hasFlag(flags []Flag, want Flag) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}

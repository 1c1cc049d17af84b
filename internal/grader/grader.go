package grader

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oaz/profiler/internal/catalog"
)

// ErrInvalidAnswer indicates the submitted answer is not a valid choice
// for the item. A caller mistake: the session state is unchanged.
var ErrInvalidAnswer = errors.New("invalid answer")

// Flag is an advisory quality marker on a graded response. Flags are
// metadata, never failure conditions.
type Flag string

const (
	FlagNoAnswer        Flag = "noAnswer"
	FlagTooShort        Flag = "tooShort"
	FlagOffTopic        Flag = "offTopic"
	FlagGradingDegraded Flag = "gradingDegraded"
)

// Result is the outcome of grading one answer.
type Result struct {
	// Score is the graded correctness in [0,1]. Binary for objective
	// items, soft for rubric-graded ones.
	Score float64

	// Flags carries advisory quality markers.
	Flags []Flag

	// Feedback is optional grader commentary on subjective answers.
	Feedback string
}

// SubjectiveGrader grades an open-ended answer against the item's rubric.
// Implementations must fail explicitly on malformed input so the
// retry-then-fallback policy can engage; they must never silently return
// a default.
type SubjectiveGrader interface {
	Grade(ctx context.Context, item catalog.Item, answer string) (Result, error)
}

// Config holds grading policy knobs.
type Config struct {
	// MinAnswerLength is the character count below which a subjective
	// answer gets the tooShort flag.
	MinAnswerLength int

	// MaxAttempts caps calls to the subjective collaborator before the
	// neutral fallback engages.
	MaxAttempts int

	// AttemptTimeout bounds each collaborator call.
	AttemptTimeout time.Duration

	// NeutralScore is the fallback score when all attempts fail.
	NeutralScore float64
}

// DefaultConfig returns the production grading policy.
func DefaultConfig() Config {
	return Config{
		MinAnswerLength: 20,
		MaxAttempts:     3,
		AttemptTimeout:  20 * time.Second,
		NeutralScore:    0.5,
	}
}

// Grader grades submitted answers. Objective items are graded locally and
// deterministically; subjective items are delegated to the collaborator
// with a bounded attempt budget and a neutral fallback, so a session can
// never stall on an unresponsive backend.
type Grader struct {
	subjective SubjectiveGrader
	cfg        Config
}

// New creates a Grader. subjective may be nil, in which case every
// subjective answer takes the degraded neutral path.
func New(subjective SubjectiveGrader, cfg Config) *Grader {
	return &Grader{subjective: subjective, cfg: cfg}
}

// Grade grades an answer for the given item.
func (g *Grader) Grade(ctx context.Context, item catalog.Item, answer string) (Result, error) {
	if strings.TrimSpace(answer) == "" && item.Type.Objective() {
		return Result{}, fmt.Errorf("empty answer for item %s: %w", item.ID, ErrInvalidAnswer)
	}

	if item.Type.Objective() {
		return g.gradeObjective(item, answer)
	}
	return g.gradeSubjective(ctx, item, answer), nil
}

// gradeObjective exact-matches the answer against the item's choices and
// answer key. Score is binary.
func (g *Grader) gradeObjective(item catalog.Item, answer string) (Result, error) {
	normalized := strings.TrimSpace(answer)

	valid := false
	for _, c := range item.Choices {
		if strings.EqualFold(normalized, c) {
			normalized = c
			valid = true
			break
		}
	}
	if !valid {
		return Result{}, fmt.Errorf("choice %q is not valid for item %s: %w", answer, item.ID, ErrInvalidAnswer)
	}

	if normalized == item.AnswerKey {
		return Result{Score: 1}, nil
	}
	return Result{Score: 0}, nil
}

// gradeSubjective applies deterministic flags, then delegates to the
// collaborator with the retry-then-fallback policy. It never returns an
// error: collaborator failure degrades to the neutral score.
func (g *Grader) gradeSubjective(ctx context.Context, item catalog.Item, answer string) Result {
	var flags []Flag
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		flags = append(flags, FlagNoAnswer)
	} else if len(trimmed) < g.cfg.MinAnswerLength {
		flags = append(flags, FlagTooShort)
	}

	if g.subjective == nil {
		return Result{Score: g.cfg.NeutralScore, Flags: append(flags, FlagGradingDegraded)}
	}

	var lastErr error
	for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
		res, err := g.gradeOnce(ctx, item, answer)
		if err == nil {
			res.Flags = mergeFlags(flags, res.Flags)
			return res
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	// All attempts failed: deterministic neutral fallback. The call is
	// abandoned, not the session.
	_ = lastErr
	return Result{Score: g.cfg.NeutralScore, Flags: append(flags, FlagGradingDegraded)}
}

func (g *Grader) gradeOnce(ctx context.Context, item catalog.Item, answer string) (Result, error) {
	attemptCtx := ctx
	if g.cfg.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, g.cfg.AttemptTimeout)
		defer cancel()
	}

	res, err := g.subjective.Grade(attemptCtx, item, answer)
	if err != nil {
		return Result{}, err
	}
	if res.Score < 0 || res.Score > 1 {
		return Result{}, fmt.Errorf("collaborator returned out-of-range score %g", res.Score)
	}
	return res, nil
}

// mergeFlags unions two flag sets preserving first-seen order.
func mergeFlags(a, b []Flag) []Flag {
	seen := make(map[Flag]bool, len(a)+len(b))
	var out []Flag
	for _, f := range append(append([]Flag{}, a...), b...) {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// FlagStrings converts flags to plain strings for event persistence.
func FlagStrings(flags []Flag) []string {
	out := make([]string, len(flags))
	for i, f := range flags {
		out[i] = string(f)
	}
	return out
}

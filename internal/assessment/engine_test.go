package assessment

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/oaz/profiler/internal/catalog"
	"github.com/oaz/profiler/internal/convergence"
	"github.com/oaz/profiler/internal/grader"
	"github.com/oaz/profiler/internal/recommend"
	"github.com/oaz/profiler/internal/scoring"
	"github.com/oaz/profiler/internal/selector"
)

// fakeClock is a manually advanced session clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type engineOpts struct {
	bank      []catalog.Item
	scoring   scoring.Config
	stopping  convergence.Config
	fixedWalk []string
	clock     *fakeClock
}

func newTestEngine(t *testing.T, opts engineOpts) (*Engine, *fakeClock) {
	t.Helper()

	bank := opts.bank
	if bank == nil {
		var err error
		bank, err = catalog.DefaultBank()
		if err != nil {
			t.Fatalf("loading bank: %v", err)
		}
	}
	source := catalog.NewMemorySource(bank)

	if opts.scoring == (scoring.Config{}) {
		opts.scoring = scoring.DefaultConfig()
	}
	if opts.stopping == (convergence.Config{}) {
		opts.stopping = convergence.DefaultConfig()
	}
	clock := opts.clock
	if clock == nil {
		clock = newFakeClock()
	}

	order := opts.fixedWalk
	if order == nil {
		for _, it := range bank {
			order = append(order, it.ID)
		}
	}

	gcfg := grader.DefaultConfig()
	gcfg.AttemptTimeout = 100 * time.Millisecond

	eng := NewEngine(Deps{
		Scorer:    scoring.NewEngine(opts.scoring),
		Grader:    grader.New(grader.NewRuleBased(), gcfg),
		Evaluator: convergence.NewEvaluator(opts.stopping),
		Selectors: map[Mode]ItemSelector{
			ModeAdaptive:   selector.NewAdaptive(source, selector.DefaultConfig()),
			ModeFixedBlock: selector.NewFixedBlock(source, order),
		},
		Recommend: recommend.DefaultConfig(),
		Now:       clock.Now,
	})
	return eng, clock
}

// answerFor produces a valid answer: the key for objective items, rubric
// text for subjective ones.
func answerFor(item catalog.Item) string {
	if item.Type.Objective() {
		return item.AnswerKey
	}
	return "In this situation I would consider " + item.Rubric
}

// startActive runs a session through calibration.
func startActive(t *testing.T, eng *Engine, mode Mode) (string, catalog.Item) {
	t.Helper()
	start, err := eng.StartSession(context.Background(), "tester", mode)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	res, err := eng.SubmitResponse(context.Background(), start.SessionID, start.Item.ID, start.Item.Choices[2])
	if err != nil {
		t.Fatalf("calibration submit: %v", err)
	}
	if res.NextItem == nil {
		t.Fatal("calibration did not yield a first item")
	}
	return start.SessionID, *res.NextItem
}

func TestStartSession_IssuesCalibration(t *testing.T) {
	eng, _ := newTestEngine(t, engineOpts{})
	start, err := eng.StartSession(context.Background(), "tester", ModeAdaptive)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if start.Item.ID != CalibrationItemID {
		t.Errorf("first item = %s, want the calibration item", start.Item.ID)
	}
	if len(start.Item.Choices) < 2 {
		t.Errorf("calibration item has %d choices", len(start.Item.Choices))
	}

	sess, err := eng.Session(start.SessionID)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if sess.Status != StatusInitializing {
		t.Errorf("status = %s, want initializing", sess.Status)
	}
}

func TestStartSession_UnknownMode(t *testing.T) {
	eng, _ := newTestEngine(t, engineOpts{})
	if _, err := eng.StartSession(context.Background(), "tester", Mode("oracle")); err == nil {
		t.Fatal("unknown mode accepted")
	}
}

func TestCalibration_SeedsAllThetas(t *testing.T) {
	eng, _ := newTestEngine(t, engineOpts{})
	start, err := eng.StartSession(context.Background(), "tester", ModeAdaptive)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	// Top self-assessment rung grades 1.0, so every theta shifts by
	// weight * 0.5.
	top := start.Item.Choices[len(start.Item.Choices)-1]
	if _, err := eng.SubmitResponse(context.Background(), start.SessionID, start.Item.ID, top); err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}

	sess, _ := eng.Session(start.SessionID)
	if sess.Status != StatusActive {
		t.Fatalf("status = %s, want active", sess.Status)
	}
	want := scoring.DefaultConfig().CalibrationWeight * 0.5
	for _, s := range sess.Profile.States() {
		if math.Abs(s.Theta-want) > 1e-9 {
			t.Errorf("%s: theta = %v, want %v", s.Competency, s.Theta, want)
		}
	}
}

func TestCalibration_InvalidAnswerRejected(t *testing.T) {
	eng, _ := newTestEngine(t, engineOpts{})
	start, _ := eng.StartSession(context.Background(), "tester", ModeAdaptive)

	_, err := eng.SubmitResponse(context.Background(), start.SessionID, start.Item.ID, "something else entirely")
	if !errors.Is(err, grader.ErrInvalidAnswer) {
		t.Fatalf("expected ErrInvalidAnswer, got %v", err)
	}

	// The session is untouched and still accepts the calibration.
	sess, _ := eng.Session(start.SessionID)
	if sess.Status != StatusInitializing {
		t.Errorf("status = %s after rejected answer, want initializing", sess.Status)
	}
}

func TestSubmitResponse_UnknownSession(t *testing.T) {
	eng, _ := newTestEngine(t, engineOpts{})
	if _, err := eng.SubmitResponse(context.Background(), "nope", "item", "x"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSubmitResponse_UnexpectedItem(t *testing.T) {
	eng, _ := newTestEngine(t, engineOpts{})
	id, item := startActive(t, eng, ModeAdaptive)

	_, err := eng.SubmitResponse(context.Background(), id, "not-the-pending-item", "x")
	if !errors.Is(err, ErrUnexpectedItem) {
		t.Fatalf("expected ErrUnexpectedItem, got %v", err)
	}

	// The pending item is still answerable afterwards.
	if _, err := eng.SubmitResponse(context.Background(), id, item.ID, answerFor(item)); err != nil {
		t.Fatalf("pending item no longer accepted: %v", err)
	}
}

func TestSubmitResponse_InvalidChoiceKeepsItemPending(t *testing.T) {
	eng, _ := newTestEngine(t, engineOpts{})
	id, item := startActive(t, eng, ModeAdaptive)

	// Walk to an objective item if the first one is subjective.
	for !item.Type.Objective() {
		res, err := eng.SubmitResponse(context.Background(), id, item.ID, answerFor(item))
		if err != nil {
			t.Fatalf("SubmitResponse: %v", err)
		}
		item = *res.NextItem
	}

	if _, err := eng.SubmitResponse(context.Background(), id, item.ID, "no such choice"); !errors.Is(err, grader.ErrInvalidAnswer) {
		t.Fatalf("expected ErrInvalidAnswer, got %v", err)
	}

	sess, _ := eng.Session(id)
	if sess.Status != StatusActive || sess.Pending == nil || sess.Pending.ID != item.ID {
		t.Fatal("rejected answer changed session state")
	}
}

func TestSession_NeverExceedsMaxItems(t *testing.T) {
	eng, _ := newTestEngine(t, engineOpts{})
	id, item := startActive(t, eng, ModeAdaptive)

	answered := 0
	for {
		res, err := eng.SubmitResponse(context.Background(), id, item.ID, answerFor(item))
		if err != nil {
			t.Fatalf("SubmitResponse after %d items: %v", answered, err)
		}
		answered++
		if res.Result != nil {
			if answered > convergence.DefaultConfig().MaxItems {
				t.Fatalf("engine issued %d items, max is %d", answered, convergence.DefaultConfig().MaxItems)
			}
			if res.Result.Snapshot == nil || res.Result.Recommendation == nil {
				t.Fatal("terminal result missing snapshot or recommendation")
			}
			return
		}
		item = *res.NextItem
		if answered > 50 {
			t.Fatal("session never terminated")
		}
	}
}

func TestSession_ConvergesAtMinItems(t *testing.T) {
	// Aggressive CI decay: a single answer takes a competency from 30
	// to exactly the threshold, so six answered competencies converge
	// the session at the minimum item count.
	scfg := scoring.DefaultConfig()
	scfg.CIDecay = 0.4

	eng, _ := newTestEngine(t, engineOpts{scoring: scfg})
	id, item := startActive(t, eng, ModeAdaptive)

	answered := 0
	for {
		res, err := eng.SubmitResponse(context.Background(), id, item.ID, answerFor(item))
		if err != nil {
			t.Fatalf("SubmitResponse: %v", err)
		}
		answered++
		if res.Result != nil {
			if answered != convergence.DefaultConfig().MinItems {
				t.Fatalf("converged after %d items, want exactly %d", answered, convergence.DefaultConfig().MinItems)
			}
			if res.Result.Status != StatusConverged || res.Result.Reason != convergence.ReasonConverged {
				t.Fatalf("terminal = %s/%s, want converged", res.Result.Status, res.Result.Reason)
			}
			return
		}
		item = *res.NextItem
		if answered > 20 {
			t.Fatal("session never terminated")
		}
	}
}

func TestSession_TimeoutEndsSession(t *testing.T) {
	clock := newFakeClock()
	eng, _ := newTestEngine(t, engineOpts{clock: clock})
	id, item := startActive(t, eng, ModeAdaptive)

	res, err := eng.SubmitResponse(context.Background(), id, item.ID, answerFor(item))
	if err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}
	if res.Result != nil {
		t.Fatal("session ended before the clock moved")
	}

	clock.Advance(13 * time.Minute)
	res, err = eng.SubmitResponse(context.Background(), id, res.NextItem.ID, answerFor(*res.NextItem))
	if err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}
	if res.Result == nil {
		t.Fatal("session continued past the timeout")
	}
	if res.Result.Status != StatusTimedOut || res.Result.Reason != convergence.ReasonTimeout {
		t.Fatalf("terminal = %s/%s, want timed_out/timeout", res.Result.Status, res.Result.Reason)
	}
}

func TestSession_CatalogExhaustionForcesConvergence(t *testing.T) {
	bank, err := catalog.DefaultBank()
	if err != nil {
		t.Fatalf("loading bank: %v", err)
	}
	eng, _ := newTestEngine(t, engineOpts{bank: bank[:3]})
	id, item := startActive(t, eng, ModeAdaptive)

	answered := 0
	for {
		res, err := eng.SubmitResponse(context.Background(), id, item.ID, answerFor(item))
		if err != nil {
			t.Fatalf("SubmitResponse: %v", err)
		}
		answered++
		if res.Result != nil {
			if answered != 3 {
				t.Fatalf("terminated after %d items, want 3", answered)
			}
			if res.Result.Status != StatusConverged || res.Result.Reason != convergence.ReasonExhausted {
				t.Fatalf("terminal = %s/%s, want converged/catalog_exhausted", res.Result.Status, res.Result.Reason)
			}
			return
		}
		item = *res.NextItem
	}
}

func TestSession_TerminalRejectsResponses(t *testing.T) {
	bank, _ := catalog.DefaultBank()
	eng, _ := newTestEngine(t, engineOpts{bank: bank[:1]})
	id, item := startActive(t, eng, ModeAdaptive)

	res, err := eng.SubmitResponse(context.Background(), id, item.ID, answerFor(item))
	if err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}
	if res.Result == nil {
		t.Fatal("one-item bank did not terminate the session")
	}

	if _, err := eng.SubmitResponse(context.Background(), id, item.ID, answerFor(item)); !errors.Is(err, ErrInvalidSessionState) {
		t.Fatalf("expected ErrInvalidSessionState, got %v", err)
	}
}

func TestSession_CorruptProfileAbandons(t *testing.T) {
	eng, _ := newTestEngine(t, engineOpts{})
	id, item := startActive(t, eng, ModeAdaptive)

	sess, _ := eng.Session(id)
	sess.Profile.State(item.Competency).CI = -5

	_, err := eng.SubmitResponse(context.Background(), id, item.ID, answerFor(item))
	if !errors.Is(err, ErrCorruptState) {
		t.Fatalf("expected ErrCorruptState, got %v", err)
	}
	if sess.Status != StatusAbandoned {
		t.Errorf("status = %s, want abandoned", sess.Status)
	}
	if _, err := eng.Snapshot(context.Background(), id); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("abandoned session produced a snapshot: %v", err)
	}
}

func TestAbandon(t *testing.T) {
	eng, _ := newTestEngine(t, engineOpts{})
	id, _ := startActive(t, eng, ModeAdaptive)

	if err := eng.Abandon(context.Background(), id); err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	sess, _ := eng.Session(id)
	if sess.Status != StatusAbandoned {
		t.Errorf("status = %s, want abandoned", sess.Status)
	}
	if err := eng.Abandon(context.Background(), id); !errors.Is(err, ErrInvalidSessionState) {
		t.Errorf("second abandon: %v, want ErrInvalidSessionState", err)
	}
	if err := eng.Abandon(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("abandon of unknown session: %v", err)
	}
}

func TestFixedBlockMode_WalksOrderAndAccumulatesPoints(t *testing.T) {
	bank, _ := catalog.DefaultBank()
	walk := []string{bank[2].ID, bank[0].ID, bank[1].ID}
	eng, _ := newTestEngine(t, engineOpts{bank: bank[:3], fixedWalk: walk})

	id, item := startActive(t, eng, ModeFixedBlock)

	var served []string
	for {
		served = append(served, item.ID)
		res, err := eng.SubmitResponse(context.Background(), id, item.ID, answerFor(item))
		if err != nil {
			t.Fatalf("SubmitResponse: %v", err)
		}
		if res.Result != nil {
			if res.Result.Points <= 0 {
				t.Errorf("Points = %v, want > 0 for correct answers", res.Result.Points)
			}
			break
		}
		item = *res.NextItem
	}

	for i, want := range walk {
		if served[i] != want {
			t.Fatalf("served %v, want %v", served, walk)
		}
	}
}

func TestEndToEnd_ReportIsConsistent(t *testing.T) {
	eng, _ := newTestEngine(t, engineOpts{})
	id, item := startActive(t, eng, ModeAdaptive)

	var final *SessionResult
	for {
		res, err := eng.SubmitResponse(context.Background(), id, item.ID, answerFor(item))
		if err != nil {
			t.Fatalf("SubmitResponse: %v", err)
		}
		if res.Result != nil {
			final = res.Result
			break
		}
		item = *res.NextItem
	}

	snap := final.Snapshot
	if snap.SessionID != id {
		t.Errorf("snapshot session = %q, want %q", snap.SessionID, id)
	}
	if len(snap.Competencies) != 9 {
		t.Fatalf("snapshot covers %d competencies, want 9", len(snap.Competencies))
	}
	answered := 0
	for _, c := range snap.Competencies {
		answered += c.ItemsAnswered
		if c.CI < 0 || c.CI > scoring.DefaultConfig().InitialCI {
			t.Errorf("%s: CI %v outside [0, initial]", c.Competency, c.CI)
		}
		if c.Score < 0 || c.Score > 100 {
			t.Errorf("%s: score %v out of range", c.Competency, c.Score)
		}
	}
	if answered > convergence.DefaultConfig().MaxItems {
		t.Errorf("snapshot records %d answers, max is %d", answered, convergence.DefaultConfig().MaxItems)
	}

	got, err := eng.Snapshot(context.Background(), id)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if got.SessionID != id {
		t.Errorf("Snapshot returned session %q", got.SessionID)
	}
}

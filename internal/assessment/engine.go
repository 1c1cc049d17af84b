package assessment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oaz/profiler/internal/catalog"
	"github.com/oaz/profiler/internal/convergence"
	"github.com/oaz/profiler/internal/grader"
	"github.com/oaz/profiler/internal/profile"
	"github.com/oaz/profiler/internal/recommend"
	"github.com/oaz/profiler/internal/scoring"
	"github.com/oaz/profiler/internal/selector"
	"github.com/oaz/profiler/internal/store"
)

// ItemSelector picks the next item for a session. Implementations fail
// with selector.ErrNoEligibleItems on catalog exhaustion; the engine
// treats that as forced convergence, not a fatal error.
type ItemSelector interface {
	Next(ctx context.Context, prof *profile.Profile, hist selector.History) (catalog.Item, error)
}

// ResponseGrader grades a raw answer against an item.
type ResponseGrader interface {
	Grade(ctx context.Context, item catalog.Item, answer string) (grader.Result, error)
}

// Deps bundles the engine's collaborators. Sessions, Events and
// Snapshots may be nil; persistence is then skipped.
type Deps struct {
	Scorer    *scoring.Engine
	Grader    ResponseGrader
	Evaluator *convergence.Evaluator
	Selectors map[Mode]ItemSelector

	Sessions  store.SessionRepo
	Events    store.EventRepo
	Snapshots store.SnapshotRepo

	Recommend recommend.Config

	// Now is the session clock. Injected for tests; defaults to
	// time.Now.
	Now func() time.Time
}

// Engine is the session orchestrator. It owns every in-flight session
// and serializes the per-response update pipeline per session.
type Engine struct {
	deps Deps

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewEngine creates an orchestrator from its collaborators.
func NewEngine(deps Deps) *Engine {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Engine{
		deps:     deps,
		sessions: make(map[string]*Session),
	}
}

// StartSession creates a new Initializing session and returns the
// calibration item to present. The session record is durable before the
// item is issued.
func (e *Engine) StartSession(ctx context.Context, userRef string, mode Mode) (*StartResult, error) {
	if _, ok := e.deps.Selectors[mode]; !ok {
		return nil, fmt.Errorf("no selector for mode %q", mode)
	}

	now := e.deps.Now()
	item := CalibrationItem()
	sess := &Session{
		ID:        uuid.NewString(),
		UserRef:   userRef,
		Status:    StatusInitializing,
		Mode:      mode,
		StartedAt: now,
		Profile:   profile.New(e.deps.Scorer.Config().InitialCI),
		History:   selector.History{Asked: make(map[string]bool)},
		Pending:   &item,
		IssuedAt:  now,
	}

	if e.deps.Sessions != nil {
		rec := &store.SessionRecord{
			ID:        sess.ID,
			UserRef:   userRef,
			Status:    string(sess.Status),
			Mode:      string(mode),
			StartedAt: now,
		}
		if err := e.deps.Sessions.Create(ctx, rec); err != nil {
			return nil, fmt.Errorf("persisting session: %w", err)
		}
	}

	e.mu.Lock()
	e.sessions[sess.ID] = sess
	e.mu.Unlock()

	return &StartResult{SessionID: sess.ID, Item: item}, nil
}

// SubmitResponse runs the per-response pipeline: grade, score-update,
// convergence-check, then either the next item or the terminal result.
// Validation errors leave the session unchanged.
func (e *Engine) SubmitResponse(ctx context.Context, sessionID, itemID, answer string) (*SubmitResult, error) {
	sess, err := e.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch sess.Status {
	case StatusInitializing:
		return e.submitCalibration(ctx, sess, itemID, answer)
	case StatusActive:
		return e.submitActive(ctx, sess, itemID, answer)
	default:
		return nil, fmt.Errorf("session %s is %s: %w", sess.ID, sess.Status, ErrInvalidSessionState)
	}
}

// submitCalibration handles the single P0 response: it seeds every
// competency's theta by a shared offset and transitions to Active.
func (e *Engine) submitCalibration(ctx context.Context, sess *Session, itemID, answer string) (*SubmitResult, error) {
	if sess.Pending == nil || sess.Pending.ID != itemID {
		return nil, fmt.Errorf("expected calibration item, got %q: %w", itemID, ErrUnexpectedItem)
	}

	score, err := gradeCalibration(*sess.Pending, answer)
	if err != nil {
		return nil, err
	}

	now := e.deps.Now()
	sess.Profile.SeedFromCalibration(score, e.deps.Scorer.Config().CalibrationWeight)
	sess.Status = StatusActive

	e.appendResponse(ctx, sess, *sess.Pending, answer, grader.Result{Score: score}, now)
	sess.Pending = nil

	if err := e.persistProgress(ctx, sess, nil); err != nil {
		return nil, err
	}
	return e.issueNext(ctx, sess)
}

// submitActive handles one Active-state response end to end.
func (e *Engine) submitActive(ctx context.Context, sess *Session, itemID, answer string) (*SubmitResult, error) {
	if sess.Pending == nil || sess.Pending.ID != itemID {
		return nil, fmt.Errorf("item %q is not pending for session %s: %w", itemID, sess.ID, ErrUnexpectedItem)
	}
	item := *sess.Pending

	res, err := e.deps.Grader.Grade(ctx, item, answer)
	if err != nil {
		// Caller mistake; the item stays pending.
		return nil, err
	}

	now := e.deps.Now()
	state := sess.Profile.State(item.Competency)
	e.deps.Scorer.Apply(state, item, res.Score)

	if err := sess.Profile.Validate(); err != nil {
		e.abandonLocked(ctx, sess)
		return nil, fmt.Errorf("%v: %w", err, ErrCorruptState)
	}

	sess.ItemsAnswered++
	sess.Points += res.Score
	sess.History.Asked[item.ID] = true
	sess.History.LastType = item.Type
	sess.History.LastCompetency = item.Competency

	e.appendResponse(ctx, sess, item, answer, res, now)
	sess.Pending = nil
	if err := e.persistProgress(ctx, sess, nil); err != nil {
		return nil, err
	}

	if stop, reason := e.deps.Evaluator.Evaluate(sess.Profile, sess.ItemsAnswered, now.Sub(sess.StartedAt)); stop {
		return e.finalize(ctx, sess, reason)
	}
	return e.issueNext(ctx, sess)
}

// issueNext selects and issues the next item, or forces convergence on
// catalog exhaustion.
func (e *Engine) issueNext(ctx context.Context, sess *Session) (*SubmitResult, error) {
	sel := e.deps.Selectors[sess.Mode]
	item, err := sel.Next(ctx, sess.Profile, sess.History)
	if err != nil {
		if errors.Is(err, selector.ErrNoEligibleItems) {
			return e.finalize(ctx, sess, convergence.ReasonExhausted)
		}
		return nil, fmt.Errorf("selecting next item: %w", err)
	}
	sess.Pending = &item
	sess.IssuedAt = e.deps.Now()
	return &SubmitResult{NextItem: &item}, nil
}

// finalize moves the session to its terminal status, seals the snapshot
// and generates the learning plan.
func (e *Engine) finalize(ctx context.Context, sess *Session, reason convergence.Reason) (*SubmitResult, error) {
	now := e.deps.Now()
	sess.Status = statusForReason(reason)
	sess.Reason = reason
	sess.Pending = nil

	snap := profile.Seal(sess.ID, sess.Profile, now)
	sess.Snapshot = snap
	if e.deps.Snapshots != nil {
		if err := e.deps.Snapshots.Save(ctx, snap); err != nil {
			return nil, fmt.Errorf("sealing snapshot: %w", err)
		}
	}
	if err := e.persistProgress(ctx, sess, &now); err != nil {
		return nil, err
	}

	return &SubmitResult{Result: &SessionResult{
		Status:         sess.Status,
		Reason:         reason,
		Points:         sess.Points,
		Snapshot:       snap,
		Recommendation: recommend.Generate(snap, e.deps.Recommend),
	}}, nil
}

// Abandon moves a non-terminal session to Abandoned. No snapshot is
// sealed.
func (e *Engine) Abandon(ctx context.Context, sessionID string) error {
	sess, err := e.session(sessionID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.Status.Terminal() {
		return fmt.Errorf("session %s is %s: %w", sess.ID, sess.Status, ErrInvalidSessionState)
	}
	e.abandonLocked(ctx, sess)
	return nil
}

func (e *Engine) abandonLocked(ctx context.Context, sess *Session) {
	now := e.deps.Now()
	sess.Status = StatusAbandoned
	sess.Pending = nil
	// Best effort; the session is already being torn down.
	_ = e.persistProgress(ctx, sess, &now)
}

// Snapshot returns the sealed snapshot for a finalized session.
func (e *Engine) Snapshot(ctx context.Context, sessionID string) (*profile.Snapshot, error) {
	if e.deps.Snapshots != nil {
		snap, err := e.deps.Snapshots.BySession(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("loading snapshot: %w", err)
		}
		if snap != nil {
			return snap, nil
		}
	}
	sess, err := e.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.Snapshot != nil {
		return sess.Snapshot, nil
	}
	return nil, fmt.Errorf("session %s: %w", sessionID, ErrNoSnapshot)
}

// Session returns the in-memory session, for inspection by callers that
// own the engine (the CLI, tests).
func (e *Engine) Session(sessionID string) (*Session, error) {
	return e.session(sessionID)
}

func (e *Engine) session(id string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if sess, ok := e.sessions[id]; ok {
		return sess, nil
	}
	return nil, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
}

// statusForReason maps a stop reason onto the terminal status. Hitting
// a hard ceiling reads as TimedOut; reaching certainty, or running the
// catalog dry, reads as Converged.
func statusForReason(reason convergence.Reason) Status {
	switch reason {
	case convergence.ReasonMaxItems, convergence.ReasonTimeout:
		return StatusTimedOut
	default:
		return StatusConverged
	}
}

func (e *Engine) appendResponse(ctx context.Context, sess *Session, item catalog.Item, answer string, res grader.Result, now time.Time) {
	if e.deps.Events == nil {
		return
	}
	comp := string(item.Competency)
	if item.ID == CalibrationItemID {
		comp = "calibration"
	}
	data := store.ResponseEventData{
		SessionID:   sess.ID,
		ItemID:      item.ID,
		ItemType:    string(item.Type),
		Competency:  comp,
		RawAnswer:   answer,
		GradedScore: res.Score,
		LatencyMs:   now.Sub(sess.IssuedAt).Milliseconds(),
		Flags:       grader.FlagStrings(res.Flags),
	}
	if item.Competency != "" {
		state := sess.Profile.State(item.Competency)
		data.ThetaAfter = state.Theta
		data.CIAfter = state.CI
	}
	// Event log failures never block the session.
	_ = e.deps.Events.AppendResponse(ctx, data)
}

func (e *Engine) persistProgress(ctx context.Context, sess *Session, finishedAt *time.Time) error {
	if e.deps.Sessions == nil {
		return nil
	}
	err := e.deps.Sessions.UpdateProgress(ctx, sess.ID, string(sess.Status), sess.ItemsAnswered, finishedAt)
	if err != nil {
		return fmt.Errorf("persisting session progress: %w", err)
	}
	return nil
}

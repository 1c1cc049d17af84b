package assessment

import (
	"sync"
	"time"

	"github.com/oaz/profiler/internal/catalog"
	"github.com/oaz/profiler/internal/convergence"
	"github.com/oaz/profiler/internal/profile"
	"github.com/oaz/profiler/internal/recommend"
	"github.com/oaz/profiler/internal/selector"
)

// Status is the lifecycle state of a session. Terminal states are final.
type Status string

const (
	StatusInitializing Status = "initializing"
	StatusActive       Status = "active"
	StatusConverged    Status = "converged"
	StatusTimedOut     Status = "timed_out"
	StatusAbandoned    Status = "abandoned"
)

// Terminal reports whether the status accepts no further responses.
func (s Status) Terminal() bool {
	switch s {
	case StatusConverged, StatusTimedOut, StatusAbandoned:
		return true
	}
	return false
}

// Mode selects the item-selection strategy for a session.
type Mode string

const (
	// ModeAdaptive picks each item by the weighted information
	// objective.
	ModeAdaptive Mode = "adaptive"

	// ModeFixedBlock walks a predetermined item order.
	ModeFixedBlock Mode = "fixed_block"
)

// Session is one user's in-flight assessment. The engine owns it
// exclusively; all mutation happens under mu so the per-response update
// sequence is strictly serialized.
type Session struct {
	mu sync.Mutex

	ID        string
	UserRef   string
	Status    Status
	Mode      Mode
	StartedAt time.Time

	Profile *profile.Profile
	History selector.History

	// Pending is the item issued and awaiting an answer, including the
	// calibration pseudo-item while Initializing.
	Pending  *catalog.Item
	IssuedAt time.Time

	ItemsAnswered int
	Points        float64
	Reason        convergence.Reason

	// Snapshot is set once at finalization; nil for Abandoned and
	// in-flight sessions.
	Snapshot *profile.Snapshot
}

// StartResult is the outcome of StartSession: a new session id and the
// calibration item to present first.
type StartResult struct {
	SessionID string
	Item      catalog.Item
}

// SessionResult is the terminal outcome of a session.
type SessionResult struct {
	Status         Status
	Reason         convergence.Reason
	Points         float64
	Snapshot       *profile.Snapshot
	Recommendation *recommend.Recommendation
}

// SubmitResult is the per-response outcome: exactly one of NextItem or
// Result is set.
type SubmitResult struct {
	NextItem *catalog.Item
	Result   *SessionResult
}

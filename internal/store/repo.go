package store

import (
	"context"
	"time"

	"github.com/oaz/profiler/internal/profile"
)

// SessionRecord is the persisted shape of a session's lifecycle state.
type SessionRecord struct {
	ID            string
	UserRef       string
	Status        string
	Mode          string
	StartedAt     time.Time
	FinishedAt    *time.Time
	ItemsAnswered int
}

// SessionRepo persists session lifecycle state. The orchestrator writes a
// status transition durably before issuing the next item.
type SessionRepo interface {
	// Create stores a new session record.
	Create(ctx context.Context, rec *SessionRecord) error

	// UpdateProgress records the current status and answer count.
	// finishedAt is non-nil only for terminal transitions.
	UpdateProgress(ctx context.Context, id, status string, itemsAnswered int, finishedAt *time.Time) error

	// Get returns the session record, or nil if none exists.
	Get(ctx context.Context, id string) (*SessionRecord, error)
}

// ResponseEventData captures one graded response for the append-only log.
type ResponseEventData struct {
	SessionID   string
	ItemID      string
	ItemType    string
	Competency  string
	RawAnswer   string
	GradedScore float64
	LatencyMs   int64
	Flags       []string
	ThetaAfter  float64
	CIAfter     float64
}

// LLMRequestEventData captures one call to the grading model.
type LLMRequestEventData struct {
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ResponseEvent is a persisted response event as read back for audit.
type ResponseEvent struct {
	Sequence  int64
	Timestamp time.Time
	ResponseEventData
}

// LLMRequestEvent is a persisted grading-model call as read back for
// audit.
type LLMRequestEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and audit access to domain events.
type EventRepo interface {
	// AppendResponse records a graded response event.
	AppendResponse(ctx context.Context, data ResponseEventData) error

	// AppendLLMRequest records a grading-model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ResponsesBySession returns a session's response events in
	// sequence order.
	ResponsesBySession(ctx context.Context, sessionID string) ([]ResponseEvent, error)

	// RecentLLMRequests returns the newest grading-model call events,
	// newest first, up to limit.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)
}

// SnapshotRepo manages sealed proficiency snapshots. Save is atomic (one
// row, one insert) and is called exactly once per finalized session.
type SnapshotRepo interface {
	// Save stores a snapshot. Fails if one already exists for the session.
	Save(ctx context.Context, snap *profile.Snapshot) error

	// BySession returns the snapshot for a session, or nil if none exists.
	BySession(ctx context.Context, sessionID string) (*profile.Snapshot, error)

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*profile.Snapshot, error)
}

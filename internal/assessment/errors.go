package assessment

import "errors"

var (
	// ErrSessionNotFound reports an unknown session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidSessionState reports a response submitted to a session
	// that is not accepting one, e.g. a terminal session.
	ErrInvalidSessionState = errors.New("invalid session state")

	// ErrUnexpectedItem reports a response referencing an item that is
	// not the session's currently pending item.
	ErrUnexpectedItem = errors.New("unexpected item")

	// ErrCorruptState reports a profile that violated its invariants.
	// The session is forced to Abandoned when this is detected.
	ErrCorruptState = errors.New("corrupt session state")

	// ErrNoSnapshot reports a snapshot request for a session that has
	// not finalized one.
	ErrNoSnapshot = errors.New("no snapshot for session")
)

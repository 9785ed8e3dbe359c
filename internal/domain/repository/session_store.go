package repository

import "context"

// SessionStore maps opaque session ids to user ids. It is an explicit
// injected object so tests can run against an isolated instance.
type SessionStore interface {
	// Put records sid -> userID.
	Put(ctx context.Context, sid, userID string) error
	// Get resolves a session id. Returns ErrNotFound for unknown ids.
	Get(ctx context.Context, sid string) (string, error)
	// Delete removes a session. The bool reports whether a mapping
	// existed; deleting twice returns false the second time.
	Delete(ctx context.Context, sid string) (bool, error)
}

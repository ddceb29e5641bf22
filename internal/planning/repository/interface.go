package repository

import (
	"time"

	"planning-assistant/internal/model"
)

// SessionRepository is the single authoritative store of session state.
// Implementations are constructed once at startup and injected; no
// package-level state.
type SessionRepository interface {
	// GetOrCreate returns the record for the key, creating a fresh
	// empty one on first reference. Never fails.
	GetOrCreate(sessionID string) *model.Session

	// Get returns the record and whether it exists, without creating.
	Get(sessionID string) (*model.Session, bool)

	// WithSession runs fn while holding the per-key lock, creating the
	// record first when absent. Concurrent calls for the same key
	// serialize; different keys proceed in parallel. The record's
	// UpdatedAt is stamped after fn returns without error.
	WithSession(sessionID string, fn func(*model.Session) error) error

	// ViewSession runs fn under the same per-key lock without creating
	// the record. Returns false when the key is absent; fn must not
	// retain the record past its return. Readers go through here so
	// they cannot observe a session mid-mutation.
	ViewSession(sessionID string, fn func(*model.Session) error) (bool, error)

	// Remove deletes a record; idempotent.
	Remove(sessionID string)

	// ClearAll empties the store. Used for test isolation.
	ClearAll()

	// ListActiveKeys returns a snapshot of tracked session keys.
	ListActiveKeys() []string

	// EvictOlderThan removes sessions whose UpdatedAt is older than
	// the cutoff and returns the number removed. Never called
	// automatically; an external scheduler owns the cadence.
	EvictOlderThan(maxAge time.Duration) int
}

package memory

import (
	"sync"
	"time"

	"planning-assistant/internal/model"
	"planning-assistant/internal/planning/repository"
)

// Store is the in-memory session repository. The top-level mutex guards
// the maps; a per-key mutex serializes all mutations of one session so
// two concurrent requests for the same key cannot race on phase or
// document state.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
	locks    map[string]*sync.Mutex
}

var _ repository.SessionRepository = (*Store)(nil)

// New creates an empty session store.
func New() *Store {
	return &Store{
		sessions: make(map[string]*model.Session),
		locks:    make(map[string]*sync.Mutex),
	}
}

// GetOrCreate returns the record for the key, creating it on first reference.
func (s *Store) GetOrCreate(sessionID string) *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(sessionID)
}

func (s *Store) getOrCreateLocked(sessionID string) *model.Session {
	if sess, ok := s.sessions[sessionID]; ok {
		return sess
	}
	now := time.Now()
	sess := &model.Session{
		ID:        sessionID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions[sessionID] = sess
	s.locks[sessionID] = &sync.Mutex{}
	return sess
}

// Get returns the record without creating it.
func (s *Store) Get(sessionID string) (*model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	return sess, ok
}

// WithSession serializes fn against every other WithSession call for the
// same key.
func (s *Store) WithSession(sessionID string, fn func(*model.Session) error) error {
	s.mu.Lock()
	sess := s.getOrCreateLocked(sessionID)
	lock := s.locks[sessionID]
	s.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()

	if err := fn(sess); err != nil {
		return err
	}

	s.mu.Lock()
	sess.UpdatedAt = time.Now()
	s.mu.Unlock()
	return nil
}

// ViewSession runs fn under the per-key lock without creating the
// record. Returns false when the key is absent.
func (s *Store) ViewSession(sessionID string, fn func(*model.Session) error) (bool, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	lock := s.locks[sessionID]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	lock.Lock()
	defer lock.Unlock()
	return true, fn(sess)
}

// Remove deletes a record; no-op when absent.
func (s *Store) Remove(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	delete(s.locks, sessionID)
}

// ClearAll empties the store.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*model.Session)
	s.locks = make(map[string]*sync.Mutex)
}

// ListActiveKeys returns a snapshot of currently tracked session keys.
func (s *Store) ListActiveKeys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.sessions))
	for key := range s.sessions {
		keys = append(keys, key)
	}
	return keys
}

// EvictOlderThan removes every session whose last update is older than
// the cutoff and returns the number removed.
func (s *Store) EvictOlderThan(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, key)
			delete(s.locks, key)
			evicted++
		}
	}
	return evicted
}

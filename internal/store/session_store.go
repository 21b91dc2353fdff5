// Package store holds live exam sessions in memory. Sessions are
// deliberately not persisted: a session lives exactly as long as the
// candidate's run and is discarded on return to the catalog.
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Mohit-5899/CSIRNet-Mock-Test/internal/exam"
)

// SessionStore is an in-memory registry of running sessions.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*exam.Session
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*exam.Session),
	}
}

// Put registers a session under its own id.
func (s *SessionStore) Put(sess *exam.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

// Get looks up a session by id.
func (s *SessionStore) Get(id uuid.UUID) (*exam.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Delete discards a session. Unknown ids are ignored.
func (s *SessionStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Package session tracks the authenticated identity and persists it across
// restarts. The Store itself performs the pure state transition only;
// persistence is a subscriber wired up by Persist, so the store stays
// testable without touching storage.
package session

import (
	"sync"

	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
)

// Store holds the current session and notifies subscribers on change.
type Store struct {
	mu      sync.RWMutex
	current domain.Session
	subs    []func(domain.Session)
}

func NewStore() *Store {
	return &Store{}
}

// Get returns the current session. Authorization checks derive from the
// returned value (Session.IsAuthenticated, Session.IsAdmin) on every call.
func (s *Store) Get() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set replaces the current session and notifies subscribers. Logout is
// represented as setting the empty session.
func (s *Store) Set(sess domain.Session) {
	s.mu.Lock()
	s.current = sess
	subs := make([]func(domain.Session), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(sess)
	}
}

// Subscribe registers fn to be called after every Set. Subscribers run on
// the caller's goroutine, outside the store lock.
func (s *Store) Subscribe(fn func(domain.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Clear resets the store to the logged-out session.
func (s *Store) Clear() {
	s.Set(domain.Session{})
}

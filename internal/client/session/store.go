// Package session holds the authenticated identity of the CLI user.
//
// The Store is the single source of truth for the route guard and for the
// HTTP adapter, which reads Token on every request. User and token are always
// set and cleared together.
package session

import (
	"sync"

	"github.com/dmitrijs2005/showcase/internal/client/models"
)

// State is a snapshot of the session. User is nil iff Token is empty.
type State struct {
	User  *models.User
	Token string
}

func (s State) Authenticated() bool {
	return s.Token != ""
}

// Listener is called after every effective change, outside the store lock.
type Listener func(State)

type Store struct {
	mu    sync.RWMutex
	user  *models.User
	token string

	lmu       sync.Mutex
	listeners map[int]Listener
	nextID    int
}

func NewStore() *Store {
	return &Store{listeners: make(map[int]Listener)}
}

// SetAuth replaces the session with user and token. The token is opaque and
// not validated. An empty token is treated as Logout so the pair can never be
// half set.
func (s *Store) SetAuth(user models.User, token string) {
	if token == "" {
		s.Logout()
		return
	}

	s.mu.Lock()
	u := user
	s.user = &u
	s.token = token
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(st)
}

// Logout clears the session. Calling it on an empty session is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	if s.token == "" && s.user == nil {
		s.mu.Unlock()
		return
	}
	s.user = nil
	s.token = ""
	st := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(st)
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current user.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.lmu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.lmu.Unlock()

	return func() {
		s.lmu.Lock()
		delete(s.listeners, id)
		s.lmu.Unlock()
	}
}

func (s *Store) snapshotLocked() State {
	st := State{Token: s.token}
	if s.user != nil {
		u := *s.user
		st.User = &u
	}
	return st
}

func (s *Store) notify(st State) {
	s.lmu.Lock()
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.lmu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

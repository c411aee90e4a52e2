package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/AlexZinkM/paper-wallet/internal/engine"
)

// ErrNotFound is returned for unknown session ids
var ErrNotFound = errors.New("session not found")

// Store keeps sessions in memory. Nothing is persisted.
type Store struct {
	engine engine.Engine

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty Store whose sessions use e
func NewStore(e engine.Engine) *Store {
	return &Store{engine: e, sessions: make(map[string]*Session)}
}

// Create starts a new session
func (st *Store) Create() *Session {
	s := New(uuid.NewString(), st.engine)

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session with the given id
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete ends a session
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(st.sessions, id)
	return nil
}

// Len returns the number of live sessions
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

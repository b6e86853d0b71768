package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Well-known session keys.
const (
	KeyCurrentTeamID   = "current_team_id"
	KeyInvitationToken = "invitation_token"
)

type contextKey struct{}

// Session is the per-request session context. Handlers and services receive
// it explicitly instead of reading ambient state.
type Session struct {
	ID string

	mu     sync.RWMutex
	values map[string]string
}

func (s *Session) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *Session) Put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *Session) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Store holds sessions in process memory, keyed by the session cookie value.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for id, or nil if it does not exist.
func (s *Store) Get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Start creates a new session with a random id.
func (s *Store) Start() *Session {
	sess := &Session{
		ID:     uuid.NewString(),
		values: make(map[string]string),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess
}

// Destroy removes a session from the store.
func (s *Store) Destroy(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// WithContext attaches a session to the request context.
func WithContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// FromContext returns the request session, or nil when none was started.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(contextKey{}).(*Session)
	return sess
}

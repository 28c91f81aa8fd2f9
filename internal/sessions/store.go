package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"clinicrecords/internal/models"
)

// Store is a process-wide, concurrency-safe map of opaque tokens to
// sessions. Sessions are ephemeral: they do not survive a restart.
// Expired entries are evicted lazily on Resolve.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]models.Session
}

// New creates an empty session store with the given fixed TTL.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]models.Session),
	}
}

// Create issues a new session for the user and returns its token. Tokens
// are random UUIDs; validity is the full TTL regardless of activity.
// A user may hold any number of concurrent sessions.
func (s *Store) Create(userID uuid.UUID, username, role string) string {
	token := uuid.NewString()
	now := time.Now()

	s.mu.Lock()
	s.sessions[token] = models.Session{
		Token:     token,
		UserID:    userID,
		Username:  username,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.mu.Unlock()

	return token
}

// Resolve returns the session for a token. An unknown or expired token
// resolves to (nil, false); expired entries are removed on the way out.
func (s *Store) Resolve(token string) (*models.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(sess.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, false
	}
	return &sess, true
}

// Destroy removes the session for a token. Unknown tokens are a no-op.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Len reports the number of stored sessions, expired entries included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

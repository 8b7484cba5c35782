// Package sessions holds the admin bearer tokens. Tokens are opaque random
// values valid only while the process lives: no expiry, no persistence, no
// identity beyond "issued by a successful login".
package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store maps issued tokens to their issue time. It is shared across request
// handlers and guarded by a RWMutex; it does not survive a restart.
type Store struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
}

func NewStore() *Store {
	return &Store{tokens: make(map[string]time.Time)}
}

// Issue registers and returns a new opaque token.
func (s *Store) Issue() string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = time.Now()
	s.mu.Unlock()
	return token
}

// Validate reports whether a token was issued by this process and not yet
// revoked.
func (s *Store) Validate(token string) bool {
	s.mu.RLock()
	_, ok := s.tokens[token]
	s.mu.RUnlock()
	return ok
}

// Revoke removes a token. Revoking an unknown token is a no-op.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

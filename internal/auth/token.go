package auth

import (
	"sync"
	"time"

	"github.com/alfawave-io/alfacrm/internal/constants"
)

// Token represents a session token issued by the login endpoint.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Valid reports whether the token can still be sent.
func (t *Token) Valid() bool {
	return t.ValidAt(time.Now())
}

// ValidAt reports whether the token can still be sent at the given instant.
// A safety margin before the server-side expiry counts as expired so an
// in-flight request cannot race the cutoff.
func (t *Token) ValidAt(now time.Time) bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return now.Add(constants.TokenExpirySafetyMargin).Before(t.ExpiresAt)
}

// TokenStore provides thread-safe token storage.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates a new token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the current token, nil when none is stored.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set stores a token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Clear removes the stored token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	s.token = nil
	s.mu.Unlock()
}

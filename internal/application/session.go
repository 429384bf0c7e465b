// Package application holds the services between the HTTP adapter and the
// stores: the session gate, and the restore-defaults operator.
package application

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Session is the server-side state bound to one issued token.
type Session struct {
	Username string
	IssuedAt time.Time
}

// SessionStore keeps live sessions in memory, keyed by opaque token, with a
// fixed expiry from issuance. Sessions do not survive a restart; the admin
// just logs in again.
type SessionStore struct {
	tokens *cache.Cache
}

// NewSessionStore creates a store whose sessions expire ttl after creation.
// Expired entries are swept in the background.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{tokens: cache.New(ttl, 10*time.Minute)}
}

// Create issues a fresh token bound to username.
func (s *SessionStore) Create(username string) string {
	token := uuid.NewString()
	s.tokens.Set(token, Session{Username: username, IssuedAt: time.Now().UTC()}, cache.DefaultExpiration)
	return token
}

// Get looks up a live session. Expired and unknown tokens are
// indistinguishable: both report no session.
func (s *SessionStore) Get(token string) (Session, bool) {
	v, ok := s.tokens.Get(token)
	if !ok {
		return Session{}, false
	}
	return v.(Session), true
}

// Delete destroys a session. Idempotent: deleting an unknown token is a
// no-op.
func (s *SessionStore) Delete(token string) {
	s.tokens.Delete(token)
}

// Rename rebinds a live session to a new username, preserving its remaining
// lifetime. Unknown tokens are ignored.
func (s *SessionStore) Rename(token, username string) {
	v, expiry, ok := s.tokens.GetWithExpiration(token)
	if !ok {
		return
	}
	sess := v.(Session)
	sess.Username = username

	ttl := cache.DefaultExpiration
	if !expiry.IsZero() {
		ttl = time.Until(expiry)
	}
	s.tokens.Set(token, sess, ttl)
}

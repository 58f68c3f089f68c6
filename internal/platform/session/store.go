package session

import (
	"context"
	"sync"
	"time"
)

// Session is an issued admin session keyed by its opaque token.
type Session struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (s Session) expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !s.ExpiresAt.After(now)
}

// Store keeps sessions in process memory until they expire or are revoked.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Session
	ttl     time.Duration
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]Session),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Put registers token for subject and sweeps expired sessions.
func (s *Store) Put(_ context.Context, token, subject string) Session {
	now := s.now()
	item := Session{
		Subject:  subject,
		IssuedAt: now,
	}
	if s.ttl > 0 {
		item.ExpiresAt = now.Add(s.ttl)
	}
	if token == "" {
		return item
	}

	s.mu.Lock()
	for key, existing := range s.entries {
		if existing.expired(now) {
			delete(s.entries, key)
		}
	}
	s.entries[token] = item
	s.mu.Unlock()

	return item
}

func (s *Store) Lookup(_ context.Context, token string) (Session, bool) {
	if token == "" {
		return Session{}, false
	}

	now := s.now()
	s.mu.RLock()
	item, ok := s.entries[token]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if item.expired(now) {
		s.mu.Lock()
		delete(s.entries, token)
		s.mu.Unlock()
		return Session{}, false
	}

	return item, true
}

// Revoke drops token and reports whether it was active.
func (s *Store) Revoke(_ context.Context, token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	_, ok := s.entries[token]
	delete(s.entries, token)
	s.mu.Unlock()
	return ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

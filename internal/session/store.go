package session

import (
	"errors"
	"sync"
	"time"

	"github.com/hitteshkharyal/Analytics-Dashboard/internal/cart"
)

var ErrNotFound = errors.New("cart session not found")

// Store keeps each session's staged cart between requests. Entries expire
// after the configured TTL; a missing or expired session is reported as
// ErrNotFound and callers start a fresh cart.
type Store interface {
	Get(sessionID string) (*cart.Cart, error)
	Put(sessionID string, c *cart.Cart) error
	Delete(sessionID string) error
}

type memoryEntry struct {
	lines     []cart.Line
	expiresAt time.Time
}

// memoryStore is the single-process fallback used when no Redis URL is
// configured, and by the test suite.
type memoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

func (s *memoryStore) Get(sessionID string) (*cart.Cart, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, sessionID)
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	return &cart.Cart{Lines: append([]cart.Line(nil), entry.lines...)}, nil
}

func (s *memoryStore) Put(sessionID string, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = memoryEntry{
		lines:     append([]cart.Line(nil), c.Lines...),
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *memoryStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

// Package session stores each chat's selected stream.
package session

import (
	"context"
	"sync"
	"time"

	"exam_results_bot/internal/domain/session"
)

type memoryEntry struct {
	streamID  string
	expiresAt time.Time
}

// MemoryStore keeps stream choices in process memory until they expire.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[int64]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates a store whose entries live for ttl; ttl <= 0 never expires.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[int64]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) SetStream(_ context.Context, chatID int64, streamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := memoryEntry{streamID: streamID}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.entries[chatID] = e
	return nil
}

func (s *MemoryStore) GetStream(_ context.Context, chatID int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[chatID]
	if !ok {
		return "", session.ErrNoStream
	}
	if s.expired(e) {
		delete(s.entries, chatID)
		return "", session.ErrNoStream
	}
	return e.streamID, nil
}

func (s *MemoryStore) Sweep(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed, nil
}

func (s *MemoryStore) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt)
}

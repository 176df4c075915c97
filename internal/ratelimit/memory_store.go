package ratelimit

import (
	"context"
	"sync"
	"time"
)

type MemoryStore struct {
	mu      sync.Mutex
	hits    map[string][]time.Time
	expires map[string]time.Time
	now     func() time.Time

	lastSweep time.Time
	sweepEach time.Duration
}

type MemoryOption func(*MemoryStore)

func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) { s.now = now }
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		hits:      make(map[string][]time.Time),
		expires:   make(map[string]time.Time),
		now:       time.Now,
		sweepEach: time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Increment(_ context.Context, key string, window time.Duration, limit int) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictExpired(now)

	cutoff := now.Add(-window)
	kept := s.hits[key][:0]
	for _, ts := range s.hits[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	allowed := len(kept) < limit
	if allowed {
		kept = append(kept, now)
	}
	if len(kept) == 0 {
		delete(s.hits, key)
		delete(s.expires, key)
		return Result{Allowed: allowed, ResetAt: now.Add(window)}, nil
	}
	s.hits[key] = kept
	s.expires[key] = kept[len(kept)-1].Add(window)

	return Result{Allowed: allowed, Count: len(kept), ResetAt: kept[0].Add(window)}, nil
}

// Len reports the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hits)
}

func (s *MemoryStore) evictExpired(now time.Time) {
	if now.Sub(s.lastSweep) < s.sweepEach {
		return
	}
	s.lastSweep = now
	for key, exp := range s.expires {
		if !now.Before(exp) {
			delete(s.hits, key)
			delete(s.expires, key)
		}
	}
}

package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store in process memory.
type MemoryStore struct {
	data       map[string]entry
	mu         sync.RWMutex
	gcInterval time.Duration
	stopCh     chan struct{}
	closeOnce  sync.Once
}

type entry struct {
	total     uint
	expiresAt time.Time // zero means no expiry
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// NewMemoryStore starts a store that sweeps expired entries every gcInterval.
func NewMemoryStore(gcInterval time.Duration) *MemoryStore {
	if gcInterval <= 0 {
		gcInterval = 10 * time.Minute
	}
	s := &MemoryStore{
		data:       make(map[string]entry),
		gcInterval: gcInterval,
		stopCh:     make(chan struct{}),
	}
	go s.gc()
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) (uint, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || e.expired(time.Now()) {
		return 0, false, nil
	}
	return e.total, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, n uint, ttl time.Duration) error {
	e := entry{total: n}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.data[key] = e
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Invalidate(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// Close stops the gc goroutine. Safe to call more than once.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() { close(s.stopCh) })
	return nil
}

func (s *MemoryStore) gc() {
	ticker := time.NewTicker(s.gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(time.Now())
		case <-s.stopCh:
			return
		}
	}
}

func (s *MemoryStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.data {
		if e.expired(now) {
			delete(s.data, k)
		}
	}
}

var _ Store = (*MemoryStore)(nil)

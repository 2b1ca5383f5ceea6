// Package lock provides job locks that keep a scheduled job from running twice at once.
package lock

import (
	"context"
	"sync"
	"time"

	"github.com/finai/backend/internal/application/adapter"
)

// MemoryLock implements adapter.JobLock inside a single process.
type MemoryLock struct {
	mu   sync.Mutex
	held map[string]time.Time
	now  func() time.Time
}

// NewMemoryLock creates a new in-process job lock.
func NewMemoryLock() adapter.JobLock {
	return &MemoryLock{
		held: make(map[string]time.Time),
		now:  time.Now,
	}
}

// TryAcquire takes the lock if it is free or its previous holder's ttl has expired.
func (l *MemoryLock) TryAcquire(_ context.Context, key string, ttl time.Duration) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if expires, ok := l.held[key]; ok && now.Before(expires) {
		return nil, false, nil
	}

	expires := now.Add(ttl)
	l.held[key] = expires

	release := func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		// A newer holder may have taken over after expiry.
		if held, ok := l.held[key]; ok && held.Equal(expires) {
			delete(l.held, key)
		}
	}
	return release, true, nil
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// JobLock guarantees at most one concurrent run per job id.
type JobLock interface {
	// TryAcquire takes the lock for key without waiting. ok is false when another run holds it.
	// The returned release func must be called once the run finishes.
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool, err error)
}

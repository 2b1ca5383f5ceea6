// Package lock provides job locks that keep a scheduled job from running twice at once.
package lock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finai/backend/internal/application/adapter"
)

const keyPrefix = "finai:job-lock:"

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLock implements adapter.JobLock with SET NX PX, so it holds across processes.
type RedisLock struct {
	client *redis.Client
}

// NewRedisLock creates a new Redis-backed job lock.
func NewRedisLock(client *redis.Client) adapter.JobLock {
	return &RedisLock{
		client: client,
	}
}

// TryAcquire takes the lock if nobody holds it. The ttl bounds how long a crashed holder blocks others.
func (l *RedisLock) TryAcquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	token := uuid.NewString()
	fullKey := keyPrefix + key

	ok, err := l.client.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		// The caller's context may already be cancelled when the run ends.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client, []string{fullKey}, token).Err(); err != nil {
			slog.Error("Failed to release job lock", "key", key, "error", err)
		}
	}
	return release, true, nil
}

package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/finai/backend/internal/application/adapter"
)

func newRedisLock(t *testing.T) (adapter.JobLock, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLock(client), server
}

func exerciseLock(t *testing.T, l adapter.JobLock) {
	ctx := context.Background()

	release, ok, err := l.TryAcquire(ctx, "daily_check", time.Minute)
	if err != nil || !ok {
		t.Fatalf("expected first acquire to succeed, got %v %v", ok, err)
	}

	if _, ok, _ := l.TryAcquire(ctx, "daily_check", time.Minute); ok {
		t.Error("expected second acquire to be refused")
	}

	if _, ok, _ := l.TryAcquire(ctx, "weekly_monitor", time.Minute); !ok {
		t.Error("expected other job ids to be independent")
	}

	release()

	if _, ok, _ := l.TryAcquire(ctx, "daily_check", time.Minute); !ok {
		t.Error("expected acquire after release to succeed")
	}
}

func TestRedisLock(t *testing.T) {
	l, _ := newRedisLock(t)
	exerciseLock(t, l)
}

func TestRedisLock_Expiry(t *testing.T) {
	l, server := newRedisLock(t)
	ctx := context.Background()

	staleRelease, ok, _ := l.TryAcquire(ctx, "monthly_report", time.Second)
	if !ok {
		t.Fatal("expected acquire to succeed")
	}
	server.FastForward(2 * time.Second)

	_, ok, _ = l.TryAcquire(ctx, "monthly_report", time.Minute)
	if !ok {
		t.Fatal("expected expired lock to be taken over")
	}

	// The stale holder must not release the new holder's lock.
	staleRelease()
	if _, ok, _ := l.TryAcquire(ctx, "monthly_report", time.Minute); ok {
		t.Error("expected lock to remain held by the new holder")
	}
}

func TestMemoryLock(t *testing.T) {
	exerciseLock(t, NewMemoryLock())
}

func TestMemoryLock_Expiry(t *testing.T) {
	l := NewMemoryLock().(*MemoryLock)
	current := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }

	if _, ok, _ := l.TryAcquire(context.Background(), "job", time.Minute); !ok {
		t.Fatal("expected acquire to succeed")
	}
	staleRelease, ok, _ := l.TryAcquire(context.Background(), "stale", time.Minute)
	if !ok {
		t.Fatal("expected acquire to succeed")
	}

	current = current.Add(2 * time.Minute)
	if _, ok, _ := l.TryAcquire(context.Background(), "job", time.Minute); !ok {
		t.Error("expected expired lock to be taken over")
	}

	if _, ok, _ := l.TryAcquire(context.Background(), "stale", time.Minute); !ok {
		t.Fatal("expected expired lock to be taken over")
	}
	// The stale holder must not release the new holder's lock.
	staleRelease()
	if _, ok, _ := l.TryAcquire(context.Background(), "stale", time.Minute); ok {
		t.Error("expected stale release to leave the new holder's lock in place")
	}
}

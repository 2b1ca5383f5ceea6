package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/finai/backend/config"
)

func TestNewRedisClient(t *testing.T) {
	t.Run("empty url disables redis", func(t *testing.T) {
		client, err := NewRedisClient(context.Background(), &config.RedisConfig{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client != nil {
			t.Fatal("expected nil client")
		}
		if HealthCheck(client)() {
			t.Error("expected nil client to be unhealthy")
		}
	})

	t.Run("connects to a running server", func(t *testing.T) {
		server := miniredis.RunT(t)

		client, err := NewRedisClient(context.Background(), &config.RedisConfig{URL: "redis://" + server.Addr()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer client.Close()

		if !HealthCheck(client)() {
			t.Error("expected client to be healthy")
		}
	})

	t.Run("invalid url", func(t *testing.T) {
		if _, err := NewRedisClient(context.Background(), &config.RedisConfig{URL: "://nope"}); err == nil {
			t.Error("expected error for invalid url")
		}
	})
}

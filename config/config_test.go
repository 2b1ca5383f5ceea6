package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected sqlite driver by default, got %s", cfg.Database.Driver)
	}
	if cfg.Advisor.MaxTokens != 500 {
		t.Errorf("expected 500 max tokens, got %d", cfg.Advisor.MaxTokens)
	}
	if cfg.Advisor.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %v", cfg.Advisor.Temperature)
	}
	if cfg.Scheduler.ReportPath != "data/agent_logs.jsonl" {
		t.Errorf("unexpected report path %s", cfg.Scheduler.ReportPath)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("ADVISOR_TIMEOUT", "5s")
	t.Setenv("ADVISOR_TEMPERATURE", "0.2")
	t.Setenv("SCHEDULER_ENABLED", "false")
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg := Load()

	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.Database.Driver)
	}
	if cfg.Advisor.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.Advisor.Timeout)
	}
	if cfg.Advisor.Temperature != 0.2 {
		t.Errorf("expected temperature 0.2, got %v", cfg.Advisor.Temperature)
	}
	if cfg.Scheduler.Enabled {
		t.Error("expected scheduler disabled")
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("expected fallback port 5000, got %d", cfg.Server.Port)
	}
}

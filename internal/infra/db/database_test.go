package db

import (
	"testing"

	"github.com/finai/backend/config"
	"github.com/finai/backend/internal/integration/persistence/model"
)

func TestNewConnection_SQLite(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{
		Driver: DriverSQLite,
		URL:    "file::memory:",
	})
	if err != nil {
		t.Fatalf("expected connection, got %v", err)
	}
	defer database.Close()

	if err := database.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("expected migration to succeed, got %v", err)
	}
	if !database.HealthCheck() {
		t.Error("expected healthy database")
	}
	if !database.DB().Migrator().HasTable("alerts") {
		t.Error("expected alerts table")
	}
}

func TestNewConnection_UnknownDriver(t *testing.T) {
	if _, err := NewConnection(&config.DatabaseConfig{Driver: "mysql"}); err == nil {
		t.Error("expected error for unsupported driver")
	}
}

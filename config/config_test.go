// Package config provides application configuration management.
package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 3001 {
		t.Errorf("Server.Port = %d, want 3001", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want %q", cfg.Database.Driver, "sqlite")
	}
	if cfg.Database.SQLitePath != "data/lavacar.db" {
		t.Errorf("Database.SQLitePath = %q, want %q", cfg.Database.SQLitePath, "data/lavacar.db")
	}
	if cfg.Closing.ListLimit != 30 {
		t.Errorf("Closing.ListLimit = %d, want 30", cfg.Closing.ListLimit)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("CLOSING_LIST_LIMIT", "7")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")

	cfg := Load()

	if cfg.Database.SQLitePath != "/tmp/test.db" {
		t.Errorf("Database.SQLitePath = %q, want %q", cfg.Database.SQLitePath, "/tmp/test.db")
	}
	if cfg.Closing.ListLimit != 7 {
		t.Errorf("Closing.ListLimit = %d, want 7", cfg.Closing.ListLimit)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 30s", cfg.Server.ReadTimeout)
	}
}

func TestLoad_MalformedIntFallsBack(t *testing.T) {
	t.Setenv("CLOSING_LIST_LIMIT", "many")

	cfg := Load()

	if cfg.Closing.ListLimit != 30 {
		t.Errorf("Closing.ListLimit = %d, want default 30", cfg.Closing.ListLimit)
	}
}

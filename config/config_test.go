// config/config_test.go
package config

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != "wetten.db" {
		t.Errorf("expected default database wetten.db, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.NotificationTTL != DefaultNotificationTTL {
		t.Errorf("expected default TTL %v, got %v", DefaultNotificationTTL, cfg.NotificationTTL)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("NOTIFY_TTL", "5")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != "postgres://test" {
		t.Errorf("expected postgres://test, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
	if cfg.NotificationTTL != 5*time.Second {
		t.Errorf("expected 5s TTL, got %v", cfg.NotificationTTL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("DATABASE_URL", "env.db")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-d", "flag.db", "-notify-ttl", "7"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.DatabaseURL != "flag.db" {
		t.Errorf("CLI should override env: expected flag.db, got %q", cfg.DatabaseURL)
	}
	if cfg.NotificationTTL != 7*time.Second {
		t.Errorf("expected 7s TTL, got %v", cfg.NotificationTTL)
	}
}

func TestParseFlags_RejectsUnknownDatabaseType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "mysql"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestParseFlags_RejectsBadTTLEnv(t *testing.T) {
	os.Setenv("NOTIFY_TTL", "soon")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for non-numeric NOTIFY_TTL")
	}
}

// internal/config/config_test.go

package config

import (
	"os"
	"testing"
)

var keys = []string{
	"PORT", "LOG_LEVEL", "DATABASE_PATH", "CLIENT_ORIGIN",
	"JWT_SECRET", "JWT_EXPIRES_DAYS", "COOKIE_NAME", "ANON_COOKIE_NAME", "COOKIE_SECURE",
}

// clearEnv unsets every config variable; t.Setenv registers the restore.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.DatabasePath != "./data/checkers.db" {
		t.Errorf("DatabasePath = %q", cfg.DatabasePath)
	}
	if cfg.ClientOrigin != "http://localhost:5173" {
		t.Errorf("ClientOrigin = %q", cfg.ClientOrigin)
	}
	if cfg.JWTExpiresDays != 14 {
		t.Errorf("JWTExpiresDays = %d, want 14", cfg.JWTExpiresDays)
	}
	if cfg.CookieName != "checkers_token" || cfg.AnonCookieName != "checkers_anon" {
		t.Errorf("cookie names = %q/%q", cfg.CookieName, cfg.AnonCookieName)
	}
	if cfg.CookieSecure {
		t.Error("CookieSecure defaults to true, want false")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_EXPIRES_DAYS", "30")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.LogLevel != "debug" {
		t.Errorf("Port/LogLevel = %q/%q, want 9090/debug", cfg.Port, cfg.LogLevel)
	}
	if cfg.JWTExpiresDays != 30 {
		t.Errorf("JWTExpiresDays = %d, want 30", cfg.JWTExpiresDays)
	}
	if !cfg.CookieSecure {
		t.Error("CookieSecure not overridden")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_EXPIRES_DAYS", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a non-numeric JWT_EXPIRES_DAYS")
	}
}

package config_test

import (
	"testing"

	"github.com/km-arc/go-scaffold/framework/config"
)

// clearEnv blanks the scaffold's env keys so defaults apply.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_NAME", "APP_ENV", "APP_DEBUG", "APP_PORT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := config.Load("testdata/missing.env")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "GoScaffold"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Port", cfg.App.Port, "8000"},
		{"Log.Level", cfg.Log.Level, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if !cfg.App.Debug {
		t.Error("App.Debug should default to true")
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_NAME", "MyApp")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg := config.Load()

	if cfg.App.Name != "MyApp" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "MyApp")
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env: got %q want %q", cfg.App.Env, "production")
	}
	if cfg.App.Port != "9000" {
		t.Errorf("App.Port: got %q want %q", cfg.App.Port, "9000")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level: got %q want %q", cfg.Log.Level, "warn")
	}
}

func TestLoad_AppDebug(t *testing.T) {
	clearEnv(t)

	t.Setenv("APP_DEBUG", "false")
	if cfg := config.Load(); cfg.App.Debug {
		t.Error("expected App.Debug to be false")
	}

	t.Setenv("APP_DEBUG", "true")
	if cfg := config.Load(); !cfg.App.Debug {
		t.Error("expected App.Debug to be true")
	}
}

// ── Get helpers ──────────────────────────────────────────────────────────────

func TestGet_FallsBackToDefault(t *testing.T) {
	t.Setenv("SOME_MISSING_KEY", "")
	if got := config.Get("SOME_MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("Get: got %q want %q", got, "fallback")
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("WORKERS", "12")
	if got := config.GetInt("WORKERS", 4); got != 12 {
		t.Errorf("GetInt: got %d want 12", got)
	}

	t.Setenv("WORKERS", "not-a-number")
	if got := config.GetInt("WORKERS", 4); got != 4 {
		t.Errorf("GetInt with invalid value: got %d want 4", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("FEATURE_ON", "true")
	if !config.GetBool("FEATURE_ON", false) {
		t.Error("GetBool: expected true")
	}

	t.Setenv("FEATURE_ON", "")
	if config.GetBool("FEATURE_ON", false) {
		t.Error("GetBool: expected fallback false")
	}
}

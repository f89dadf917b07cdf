package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Host != "localhost" || cfg.Port != 3000 {
		t.Errorf("unexpected address %s:%d", cfg.Host, cfg.Port)
	}
	if cfg.CountUpDuration != time.Second {
		t.Errorf("count-up should default to one second, got %v", cfg.CountUpDuration)
	}
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"HYPERINVOICE_HOST":             "0.0.0.0",
		"HYPERINVOICE_PORT":             "8080",
		"HYPERINVOICE_LOG_LEVEL":        "debug",
		"HYPERINVOICE_LOG_FORMAT":       "json",
		"HYPERINVOICE_SESSION_TTL":      "5m",
		"HYPERINVOICE_COUNTUP_DURATION": "500ms",
		"HYPERINVOICE_COUNTUP_INTERVAL": " ",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Host != "0.0.0.0" || cfg.Port != 8080 {
		t.Errorf("unexpected address %s:%d", cfg.Host, cfg.Port)
	}
	if cfg.LogLevel != slog.LevelDebug || cfg.LogFormat != "json" {
		t.Errorf("unexpected logging config %v %s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.SessionTTL != 5*time.Minute || cfg.CountUpDuration != 500*time.Millisecond {
		t.Errorf("unexpected durations %v %v", cfg.SessionTTL, cfg.CountUpDuration)
	}
	if cfg.CountUpInterval != 16*time.Millisecond {
		t.Errorf("blank value should keep the default, got %v", cfg.CountUpInterval)
	}
}

func TestFromLookup_Invalid(t *testing.T) {
	tests := map[string]string{
		"HYPERINVOICE_PORT":             "seventy",
		"HYPERINVOICE_LOG_LEVEL":        "loud",
		"HYPERINVOICE_LOG_FORMAT":       "xml",
		"HYPERINVOICE_SESSION_TTL":      "forever",
		"HYPERINVOICE_COUNTUP_DURATION": "-1s",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			_, err := FromLookup(lookupFrom(map[string]string{key: value}))
			if err == nil {
				t.Fatalf("expected an error for %s=%s", key, value)
			}
			if !strings.Contains(err.Error(), key) {
				t.Errorf("error should name the variable: %v", err)
			}
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	if err := os.WriteFile(file, []byte("HYPERINVOICE_PORT=4321\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HYPERINVOICE_PORT", "")
	os.Unsetenv("HYPERINVOICE_PORT")

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 4321 {
		t.Errorf("want port from env file, got %d", cfg.Port)
	}

	if _, err := Load(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}

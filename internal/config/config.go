// Package config reads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "HYPERINVOICE_"

type Config struct {
	Host string
	Port uint

	LogLevel  slog.Level
	LogFormat string

	SessionTTL      time.Duration
	CountUpDuration time.Duration
	CountUpInterval time.Duration
}

func Default() *Config {
	return &Config{
		Host:            "localhost",
		Port:            3000,
		LogLevel:        slog.LevelInfo,
		LogFormat:       "text",
		SessionTTL:      30 * time.Minute,
		CountUpDuration: time.Second,
		CountUpInterval: 16 * time.Millisecond,
	}
}

// Load reads the optional env files (".env" when none are given) and then
// the process environment. A missing env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from the variables lookup finds.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	get := func(key string) (string, bool) {
		v, ok := lookup(envPrefix + key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("HOST"); ok {
		cfg.Host = v
	}
	if v, ok := get("PORT"); ok {
		port, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid %sPORT %q: %w", envPrefix, v, err)
		}
		cfg.Port = uint(port)
	}
	if v, ok := get("LOG_LEVEL"); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid %sLOG_LEVEL %q: %w", envPrefix, v, err)
		}
	}
	if v, ok := get("LOG_FORMAT"); ok {
		switch v {
		case "text", "json":
			cfg.LogFormat = v
		default:
			return nil, fmt.Errorf("invalid %sLOG_FORMAT %q: want text or json", envPrefix, v)
		}
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"SESSION_TTL", &cfg.SessionTTL},
		{"COUNTUP_DURATION", &cfg.CountUpDuration},
		{"COUNTUP_INTERVAL", &cfg.CountUpInterval},
	}
	for _, d := range durations {
		v, ok := get(d.key)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s%s %q: %w", envPrefix, d.key, v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("invalid %s%s %q: must be positive", envPrefix, d.key, v)
		}
		*d.dst = parsed
	}

	return cfg, nil
}

// Logger builds the application logger writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

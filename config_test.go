package gamewatch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Storage.Key != "authData" {
		t.Fatalf("unexpected storage key %q", cfg.Storage.Key)
	}
}

func TestConfigValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }, ErrInvalidConfig},
		{"relative base url", func(c *Config) { c.API.BaseURL = "/api" }, ErrInvalidConfig},
		{"ftp base url", func(c *Config) { c.API.BaseURL = "ftp://host" }, ErrInvalidConfig},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }, ErrInvalidConfig},
		{"unknown storage", func(c *Config) { c.Storage.Backend = "sqlite" }, ErrUnknownStorage},
		{"redis without addr", func(c *Config) {
			c.Storage.Backend = StorageRedis
			c.Storage.Redis.Addr = ""
		}, ErrInvalidConfig},
		{"empty key", func(c *Config) { c.Storage.Key = "" }, ErrInvalidConfig},
		{"negative redirects", func(c *Config) { c.Router.MaxRedirects = -1 }, ErrInvalidConfig},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, ErrInvalidConfig},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, ErrInvalidConfig},
		{"histograms without metrics", func(c *Config) {
			c.Metrics.Enabled = false
			c.Metrics.EnableLatencyHistograms = true
		}, ErrInvalidConfig},
		{"audit without buffer", func(c *Config) {
			c.Audit.Enabled = true
			c.Audit.BufferSize = 0
		}, ErrInvalidConfig},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
api:
  base_url: https://api.example.com
  timeout: 3s
storage:
  backend: redis
  key: session
  redis:
    addr: 127.0.0.1:6380
    prefix: gw
    ttl: 24h
session:
  drop_expired: true
log:
  level: debug
  format: json
audit:
  enabled: true
  path: /tmp/gamewatch-audit.log
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.API.BaseURL != "https://api.example.com" || cfg.API.Timeout != 3*time.Second {
		t.Fatalf("unexpected api config %+v", cfg.API)
	}
	if cfg.Storage.Backend != StorageRedis || cfg.Storage.Key != "session" {
		t.Fatalf("unexpected storage config %+v", cfg.Storage)
	}
	if cfg.Storage.Redis.Addr != "127.0.0.1:6380" || cfg.Storage.Redis.TTL != 24*time.Hour {
		t.Fatalf("unexpected redis config %+v", cfg.Storage.Redis)
	}
	if !cfg.Session.DropExpired || cfg.Log.Format != "json" || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected session/log config %+v %+v", cfg.Session, cfg.Log)
	}
	// Unset keys keep their defaults.
	if cfg.API.UserAgent != DefaultConfig().API.UserAgent || cfg.Audit.BufferSize != 1024 {
		t.Fatalf("defaults lost: %+v %+v", cfg.API, cfg.Audit)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api:\n  base_url: http://file.example\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GAMEWATCH_API_BASE_URL", "http://env.example:9000")
	t.Setenv("GAMEWATCH_STORAGE_BACKEND", "memory")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.API.BaseURL != "http://env.example:9000" {
		t.Fatalf("env override ignored: %q", cfg.API.BaseURL)
	}
	if cfg.Storage.Backend != StorageMemory {
		t.Fatalf("env override ignored: %q", cfg.Storage.Backend)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}

func TestLoadConfigValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewLoggerFormats(t *testing.T) {
	log, err := NewLogger(LogConfig{Level: "warn", Format: "json"}, nil)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if log.GetLevel().String() != "warning" {
		t.Fatalf("unexpected level %s", log.GetLevel())
	}
	if _, err := NewLogger(LogConfig{Level: "nope"}, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

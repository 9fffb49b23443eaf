package gamewatch

import (
	"fmt"
	"net/url"
	"time"

	"github.com/MrEthical07/gamewatch/api"
	"github.com/MrEthical07/gamewatch/session"
	"github.com/sirupsen/logrus"
)

// Config is the full client configuration. Build it with DefaultConfig or LoadConfig
// and treat it as immutable once passed to the Builder.
type Config struct {
	API     APIConfig
	Storage StorageConfig
	Session SessionConfig
	Router  RouterConfig
	Log     LogConfig
	Metrics MetricsConfig
	Audit   AuditConfig
}

/*
====================================
API CONFIG
====================================
*/

type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

/*
====================================
STORAGE CONFIG
====================================
*/

// StorageBackend selects where the session record is persisted.
type StorageBackend string

const (
	StorageFile   StorageBackend = "file"
	StorageRedis  StorageBackend = "redis"
	StorageMemory StorageBackend = "memory"
)

type StorageConfig struct {
	Backend StorageBackend
	// Path of the file slot. Empty means the user config dir.
	Path  string
	Key   string
	Redis RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	// TTL of the stored record; zero keeps it until logout.
	TTL time.Duration
}

/*
====================================
SESSION / ROUTER CONFIG
====================================
*/

type SessionConfig struct {
	// DropExpired discards a restored session whose JWT exp has passed.
	DropExpired bool
}

type RouterConfig struct {
	MaxRedirects int
}

/*
====================================
OBSERVABILITY CONFIG
====================================
*/

type LogConfig struct {
	Level  string
	Format string // "text" (default) or "json"
}

type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

type AuditConfig struct {
	Enabled    bool
	Path       string
	BufferSize int
	DropIfFull bool
}

// DefaultConfig returns a configuration for a local API with the session kept in a
// file under the user config dir.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:   "http://localhost:8080",
			Timeout:   api.DefaultTimeout,
			UserAgent: api.DefaultUserAgent,
		},
		Storage: StorageConfig{
			Backend: StorageFile,
			Key:     session.DefaultSlotKey,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "gamewatch",
			},
		},
		Router: RouterConfig{
			MaxRedirects: 4,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled:                 true,
			EnableLatencyHistograms: true,
		},
		Audit: AuditConfig{
			BufferSize: 1024,
			DropIfFull: true,
		},
	}
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return invalid("api.base_url is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid("api.base_url must be an absolute http(s) URL")
	}
	if c.API.Timeout <= 0 {
		return invalid("api.timeout must be > 0")
	}

	switch c.Storage.Backend {
	case StorageFile, StorageMemory:
	case StorageRedis:
		if c.Storage.Redis.Addr == "" {
			return invalid("storage.redis.addr is required for the redis backend")
		}
		if c.Storage.Redis.TTL < 0 {
			return invalid("storage.redis.ttl must be >= 0")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, c.Storage.Backend)
	}
	if c.Storage.Key == "" {
		return invalid("storage.key is required")
	}

	if c.Router.MaxRedirects < 0 {
		return invalid("router.max_redirects must be >= 0")
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level: " + err.Error())
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return invalid("log.format must be text or json")
	}

	if c.Metrics.EnableLatencyHistograms && !c.Metrics.Enabled {
		return invalid("metrics.enable_latency_histograms requires metrics.enabled")
	}

	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return invalid("audit.buffer_size must be > 0 when audit is enabled")
	}

	return nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, msg)
}

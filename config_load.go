package gamewatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. GAMEWATCH_API_BASE_URL.
const EnvPrefix = "GAMEWATCH"

// LoadConfig reads a YAML config file over DefaultConfig and applies GAMEWATCH_*
// environment overrides. With an empty path it looks for config.yaml in
// $HOME/.gamewatch and the working directory, and a missing file is not an error.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.gamewatch")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		API:     getAPIConfig(v),
		Storage: getStorageConfig(v),
		Session: SessionConfig{DropExpired: v.GetBool("session.drop_expired")},
		Router:  RouterConfig{MaxRedirects: v.GetInt("router.max_redirects")},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Metrics: MetricsConfig{
			Enabled:                 v.GetBool("metrics.enabled"),
			EnableLatencyHistograms: v.GetBool("metrics.enable_latency_histograms"),
		},
		Audit: AuditConfig{
			Enabled:    v.GetBool("audit.enabled"),
			Path:       v.GetString("audit.path"),
			BufferSize: v.GetInt("audit.buffer_size"),
			DropIfFull: v.GetBool("audit.drop_if_full"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getAPIConfig(v *viper.Viper) APIConfig {
	return APIConfig{
		BaseURL:   v.GetString("api.base_url"),
		Timeout:   v.GetDuration("api.timeout"),
		UserAgent: v.GetString("api.user_agent"),
	}
}

func getStorageConfig(v *viper.Viper) StorageConfig {
	return StorageConfig{
		Backend: StorageBackend(strings.ToLower(v.GetString("storage.backend"))),
		Path:    v.GetString("storage.path"),
		Key:     v.GetString("storage.key"),
		Redis: RedisConfig{
			Addr:     v.GetString("storage.redis.addr"),
			Password: v.GetString("storage.redis.password"),
			DB:       v.GetInt("storage.redis.db"),
			Prefix:   v.GetString("storage.redis.prefix"),
			TTL:      v.GetDuration("storage.redis.ttl"),
		},
	}
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.timeout", d.API.Timeout)
	v.SetDefault("api.user_agent", d.API.UserAgent)

	v.SetDefault("storage.backend", string(d.Storage.Backend))
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("storage.key", d.Storage.Key)
	v.SetDefault("storage.redis.addr", d.Storage.Redis.Addr)
	v.SetDefault("storage.redis.password", d.Storage.Redis.Password)
	v.SetDefault("storage.redis.db", d.Storage.Redis.DB)
	v.SetDefault("storage.redis.prefix", d.Storage.Redis.Prefix)
	v.SetDefault("storage.redis.ttl", d.Storage.Redis.TTL)

	v.SetDefault("session.drop_expired", d.Session.DropExpired)
	v.SetDefault("router.max_redirects", d.Router.MaxRedirects)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.enable_latency_histograms", d.Metrics.EnableLatencyHistograms)

	v.SetDefault("audit.enabled", d.Audit.Enabled)
	v.SetDefault("audit.path", d.Audit.Path)
	v.SetDefault("audit.buffer_size", d.Audit.BufferSize)
	v.SetDefault("audit.drop_if_full", d.Audit.DropIfFull)
}

package gamewatch

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MrEthical07/gamewatch/api"
	"github.com/MrEthical07/gamewatch/notify"
	"github.com/MrEthical07/gamewatch/session"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Builder collects the configuration and collaborators of an App. A Builder builds
// exactly once.
type Builder struct {
	config Config

	httpClient *http.Client
	redis      redis.UniversalClient
	slot       session.Slot
	notifier   notify.Notifier
	log        *logrus.Logger
	auditSink  AuditSink

	built bool
}

func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithHTTPClient replaces the client used for API calls. Its Timeout wins over
// api.timeout when set.
func (b *Builder) WithHTTPClient(c *http.Client) *Builder {
	b.httpClient = c
	return b
}

// WithRedis supplies the client used by the redis storage backend. A client passed here
// is not closed by App.Close.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithSlot overrides the storage backend from the config.
func (b *Builder) WithSlot(slot session.Slot) *Builder {
	b.slot = slot
	return b
}

func (b *Builder) WithNotifier(n notify.Notifier) *Builder {
	b.notifier = n
	return b
}

func (b *Builder) WithLogger(log *logrus.Logger) *Builder {
	b.log = log
	return b
}

func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the config and assembles the App. It performs no network I/O;
// App.Start restores the persisted session.
func (b *Builder) Build() (*App, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}

	cfg := b.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := b.log
	if log == nil {
		var err error
		if log, err = NewLogger(cfg.Log, nil); err != nil {
			return nil, err
		}
	}

	client, err := api.New(api.Config{
		BaseURL:    cfg.API.BaseURL,
		Timeout:    cfg.API.Timeout,
		UserAgent:  cfg.API.UserAgent,
		HTTPClient: b.httpClient,
		Log:        log,
	})
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:     cfg,
		log:     log,
		api:     client,
		metrics: NewMetrics(cfg.Metrics),
	}

	slot, err := b.buildSlot(app)
	if err != nil {
		app.closeResources()
		return nil, err
	}

	sink, err := b.buildAuditSink(app)
	if err != nil {
		app.closeResources()
		return nil, err
	}
	app.audit = newAuditTrail(cfg.Audit, sink)

	notifier := b.notifier
	if notifier == nil {
		notifier = notify.NewConsole(os.Stdout)
	}

	if err := app.assemble(slot, notifier); err != nil {
		app.closeResources()
		return nil, err
	}

	b.built = true
	return app, nil
}

func (b *Builder) buildSlot(app *App) (session.Slot, error) {
	if b.slot != nil {
		return b.slot, nil
	}

	st := app.cfg.Storage
	switch st.Backend {
	case StorageMemory:
		return session.NewMemorySlot(), nil
	case StorageRedis:
		client := b.redis
		if client == nil {
			owned := redis.NewClient(&redis.Options{
				Addr:     st.Redis.Addr,
				Password: st.Redis.Password,
				DB:       st.Redis.DB,
			})
			app.closers = append(app.closers, owned.Close)
			client = owned
		}
		return session.NewRedisSlot(client, st.Redis.Prefix, st.Key, st.Redis.TTL), nil
	case StorageFile:
		path := st.Path
		if path == "" {
			var err error
			if path, err = session.DefaultFilePath(st.Key); err != nil {
				return nil, fmt.Errorf("resolve session file: %w", err)
			}
		}
		return session.NewFileSlot(path), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, st.Backend)
}

func (b *Builder) buildAuditSink(app *App) (AuditSink, error) {
	if !app.cfg.Audit.Enabled {
		return nil, nil
	}
	if b.auditSink != nil {
		return b.auditSink, nil
	}
	if app.cfg.Audit.Path == "" {
		return nil, ErrAuditPath
	}

	if err := os.MkdirAll(filepath.Dir(app.cfg.Audit.Path), 0o700); err != nil {
		return nil, fmt.Errorf("audit dir: %w", err)
	}
	f, err := os.OpenFile(app.cfg.Audit.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	app.closers = append(app.closers, f.Close)
	return NewLogSink(newAuditLogger(f)), nil
}

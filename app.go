package gamewatch

import (
	"context"
	"errors"
	"sync"

	"github.com/MrEthical07/gamewatch/api"
	"github.com/MrEthical07/gamewatch/notify"
	"github.com/MrEthical07/gamewatch/router"
	"github.com/MrEthical07/gamewatch/session"
	"github.com/MrEthical07/gamewatch/view"
	"github.com/sirupsen/logrus"
)

const (
	loginEndpoint    = "/auth/login"
	registerEndpoint = "/auth/register"
)

// App is an assembled client: session store, API client, guarded router and views.
// It is safe for concurrent use once built.
type App struct {
	cfg     Config
	log     *logrus.Logger
	api     *api.Client
	store   *session.Store
	router  *router.Router
	metrics *Metrics
	audit   *auditTrail

	auth     *view.Auth
	profile  *view.Profile
	games    *view.Games
	wishlist *view.Wishlist
	reviews  *view.Reviews
	users    *view.Users

	unsubscribe []func()
	closers     []func() error
	closeOnce   sync.Once
	closeErr    error
}

func (a *App) assemble(slot session.Slot, notifier notify.Notifier) error {
	a.store = session.NewStore(authBackend{client: a.api}, slot, session.Options{
		Log:         a.log,
		DropExpired: a.cfg.Session.DropExpired,
	})

	table, err := router.NewTable(DefaultRoutes()...)
	if err != nil {
		return err
	}
	a.router = router.New(table, a.store, router.NewHistory(), router.Options{
		Log:          a.log,
		MaxRedirects: a.cfg.Router.MaxRedirects,
		OnDecision:   a.onDecision,
	})

	deps := view.Deps{
		Session: a.store,
		API:     a.api,
		Notify:  notifier,
		Router:  a.router,
		Log:     a.log,
	}
	a.auth = view.NewAuth(deps)
	a.profile = view.NewProfile(deps)
	a.games = view.NewGames(deps)
	a.wishlist = view.NewWishlist(deps)
	a.reviews = view.NewReviews(deps)
	a.users = view.NewUsers(deps)

	if err := table.BindPrepare(router.LoginPath, a.auth.LoginPrepare); err != nil {
		return err
	}
	hooks := map[string]router.EnterFunc{
		VerifyPath:   a.auth.VerifyEnter,
		WishlistPath: a.wishlist.Enter,
		UsersPath:    a.users.Enter,
	}
	for pattern, enter := range hooks {
		if err := table.Bind(pattern, enter); err != nil {
			return err
		}
	}

	a.unsubscribe = append(a.unsubscribe,
		a.api.Subscribe(a.onResponse),
		a.store.Subscribe(a.onSessionEvent),
	)
	return nil
}

// Start restores the persisted session. Call it once before navigating.
func (a *App) Start(ctx context.Context) error {
	if err := a.store.Initialize(ctx); err != nil {
		if errors.Is(err, session.ErrSlotUnavailable) {
			a.log.WithError(err).Warn("session storage unavailable, starting anonymous")
			return nil
		}
		return err
	}
	return nil
}

// onResponse runs for every API attempt. An invalidation response drops the session
// and sends the user to the login page flagged as expired.
func (a *App) onResponse(ev api.ResponseEvent) {
	a.metrics.Inc(MetricAPIRequest)
	a.metrics.Observe(MetricAPILatency, ev.Duration)
	if ev.Failed() {
		a.metrics.Inc(MetricAPIFailure)
	}

	switch ev.Path {
	case loginEndpoint:
		if ev.Failed() {
			a.metrics.Inc(MetricLoginFailure)
		}
	case registerEndpoint:
		if ev.Failed() {
			a.metrics.Inc(MetricRegisterFailure)
		} else {
			a.metrics.Inc(MetricRegisterSuccess)
		}
	}
	a.audit.Response(context.Background(), ev)

	if !api.IsInvalidation(ev) {
		return
	}

	ctx := context.Background()
	dropped := a.store.Invalidate(ctx)
	a.log.WithFields(logrus.Fields{
		"path":       ev.Path,
		"request_id": ev.RequestID,
		"dropped":    dropped,
	}).Info("session invalidated by api")

	if _, err := a.router.Navigate(ctx, ExpiredLoginPath); err != nil {
		a.log.WithError(err).Error("redirect after invalidation failed")
	}
}

func (a *App) onSessionEvent(ev session.Event) {
	switch ev.Kind {
	case session.EventLoggedIn:
		a.metrics.Inc(MetricLoginSuccess)
	case session.EventLoggedOut:
		a.metrics.Inc(MetricLogout)
	case session.EventRestored:
		a.metrics.Inc(MetricSessionRestored)
	case session.EventUpdated:
		a.metrics.Inc(MetricSessionUpdated)
	case session.EventInvalidated:
		a.metrics.Inc(MetricSessionInvalidated)
	}

	a.audit.SessionEvent(context.Background(), ev)
}

func (a *App) onDecision(route router.Route, loc router.Location, d router.Decision) {
	if d.Allow {
		a.metrics.Inc(MetricGuardAllowed)
		return
	}
	a.metrics.Inc(MetricGuardRedirected)
}

func (a *App) Config() Config { return a.cfg }
func (a *App) Logger() *logrus.Logger { return a.log }
func (a *App) API() *api.Client { return a.api }
func (a *App) Session() *session.Store { return a.store }
func (a *App) Router() *router.Router { return a.router }
func (a *App) Auth() *view.Auth { return a.auth }
func (a *App) Profile() *view.Profile { return a.profile }
func (a *App) Games() *view.Games { return a.games }
func (a *App) Wishlist() *view.Wishlist { return a.wishlist }
func (a *App) Reviews() *view.Reviews { return a.reviews }
func (a *App) Users() *view.Users { return a.users }
func (a *App) Metrics() *Metrics { return a.metrics }
func (a *App) MetricsSnapshot() MetricsSnapshot { return a.metrics.Snapshot() }

// AuditDropped counts audit events discarded because the buffer was full.
func (a *App) AuditDropped() uint64 {
	return a.audit.Dropped()
}

// Menu returns the navigation bar for the current location.
func (a *App) Menu() []view.MenuEntry {
	current := router.HomePath
	if loc, ok := a.router.Current(); ok {
		current = loc.Path
	}
	if rec, ok := a.store.Current(); ok {
		return view.Menu(&rec, current)
	}
	return view.Menu(nil, current)
}

// Close detaches the event handlers, flushes the audit trail and releases owned
// resources. It is safe to call more than once.
func (a *App) Close() error {
	a.closeOnce.Do(func() {
		for _, unsub := range a.unsubscribe {
			unsub()
		}
		a.closeErr = a.closeResources()
	})
	return a.closeErr
}

func (a *App) closeResources() error {
	a.audit.Close()
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

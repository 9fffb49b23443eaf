package view

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MrEthical07/gamewatch/api"
	"github.com/MrEthical07/gamewatch/notify"
	"github.com/MrEthical07/gamewatch/router"
	"github.com/MrEthical07/gamewatch/session"
	"github.com/sirupsen/logrus"
)

type apiBackend struct{ client *api.Client }

func (b apiBackend) Register(ctx context.Context, name, email, password string) error {
	return b.client.Register(ctx, name, email, password)
}

func (b apiBackend) Login(ctx context.Context, email, password string) (session.Record, error) {
	data, err := b.client.Login(ctx, email, password)
	if err != nil {
		return session.Record{}, err
	}
	return session.Record{
		DisplayName:          data.Name,
		Email:                data.Email,
		AuthToken:            data.Token,
		EmailVerified:        data.EmailVerified,
		NotificationsEnabled: data.NotificationsEnabled,
		Roles:                session.NewRoles(data.Roles...),
	}, nil
}

type fakeNav struct {
	mu    sync.Mutex
	calls []string
}

func (n *fakeNav) Navigate(_ context.Context, target string) (router.Location, error) {
	n.record("navigate " + target)
	return router.ParseLocation(target)
}

func (n *fakeNav) Replace(_ context.Context, target string) (router.Location, error) {
	n.record("replace " + target)
	return router.ParseLocation(target)
}

func (n *fakeNav) record(call string) {
	n.mu.Lock()
	n.calls = append(n.calls, call)
	n.mu.Unlock()
}

func (n *fakeNav) Calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.calls...)
}

type harness struct {
	deps     Deps
	store    *session.Store
	slot     *session.MemorySlot
	notices  *notify.Recorder
	nav      *fakeNav
	mux      *http.ServeMux
	requests map[string]int
	mu       sync.Mutex
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		mux:      http.NewServeMux(),
		notices:  &notify.Recorder{},
		nav:      &fakeNav{},
		slot:     session.NewMemorySlot(),
		requests: map[string]int{},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		h.requests[r.Method+" "+r.URL.Path]++
		h.mu.Unlock()
		h.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	client, err := api.New(api.Config{BaseURL: srv.URL, Log: log})
	if err != nil {
		t.Fatalf("api client: %v", err)
	}
	h.store = session.NewStore(apiBackend{client: client}, h.slot, session.Options{Log: log})
	h.deps = Deps{
		Session: h.store,
		API:     client,
		Notify:  h.notices,
		Router:  h.nav,
		Log:     log,
	}
	return h
}

func (h *harness) count(method, path string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.requests[method+" "+path]
}

// login seeds the store with rec through the real login endpoint.
func (h *harness) login(t *testing.T, rec api.AuthData) {
	t.Helper()
	h.mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(rec)
	})
	if err := h.store.Login(context.Background(), rec.Email, "secret"); err != nil {
		t.Fatalf("seed login: %v", err)
	}
}

func reply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

func userData() api.AuthData {
	return api.AuthData{Name: "A", Email: "a@a.com", Token: "t1"}
}

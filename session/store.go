package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrEthical07/gamewatch/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Backend is the remote side of the session: account creation and credential exchange.
type Backend interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (Record, error)
}

// EventKind names a session state transition.
type EventKind string

const (
	EventRestored    EventKind = "session_restored"
	EventLoggedIn    EventKind = "session_logged_in"
	EventUpdated     EventKind = "session_updated"
	EventLoggedOut   EventKind = "session_logged_out"
	EventInvalidated EventKind = "session_invalidated"
)

// Event describes a transition. Record is the zero value once the session is gone.
type Event struct {
	Kind    EventKind
	Record  Record
	Version uint64
	At      time.Time
}

// Listener receives events synchronously, after the store lock is released.
type Listener func(Event)

// Options tune a Store. The zero value is usable.
type Options struct {
	Log logrus.FieldLogger

	// DropExpired discards a rehydrated record whose token is a JWT with a past exp.
	DropExpired bool

	Now func() time.Time
}

// Store is the single source of truth for who is logged in. It is safe for concurrent use.
//
// Each mutation performs its read-modify-write and the matching slot write while holding
// the lock. Concurrent mutations from independent callers still resolve last-write-wins;
// Version increases on every write so callers can detect that another write happened.
type Store struct {
	backend     Backend
	slot        Slot
	log         logrus.FieldLogger
	now         func() time.Time
	dropExpired bool

	mu      sync.RWMutex
	current *Record
	version uint64

	inFlight atomic.Int32

	initOnce sync.Once
	initErr  error

	listenersMu sync.RWMutex
	listeners   map[string]Listener
}

// NewStore creates an Anonymous store. Call Initialize once before use.
func NewStore(backend Backend, slot Slot, opts Options) *Store {
	if slot == nil {
		slot = NewMemorySlot()
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		backend:     backend,
		slot:        slot,
		log:         log.WithField("component", "session"),
		now:         now,
		dropExpired: opts.DropExpired,
		listeners:   make(map[string]Listener),
	}
}

// Initialize adopts the persisted record when it is present and well-formed. Malformed
// data is erased. Only the first call does any work; later calls return its result.
func (s *Store) Initialize(ctx context.Context) error {
	s.initOnce.Do(func() {
		s.initErr = s.rehydrate(ctx)
	})
	return s.initErr
}

func (s *Store) rehydrate(ctx context.Context) error {
	data, err := s.slot.Load(ctx)
	if errors.Is(err, ErrSlotEmpty) {
		return nil
	}
	if err != nil {
		s.log.WithError(err).Warn("session slot could not be read")
		return err
	}

	rec, err := Decode(data)
	if err == nil && s.dropExpired && s.tokenExpired(rec.AuthToken) {
		err = ErrTokenExpired
	}
	if err != nil {
		s.log.WithError(err).Warn("discarding persisted session")
		if eraseErr := s.slot.Erase(ctx); eraseErr != nil {
			s.log.WithError(eraseErr).Warn("session slot could not be erased")
		}
		return nil
	}

	s.mu.Lock()
	s.current = &rec
	s.version++
	ev := s.eventLocked(EventRestored)
	s.mu.Unlock()

	s.emit(ev)
	return nil
}

// ErrTokenExpired marks a persisted record dropped because its JWT had expired.
var ErrTokenExpired = errors.New("persisted session token expired")

func (s *Store) tokenExpired(token string) bool {
	claims, err := jwt.Inspect(token)
	if err != nil {
		return false
	}
	return claims.Expired(s.now())
}

// Register creates an account. It never changes the session: registering does not log in.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	done := s.beginFlight()
	defer done()

	if err := s.backend.Register(ctx, name, email, password); err != nil {
		s.log.WithError(err).Debug("register failed")
		return err
	}
	return nil
}

// Login exchanges credentials for a record and makes it current. On failure the previous
// state is left untouched and the backend error is returned as is.
func (s *Store) Login(ctx context.Context, email, password string) error {
	done := s.beginFlight()
	defer done()

	rec, err := s.backend.Login(ctx, email, password)
	if err != nil {
		s.log.WithError(err).Debug("login failed")
		return err
	}
	if rec.AuthToken == "" {
		return ErrEmptyToken
	}

	rec = rec.Clone()
	s.mu.Lock()
	s.current = &rec
	s.version++
	s.persistLocked(ctx)
	ev := s.eventLocked(EventLoggedIn)
	s.mu.Unlock()

	s.emit(ev)
	return nil
}

// Logout drops the current record and erases the persisted copy. Calling it while
// Anonymous only re-erases the slot.
func (s *Store) Logout(ctx context.Context) {
	s.drop(ctx, EventLoggedOut)
}

// Invalidate drops the session because the API rejected its credential. It reports
// whether a session was actually dropped.
func (s *Store) Invalidate(ctx context.Context) bool {
	return s.drop(ctx, EventInvalidated)
}

func (s *Store) drop(ctx context.Context, kind EventKind) bool {
	s.mu.Lock()
	had := s.current != nil
	s.current = nil
	if had {
		s.version++
	}
	if err := s.slot.Erase(ctx); err != nil {
		s.log.WithError(err).Warn("session slot could not be erased")
	}
	ev := s.eventLocked(kind)
	s.mu.Unlock()

	if had {
		s.emit(ev)
	}
	return had
}

// Update applies patch to a copy of the current record, makes the copy current and
// persists it. It does nothing while Anonymous.
//
// patch runs with the store locked and must not call any Store method. A patch that
// panics leaves the session unchanged and the store usable.
func (s *Store) Update(ctx context.Context, patch func(*Record)) error {
	ev, changed, err := s.update(ctx, patch)
	if err != nil || !changed {
		return err
	}
	s.emit(ev)
	return nil
}

func (s *Store) update(ctx context.Context, patch func(*Record)) (Event, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Event{}, false, nil
	}

	next := s.current.Clone()
	patch(&next)
	if next.AuthToken == "" {
		return Event{}, false, ErrEmptyToken
	}

	s.current = &next
	s.version++
	s.persistLocked(ctx)
	return s.eventLocked(EventUpdated), true, nil
}

// Replace swaps the current record for rec. It does nothing while Anonymous.
func (s *Store) Replace(ctx context.Context, rec Record) error {
	return s.Update(ctx, func(r *Record) {
		*r = rec.Clone()
	})
}

// Current returns a copy of the current record.
func (s *Store) Current() (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Record{}, false
	}
	return s.current.Clone(), true
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Version increases on every change of the current record.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// InFlight reports whether a Register or Login call is pending.
func (s *Store) InFlight() bool {
	return s.inFlight.Load() > 0
}

func (s *Store) beginFlight() func() {
	s.inFlight.Add(1)
	return func() { s.inFlight.Add(-1) }
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	id := uuid.NewString()

	s.listenersMu.Lock()
	s.listeners[id] = l
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

func (s *Store) persistLocked(ctx context.Context) {
	data, err := Encode(*s.current)
	if err == nil {
		err = s.slot.Save(ctx, data)
	}
	if err != nil {
		s.log.WithError(err).Warn("session could not be persisted")
	}
}

func (s *Store) eventLocked(kind EventKind) Event {
	ev := Event{Kind: kind, Version: s.version, At: s.now()}
	if s.current != nil {
		ev.Record = s.current.Clone()
	}
	return ev
}

func (s *Store) emit(ev Event) {
	s.listenersMu.RLock()
	ls := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		ls = append(ls, l)
	}
	s.listenersMu.RUnlock()

	for _, l := range ls {
		l(ev)
	}
}

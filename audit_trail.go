package gamewatch

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrEthical07/gamewatch/api"
	"github.com/MrEthical07/gamewatch/session"
)

// auditEntry is one queued input. Exactly one of session and response is set.
type auditEntry struct {
	at       time.Time
	kind     string
	session  *session.Event
	response *api.ResponseEvent
}

func (e auditEntry) event() AuditEvent {
	if e.session != nil {
		return AuditEvent{
			Timestamp: e.at,
			EventType: string(e.session.Kind),
			Email:     e.session.Record.Email,
			Version:   e.session.Version,
			Success:   true,
		}
	}

	r := e.response
	ev := AuditEvent{
		Timestamp: e.at,
		EventType: e.kind,
		Path:      r.Path,
		Status:    r.Status,
		RequestID: r.RequestID,
		Success:   !r.Failed(),
	}
	switch {
	case r.Err != nil:
		ev.Error = r.Err.Error()
	case r.Failed():
		ev.Error = "status " + strconv.Itoa(r.Status)
	}
	return ev
}

// responseAuditKind picks the responses worth a trail entry. A successful login is
// left to the session event it produces.
func responseAuditKind(ev api.ResponseEvent) (string, bool) {
	switch ev.Path {
	case loginEndpoint:
		return AuditLoginFailed, ev.Failed()
	case registerEndpoint:
		if ev.Failed() {
			return AuditRegisterFailed, true
		}
		return AuditRegistered, true
	}
	return "", false
}

// auditTrail turns session transitions and account responses into AuditEvents on its
// own goroutine, so neither the store nor the HTTP path waits on the sink.
type auditTrail struct {
	sink       AuditSink
	dropIfFull bool
	entries    chan auditEntry
	wg         sync.WaitGroup
	dropped    atomic.Uint64

	mu     sync.RWMutex
	closed bool
}

// newAuditTrail returns nil when audit is disabled. A nil trail ignores everything.
func newAuditTrail(cfg AuditConfig, sink AuditSink) *auditTrail {
	if !cfg.Enabled || sink == nil {
		return nil
	}

	t := &auditTrail{
		sink:       sink,
		dropIfFull: cfg.DropIfFull,
		entries:    make(chan auditEntry, max(cfg.BufferSize, 1)),
	}
	t.wg.Add(1)
	go t.run()
	return t
}

func (t *auditTrail) run() {
	defer t.wg.Done()
	for e := range t.entries {
		t.sink.Emit(context.Background(), e.event())
	}
}

func (t *auditTrail) SessionEvent(ctx context.Context, ev session.Event) {
	if t == nil {
		return
	}
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	t.enqueue(ctx, auditEntry{at: at, session: &ev})
}

func (t *auditTrail) Response(ctx context.Context, ev api.ResponseEvent) {
	if t == nil {
		return
	}
	kind, ok := responseAuditKind(ev)
	if !ok {
		return
	}
	t.enqueue(ctx, auditEntry{at: time.Now(), kind: kind, response: &ev})
}

// enqueue drops and counts the entry when the buffer is full and dropIfFull is set.
// Otherwise it waits for room or for ctx.
func (t *auditTrail) enqueue(ctx context.Context, e auditEntry) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		return
	}

	if t.dropIfFull {
		select {
		case t.entries <- e:
		default:
			t.dropped.Add(1)
		}
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case t.entries <- e:
	case <-ctx.Done():
	}
}

// Close stops accepting entries, lets the worker drain the queue and waits for it.
func (t *auditTrail) Close() {
	if t == nil {
		return
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	close(t.entries)
	t.mu.Unlock()

	t.wg.Wait()
}

func (t *auditTrail) Dropped() uint64 {
	if t == nil {
		return 0
	}
	return t.dropped.Load()
}

package router

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Fallback is the pattern matched when no exact pattern does.
const Fallback = "*"

var (
	// ErrNoRoute is returned when nothing matches and the table has no fallback.
	ErrNoRoute = errors.New("no route")
	// ErrDuplicateRoute is returned by NewTable for a repeated pattern.
	ErrDuplicateRoute = errors.New("duplicate route")
	// ErrInvalidRoute is returned by NewTable and Bind for a bad pattern or mode.
	ErrInvalidRoute = errors.New("invalid route")
)

// EnterFunc runs after the guard allowed loc.
type EnterFunc func(ctx context.Context, loc Location) error

// PrepareFunc runs before the guard decides on loc and returns the location to decide
// on instead. It may change the session.
type PrepareFunc func(ctx context.Context, loc Location) (Location, error)

// Route binds a pattern to its session requirement.
type Route struct {
	Pattern string
	Name    string
	Mode    Mode
	Prepare PrepareFunc
	Enter   EnterFunc
}

// Table is the declarative route set. Patterns are exact paths or Fallback.
type Table struct {
	mu     sync.RWMutex
	routes map[string]Route
}

func NewTable(routes ...Route) (*Table, error) {
	t := &Table{routes: make(map[string]Route, len(routes))}
	for _, r := range routes {
		if r.Pattern == "" || (r.Pattern != Fallback && r.Pattern[0] != '/') {
			return nil, fmt.Errorf("%w: pattern %q", ErrInvalidRoute, r.Pattern)
		}
		if !r.Mode.valid() {
			return nil, fmt.Errorf("%w: %q has mode %s", ErrInvalidRoute, r.Pattern, r.Mode)
		}
		if _, dup := t.routes[r.Pattern]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRoute, r.Pattern)
		}
		t.routes[r.Pattern] = r
	}
	return t, nil
}

// Bind attaches the Enter hook of pattern, replacing any previous one.
func (t *Table) Bind(pattern string, enter EnterFunc) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.routes[pattern]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoRoute, pattern)
	}
	r.Enter = enter
	t.routes[pattern] = r
	return nil
}

// BindPrepare attaches the Prepare hook of pattern, replacing any previous one.
func (t *Table) BindPrepare(pattern string, prepare PrepareFunc) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.routes[pattern]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoRoute, pattern)
	}
	r.Prepare = prepare
	t.routes[pattern] = r
	return nil
}

// Match returns the route for p, falling back to the "*" route.
func (t *Table) Match(p string) (Route, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if r, ok := t.routes[p]; ok {
		return r, true
	}
	r, ok := t.routes[Fallback]
	return r, ok
}

// Routes lists every route sorted by pattern, with the fallback last.
func (t *Table) Routes() []Route {
	t.mu.RLock()
	out := make([]Route, 0, len(t.routes))
	for _, r := range t.routes {
		out = append(out, r)
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Pattern == Fallback || out[j].Pattern == Fallback {
			return out[j].Pattern == Fallback && out[i].Pattern != Fallback
		}
		return out[i].Pattern < out[j].Pattern
	})
	return out
}

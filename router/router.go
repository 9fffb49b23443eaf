package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultMaxRedirects bounds guard redirects within one navigation.
const DefaultMaxRedirects = 4

// ErrRedirectLoop is returned when the guard keeps redirecting.
var ErrRedirectLoop = errors.New("redirect loop")

// SessionState is what the guard needs to know about the session.
type SessionState interface {
	Authenticated() bool
}

// DecisionFunc observes every guard decision.
type DecisionFunc func(route Route, loc Location, d Decision)

type Options struct {
	Log          logrus.FieldLogger
	MaxRedirects int
	OnDecision   DecisionFunc
}

// Router navigates through the guard. Enter hooks run without any router lock held and
// may navigate again.
type Router struct {
	table        *Table
	session      SessionState
	history      *History
	log          logrus.FieldLogger
	maxRedirects int
	onDecision   DecisionFunc
}

func New(table *Table, session SessionState, history *History, opts Options) *Router {
	if history == nil {
		history = NewHistory()
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	max := opts.MaxRedirects
	if max <= 0 {
		max = DefaultMaxRedirects
	}
	return &Router{
		table:        table,
		session:      session,
		history:      history,
		log:          log.WithField("component", "router"),
		maxRedirects: max,
		onDecision:   opts.OnDecision,
	}
}

func (r *Router) History() *History {
	return r.history
}

// Current returns the location currently shown.
func (r *Router) Current() (Location, bool) {
	return r.history.Current()
}

// Navigate pushes target and enters it. When the guard denies it, the pushed entry is
// replaced by the redirect target. It returns the location the user ends up on.
func (r *Router) Navigate(ctx context.Context, target string) (Location, error) {
	loc, err := ParseLocation(target)
	if err != nil {
		return Location{}, err
	}
	return r.visit(ctx, loc, false)
}

// Replace is Navigate without adding a History entry.
func (r *Router) Replace(ctx context.Context, target string) (Location, error) {
	loc, err := ParseLocation(target)
	if err != nil {
		return Location{}, err
	}
	return r.visit(ctx, loc, true)
}

func (r *Router) visit(ctx context.Context, loc Location, replace bool) (Location, error) {
	if err := ctx.Err(); err != nil {
		return Location{}, err
	}

	route, loc, err := r.prepare(ctx, loc)
	if err != nil {
		return loc, err
	}
	if replace {
		r.history.Replace(loc)
	} else {
		r.history.Push(loc)
	}

	for hops := 0; ; hops++ {
		d := Decide(route.Mode, r.session.Authenticated())
		if r.onDecision != nil {
			r.onDecision(route, loc, d)
		}

		if d.Allow {
			r.log.WithFields(logrus.Fields{"path": loc.Path, "mode": route.Mode.String()}).Debug("route allowed")
			break
		}

		if hops >= r.maxRedirects {
			return loc, fmt.Errorf("%w: stopped at %s", ErrRedirectLoop, loc)
		}
		r.log.WithFields(logrus.Fields{
			"path":     loc.Path,
			"mode":     route.Mode.String(),
			"redirect": d.Redirect,
		}).Debug("route redirected")

		if route, loc, err = r.prepare(ctx, Location{Path: d.Redirect}); err != nil {
			return loc, err
		}
		r.history.Replace(loc)
	}

	if route.Enter != nil {
		if err := route.Enter(ctx, loc); err != nil {
			return loc, err
		}
	}

	cur, _ := r.history.Current()
	return cur, nil
}

// prepare matches loc and runs the route's Prepare hook, rematching when it moved loc.
func (r *Router) prepare(ctx context.Context, loc Location) (Route, Location, error) {
	route, ok := r.table.Match(loc.Path)
	if !ok {
		return route, loc, fmt.Errorf("%w: %s", ErrNoRoute, loc.Path)
	}
	if route.Prepare == nil {
		return route, loc, nil
	}

	next, err := route.Prepare(ctx, loc)
	if err != nil {
		return route, loc, err
	}
	if next.Path != loc.Path {
		if route, ok = r.table.Match(next.Path); !ok {
			return route, next, fmt.Errorf("%w: %s", ErrNoRoute, next.Path)
		}
	}
	return route, next, nil
}

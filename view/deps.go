package view

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/MrEthical07/gamewatch/api"
	"github.com/MrEthical07/gamewatch/notify"
	"github.com/MrEthical07/gamewatch/router"
	"github.com/MrEthical07/gamewatch/session"
	"github.com/sirupsen/logrus"
)

// ErrNotAuthenticated is returned by actions that need a session when there is none.
var ErrNotAuthenticated = errors.New("not authenticated")

// Session is the part of session.Store the views use.
type Session interface {
	Current() (session.Record, bool)
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context)
	Update(ctx context.Context, patch func(*session.Record)) error
}

// Navigator moves between routes.
type Navigator interface {
	Navigate(ctx context.Context, target string) (router.Location, error)
	Replace(ctx context.Context, target string) (router.Location, error)
}

// Deps are the collaborators shared by all views.
type Deps struct {
	Session Session
	API     *api.Client
	Notify  notify.Notifier
	Router  Navigator
	Log     logrus.FieldLogger
}

func (d Deps) logger(name string) logrus.FieldLogger {
	log := d.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return log.WithField("view", name)
}

// Failure is an error the user has already been notified about.
type Failure struct {
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return f.Message
	}
	return f.Message + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error { return f.Err }

// Reported reports whether err already reached the user.
func Reported(err error) bool {
	var f *Failure
	return errors.As(err, &f)
}

// base carries what every view needs.
type base struct {
	Deps
	log  logrus.FieldLogger
	busy flight
}

func (b *base) init(d Deps, name string) {
	b.Deps = d
	b.log = d.logger(name)
}

// reject notifies an expected failure. A rejected token is not notified here: the
// session-expired notice already reached the user.
func (b *base) reject(err error, msg string) error {
	if !api.IsInvalidationErr(err) {
		b.Notify.Error(msg)
	}
	return &Failure{Message: msg, Err: err}
}

// fail logs an unexpected failure and notifies it.
func (b *base) fail(err error, msg string) error {
	if api.IsInvalidationErr(err) {
		b.log.WithError(err).Debug(msg)
	} else {
		b.log.WithError(err).Error(msg)
	}
	return b.reject(err, msg)
}

func (b *base) token() (string, error) {
	rec, ok := b.Session.Current()
	if !ok {
		return "", ErrNotAuthenticated
	}
	return rec.AuthToken, nil
}

// Loading reports whether an action of the view is running.
func (b *base) Loading() bool {
	return b.busy.active()
}

// flight is a pending-operation counter; begin returns the matching end.
type flight struct {
	n atomic.Int32
}

func (f *flight) begin() func() {
	f.n.Add(1)
	return func() { f.n.Add(-1) }
}

func (f *flight) active() bool {
	return f.n.Load() > 0
}

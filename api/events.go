package api

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// InvalidTokenMessage is the body the backend sends with 401 when the bearer token is
// invalid or expired.
const InvalidTokenMessage = "Token de autenticação inválido ou expirado."

// ResponseEvent describes one request attempt. Status is 0 and Err is set when no
// response was received.
type ResponseEvent struct {
	Method    string
	Path      string
	Status    int
	Body      []byte
	RequestID string
	Duration  time.Duration
	Err       error
}

// Failed reports whether the attempt did not end with a 2xx response.
func (ev ResponseEvent) Failed() bool {
	return ev.Err != nil || ev.Status < 200 || ev.Status > 299
}

// IsInvalidation reports whether ev tells the client that its credential is no longer
// accepted. Only the exact 401 message counts; other 401s are ordinary failures.
func IsInvalidation(ev ResponseEvent) bool {
	return ev.Status == 401 && bodyText(ev.Body) == InvalidTokenMessage
}

// IsInvalidationErr is IsInvalidation for the *Error a call returned.
func IsInvalidationErr(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == 401 && bodyText(apiErr.Body) == InvalidTokenMessage
}

// Subscribe registers fn for every ResponseEvent and returns a function that removes it.
// fn runs synchronously on the goroutine that issued the request, before Do returns.
func (c *Client) Subscribe(fn func(ResponseEvent)) func() {
	id := uuid.NewString()

	c.subsMu.Lock()
	c.subs[id] = fn
	c.subsMu.Unlock()

	return func() {
		c.subsMu.Lock()
		delete(c.subs, id)
		c.subsMu.Unlock()
	}
}

func (c *Client) publish(ev ResponseEvent) {
	c.subsMu.RLock()
	fns := make([]func(ResponseEvent), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subsMu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Package api is the HTTP client for the gamewatch REST backend.
//
// Every call goes through Client.Do, which attaches the bearer token, a request ID and
// the configured User-Agent, decodes JSON responses and turns non-2xx responses into
// *Error values that match the package sentinels with errors.Is.
//
// # Response events
//
// Each completed attempt is published as a ResponseEvent to the functions registered
// with Client.Subscribe. This is how the application learns that the backend rejected
// the stored credential (see IsInvalidation) without every call site checking for it.
//
// # What this package must NOT do
//
//   - retry requests
//   - read or mutate the session store
//   - decide navigation
package api

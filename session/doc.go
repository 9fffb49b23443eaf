// Package session owns the single authenticated identity held by a gamewatch client and
// its durable copy.
//
// # Lifecycle
//
// A [Store] starts Anonymous. [Store.Initialize] rehydrates a previously persisted
// [Record] from a [Slot]; [Store.Login] replaces it with the record returned by the API;
// [Store.Update] patches it in place; [Store.Logout] and [Store.Invalidate] drop it and
// erase the slot. Every write to the in-memory record is mirrored to the slot while the
// store lock is held, so the persisted copy never lags behind a later write.
//
// # Architecture boundaries
//
// The store talks to the remote API only through the [Backend] interface and never shows
// notifications. Errors from the backend are returned to the caller unchanged; classifying
// them is the caller's job.
//
// # What this package must NOT do
//
//   - Import the api, router or view packages (no upward imports).
//   - Retry backend calls.
//   - Hand out pointers to the current record; readers always receive copies.
package session

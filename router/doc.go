// Package router gates navigation on session state.
//
// # Pieces
//
//   - [Decide] is the pure guard: a route Mode plus "is someone logged in" yields Allow or
//     a Redirect target.
//   - [Table] maps route patterns to a Mode, an optional Prepare hook that runs before the
//     guard, and an optional Enter hook that runs after it, with a "*" fallback.
//   - [History] is the stack of visited locations.
//   - [Router] ties them together. A denied navigation never leaves the denied location in
//     History: its entry is replaced with the redirect target, so going back does not bounce
//     the user into the same redirect again.
//
// # Architecture boundaries
//
// The router only reads session state through [SessionState]. It never logs anyone in or
// out; hooks registered by the views do that when their page requires it.
package router

// Package internal holds helpers that are private to gamewatch.
//
// # Sub-packages
//
//   - optimistic: apply-now, roll-back-on-failure toggles used by the views
//
// # What this package must NOT do
//
//   - Export types that appear in the public gamewatch API.
//   - Import the root package or any view.
package internal

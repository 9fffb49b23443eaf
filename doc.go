// Package gamewatch assembles the gamewatch client: the persisted session store, the
// REST API client, the guarded router and the page views.
//
// Build an [App] with [New] and [Builder.Build], call [App.Start] to restore the saved
// session, then drive it through [App.Router] and the views. The App watches every API
// response; a 401 carrying the invalid-token message drops the session and sends the
// user to the login page flagged as expired.
//
// Configuration comes from [DefaultConfig] or [LoadConfig] (YAML plus GAMEWATCH_*
// environment variables). Counters are kept in [Metrics] and exported by the packages
// under metrics/export. Session transitions can be written to an audit trail.
package gamewatch

// Package jwt peeks at the registered claims of the bearer tokens the API issues.
//
// The client never holds the API's signing secret, so claims are read without signature
// verification. They are used only to make local decisions early (for example dropping a
// persisted session whose token has already expired); the API remains the authority and
// signals rejection with its invalid-token response.
package jwt

package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned when a token is not a well-formed compact JWT.
var ErrNotJWT = errors.New("token is not a jwt")

// Claims is the subset of registered claims the client cares about.
type Claims struct {
	Subject   string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Inspect decodes token's registered claims without verifying its signature.
func Inspect(token string) (Claims, error) {
	var registered jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &registered); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrNotJWT, err)
	}

	c := Claims{
		Subject: registered.Subject,
		Issuer:  registered.Issuer,
	}
	if registered.IssuedAt != nil {
		c.IssuedAt = registered.IssuedAt.Time
	}
	if registered.ExpiresAt != nil {
		c.ExpiresAt = registered.ExpiresAt.Time
	}
	return c, nil
}

// Expired reports whether the token carries an exp claim at or before now.
// Tokens without exp never expire locally.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Remaining returns the time left before expiry, zero when expired or without exp.
func (c Claims) Remaining(now time.Time) time.Duration {
	if c.ExpiresAt.IsZero() || c.Expired(now) {
		return 0
	}
	return c.ExpiresAt.Sub(now)
}

package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signed(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("api-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func TestInspectReadsRegisteredClaims(t *testing.T) {
	exp := time.Unix(1_900_000_000, 0)
	tok := signed(t, jwt.RegisteredClaims{
		Subject:   "5b0a6a3e-user",
		Issuer:    "games-api",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	c, err := Inspect(tok)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if c.Subject != "5b0a6a3e-user" || c.Issuer != "games-api" {
		t.Fatalf("unexpected claims: %+v", c)
	}
	if !c.ExpiresAt.Equal(exp) {
		t.Fatalf("expected exp %v, got %v", exp, c.ExpiresAt)
	}
}

func TestInspectRejectsOpaqueTokens(t *testing.T) {
	for _, tok := range []string{"", "t1", "a.b", "not.a.jwt"} {
		if _, err := Inspect(tok); !errors.Is(err, ErrNotJWT) {
			t.Fatalf("token %q: expected ErrNotJWT, got %v", tok, err)
		}
	}
}

func TestClaimsExpiry(t *testing.T) {
	now := time.Unix(1_800_000_000, 0)

	if (Claims{}).Expired(now) {
		t.Fatal("claims without exp must not expire")
	}

	past := Claims{ExpiresAt: now.Add(-time.Second)}
	if !past.Expired(now) || past.Remaining(now) != 0 {
		t.Fatalf("expected expired claims, got %+v", past)
	}

	future := Claims{ExpiresAt: now.Add(time.Hour)}
	if future.Expired(now) {
		t.Fatal("future exp reported expired")
	}
	if got := future.Remaining(now); got != time.Hour {
		t.Fatalf("expected 1h remaining, got %v", got)
	}
}

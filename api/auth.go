package api

import (
	"context"
	"net/http"
)

type registerBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyQuery struct {
	Token string `url:"token"`
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   registerBody{Name: name, Email: email, Password: password},
	}, nil)
}

// Login exchanges credentials for the caller's auth data.
func (c *Client) Login(ctx context.Context, email, password string) (AuthData, error) {
	var out AuthData
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   loginBody{Email: email, Password: password},
	}, &out)
	return out, err
}

// RequestVerification asks the backend to mail a verification link.
func (c *Client) RequestVerification(ctx context.Context, token string) error {
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/request-verification",
		Body:   struct{}{},
		Token:  token,
	}, nil)
}

// VerifyEmail confirms an address. The verification token doubles as the bearer.
func (c *Client) VerifyEmail(ctx context.Context, verificationToken string) error {
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/verify",
		Query:  verifyQuery{Token: verificationToken},
		Body:   struct{}{},
		Token:  verificationToken,
	}, nil)
}

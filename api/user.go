package api

import (
	"context"
	"net/http"
)

type updateUserBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type changePasswordBody struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type setRolesBody struct {
	UserID string   `json:"userId"`
	Roles  []string `json:"roles"`
}

// UpdateUser changes the caller's name and email. An email owned by someone else is
// ErrConflict.
func (c *Client) UpdateUser(ctx context.Context, token, name, email string) error {
	return c.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   "/user",
		Body:   updateUserBody{Name: name, Email: email},
		Token:  token,
	}, nil)
}

// ChangePassword answers ErrUnauthorized for a wrong current password and ErrBadRequest
// when the new one equals it.
func (c *Client) ChangePassword(ctx context.Context, token, current, next string) error {
	return c.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   "/user/change-password",
		Body:   changePasswordBody{CurrentPassword: current, NewPassword: next},
		Token:  token,
	}, nil)
}

func (c *Client) ToggleNotifications(ctx context.Context, token string) error {
	return c.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   "/user/toggle-notifications",
		Body:   struct{}{},
		Token:  token,
	}, nil)
}

// DeleteUser deletes the caller's account.
func (c *Client) DeleteUser(ctx context.Context, token string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/user", Token: token}, nil)
}

// Users lists every account. Super admin only.
func (c *Client) Users(ctx context.Context, token string) ([]User, error) {
	var out []User
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/user/all", Token: token}, &out)
	return out, err
}

// Searches returns the caller's game search history.
func (c *Client) Searches(ctx context.Context, token string) ([]GameSearch, error) {
	var out []GameSearch
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/user/searches", Token: token}, &out)
	return out, err
}

// SetRoles replaces the roles of userID. Super admin only.
func (c *Client) SetRoles(ctx context.Context, token, userID string, roles []string) error {
	return c.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   "/user/roles",
		Body:   setRolesBody{UserID: userID, Roles: roles},
		Token:  token,
	}, nil)
}

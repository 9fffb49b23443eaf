package view

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/MrEthical07/gamewatch/api"
	"github.com/MrEthical07/gamewatch/router"
	"github.com/MrEthical07/gamewatch/session"
)

// Login failure classes. Every login error wraps exactly one of them.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrLoginFailed   = errors.New("login failed")
	ErrEmailInUse    = errors.New("email already in use")
)

// Auth backs the login, register and email verification pages.
type Auth struct {
	base
}

func NewAuth(d Deps) *Auth {
	v := &Auth{}
	v.init(d, "auth")
	return v
}

// Login submits the login form. On success the user lands on the home page.
func (v *Auth) Login(ctx context.Context, form LoginForm) error {
	if err := validateForm(&form); err != nil {
		return err
	}

	if err := v.Session.Login(ctx, form.Email, form.Password); err != nil {
		switch {
		case errors.Is(err, api.ErrNotFound):
			return fmt.Errorf("%w: %w", ErrUserNotFound, v.reject(err, MsgUserNotFound))
		case errors.Is(err, api.ErrBadRequest) && api.BodyEquals(err, WrongPasswordBody):
			return fmt.Errorf("%w: %w", ErrWrongPassword, v.reject(err, MsgWrongPassword))
		default:
			return fmt.Errorf("%w: %w", ErrLoginFailed, v.fail(err, MsgLoginFailed))
		}
	}

	v.Notify.Success(MsgLoginSuccess)
	_, err := v.Router.Navigate(ctx, router.HomePath)
	return err
}

// Register submits the sign-up form. It does not log in; the user is sent to the
// login page.
func (v *Auth) Register(ctx context.Context, form RegisterForm) error {
	if err := validateForm(&form); err != nil {
		return err
	}

	if err := v.Session.Register(ctx, form.Name, form.Email, form.Password); err != nil {
		if errors.Is(err, api.ErrConflict) {
			return fmt.Errorf("%w: %w", ErrEmailInUse, v.reject(err, fmt.Sprintf(MsgEmailInUse, form.Email)))
		}
		return v.fail(err, MsgRegisterFailed)
	}

	v.Notify.Success(MsgRegisterSuccess)
	_, err := v.Router.Navigate(ctx, router.LoginPath)
	return err
}

// LoginPrepare runs before the guard decides on the login page. A visit flagged with
// expired=true ends whatever session is left and tells the user once. The flag is
// dropped from the location, so history never carries it.
func (v *Auth) LoginPrepare(ctx context.Context, loc router.Location) (router.Location, error) {
	if loc.Get("expired") == "" {
		return loc, nil
	}

	v.Session.Logout(ctx)
	v.Notify.Error(MsgSessionExpired)

	query := url.Values{}
	for k, vals := range loc.Query {
		if k != "expired" {
			query[k] = vals
		}
	}
	return router.Location{Path: loc.Path, Query: query}, nil
}

// VerifyEnter confirms the email address with the token from the verification link.
func (v *Auth) VerifyEnter(ctx context.Context, loc router.Location) error {
	rec, ok := v.Session.Current()
	if !ok {
		return ErrNotAuthenticated
	}
	if rec.EmailVerified {
		err := v.reject(nil, MsgAlreadyVerified)
		if _, navErr := v.Router.Navigate(ctx, router.HomePath); navErr != nil {
			return navErr
		}
		return err
	}

	token := loc.Get("token")
	if token == "" {
		_, err := v.Router.Navigate(ctx, router.HomePath)
		return err
	}

	done := v.busy.begin()
	defer done()

	if err := v.API.VerifyEmail(ctx, token); err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			return v.reject(err, MsgInvalidVerifyLink)
		case errors.Is(err, api.ErrConflict):
			return v.reject(err, MsgAlreadyVerified)
		}
		return v.fail(err, MsgVerifyFailed)
	}

	if err := v.Session.Update(ctx, func(r *session.Record) { r.EmailVerified = true }); err != nil {
		v.log.WithError(err).Warn("session not updated after verification")
	}
	v.Notify.Success(MsgEmailVerified)
	_, err := v.Router.Navigate(ctx, router.HomePath)
	return err
}

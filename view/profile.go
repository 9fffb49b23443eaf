package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MrEthical07/gamewatch/api"
	"github.com/MrEthical07/gamewatch/internal/optimistic"
	"github.com/MrEthical07/gamewatch/router"
	"github.com/MrEthical07/gamewatch/session"
)

// ErrEmailNotVerified is returned by actions reserved to verified addresses.
var ErrEmailNotVerified = errors.New("email not verified")

// Profile backs the profile page.
type Profile struct {
	base

	mu       sync.Mutex
	toggling bool
	shown    bool
}

func NewProfile(d Deps) *Profile {
	v := &Profile{}
	v.init(d, "profile")
	return v
}

// Notifications is the state of the notifications switch as shown to the user. While a
// toggle is in flight it is the tentative value, otherwise the session's.
func (v *Profile) Notifications() bool {
	v.mu.Lock()
	if v.toggling {
		defer v.mu.Unlock()
		return v.shown
	}
	v.mu.Unlock()

	rec, _ := v.Session.Current()
	return rec.NotificationsEnabled
}

func (v *Profile) setNotifications(on bool) {
	v.mu.Lock()
	v.toggling = true
	v.shown = on
	v.mu.Unlock()
}

func (v *Profile) settleNotifications() {
	v.mu.Lock()
	v.toggling = false
	v.mu.Unlock()
}

// UpdateDetails saves a new name and email. A changed email is no longer verified.
func (v *Profile) UpdateDetails(ctx context.Context, form DetailsForm) error {
	if err := validateForm(&form); err != nil {
		return err
	}
	token, err := v.token()
	if err != nil {
		return err
	}

	done := v.busy.begin()
	defer done()

	if err := v.API.UpdateUser(ctx, token, form.Name, form.Email); err != nil {
		if errors.Is(err, api.ErrConflict) {
			return fmt.Errorf("%w: %w", ErrEmailInUse, v.reject(err, fmt.Sprintf(MsgEmailInUse, form.Email)))
		}
		return v.fail(err, MsgDetailsFailed)
	}

	err = v.Session.Update(ctx, func(r *session.Record) {
		r.EmailVerified = r.EmailVerified && r.Email == form.Email
		r.DisplayName = form.Name
		r.Email = form.Email
	})
	if err != nil {
		v.log.WithError(err).Warn("session not updated after profile change")
	}
	v.Notify.Success(MsgDetailsUpdated)
	return nil
}

// ChangePassword replaces the account password.
func (v *Profile) ChangePassword(ctx context.Context, form PasswordForm) error {
	if err := validateForm(&form); err != nil {
		return err
	}
	token, err := v.token()
	if err != nil {
		return err
	}

	done := v.busy.begin()
	defer done()

	if err := v.API.ChangePassword(ctx, token, form.CurrentPassword, form.NewPassword); err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			return v.reject(err, MsgWrongCurrentPass)
		case errors.Is(err, api.ErrBadRequest):
			return v.reject(err, MsgSamePassword)
		}
		return v.fail(err, MsgDetailsFailed)
	}

	v.Notify.Success(MsgPasswordChanged)
	return nil
}

// RequestVerification asks for a new verification email.
func (v *Profile) RequestVerification(ctx context.Context) error {
	rec, ok := v.Session.Current()
	if !ok {
		return ErrNotAuthenticated
	}

	done := v.busy.begin()
	defer done()

	if err := v.API.RequestVerification(ctx, rec.AuthToken); err != nil {
		return v.fail(err, MsgVerificationFailed)
	}
	v.Notify.Success(fmt.Sprintf(MsgVerificationSent, rec.Email))
	return nil
}

// ToggleNotifications flips the email notification switch. The switch moves at once
// and moves back if the request fails.
func (v *Profile) ToggleNotifications(ctx context.Context) error {
	rec, ok := v.Session.Current()
	if !ok {
		return ErrNotAuthenticated
	}
	if !rec.EmailVerified {
		return fmt.Errorf("%w: %w", ErrEmailNotVerified, v.reject(nil, MsgVerifyForAlerts))
	}

	done := v.busy.begin()
	defer done()

	prev := rec.NotificationsEnabled
	err := optimistic.Apply(optimistic.Change[bool]{
		Prev: prev,
		Next: !prev,
		Set:  v.setNotifications,
		Do: func() error {
			return v.API.ToggleNotifications(ctx, rec.AuthToken)
		},
		Commit: func(on bool) {
			if err := v.Session.Update(ctx, func(r *session.Record) { r.NotificationsEnabled = on }); err != nil {
				v.log.WithError(err).Warn("session not updated after notifications toggle")
			}
		},
	})
	v.settleNotifications()

	verb, state := "ativar", "ativadas"
	if prev {
		verb, state = "desativar", "desativadas"
	}
	if err != nil {
		return v.fail(err, fmt.Sprintf(MsgNotificationsFailed, verb))
	}
	v.Notify.Success(fmt.Sprintf(MsgNotificationsOK, state))
	return nil
}

// DeleteAccount deletes the account and ends the session.
func (v *Profile) DeleteAccount(ctx context.Context) error {
	token, err := v.token()
	if err != nil {
		return err
	}

	done := v.busy.begin()
	defer done()

	if err := v.API.DeleteUser(ctx, token); err != nil {
		return v.fail(err, MsgAccountDeleteFailed)
	}

	v.Session.Logout(ctx)
	v.Notify.Success(MsgAccountDeleted)
	_, err = v.Router.Replace(ctx, router.LoginPath)
	return err
}

// SearchHistory lists the user's past game searches.
func (v *Profile) SearchHistory(ctx context.Context) ([]api.GameSearch, error) {
	token, err := v.token()
	if err != nil {
		return nil, err
	}

	done := v.busy.begin()
	defer done()

	searches, err := v.API.Searches(ctx, token)
	if err != nil {
		return nil, v.fail(err, MsgSearchHistoryFailed)
	}
	return searches, nil
}

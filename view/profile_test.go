package view

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MrEthical07/gamewatch/notify"
	"github.com/MrEthical07/gamewatch/router"
)

func TestToggleNotificationsReadsSessionAfterConstruction(t *testing.T) {
	h := newHarness(t)
	v := NewProfile(h.deps)

	rec := userData()
	rec.EmailVerified = true
	rec.NotificationsEnabled = true
	h.login(t, rec)

	server := true
	h.mux.HandleFunc("PUT /user/toggle-notifications", func(w http.ResponseWriter, r *http.Request) {
		server = !server
	})

	if !v.Notifications() {
		t.Fatal("switch must follow the session")
	}
	if err := v.ToggleNotifications(context.Background()); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	cur, _ := h.store.Current()
	if server || cur.NotificationsEnabled || v.Notifications() {
		t.Fatalf("client and server disagree: server=%v session=%v", server, cur.NotificationsEnabled)
	}
	if h.notices.Count(notify.LevelSuccess, "Notificações desativadas com sucesso!") != 1 {
		t.Fatalf("unexpected notices %+v", h.notices.Notices())
	}
}

func TestToggleNotificationsRollsBack(t *testing.T) {
	cases := []struct {
		name    string
		initial bool
		notice  string
	}{
		{"enable", false, "Ocorreu um erro ao ativar as notificações."},
		{"disable", true, "Ocorreu um erro ao desativar as notificações."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			rec := userData()
			rec.EmailVerified = true
			rec.NotificationsEnabled = tc.initial
			h.login(t, rec)

			v := NewProfile(h.deps)
			var during bool
			h.mux.HandleFunc("PUT /user/toggle-notifications", func(w http.ResponseWriter, r *http.Request) {
				during = v.Notifications()
				w.WriteHeader(http.StatusInternalServerError)
			})

			err := v.ToggleNotifications(context.Background())
			if !Reported(err) {
				t.Fatalf("expected reported failure, got %v", err)
			}
			if during != !tc.initial {
				t.Fatal("switch should flip while the request runs")
			}
			if v.Notifications() != tc.initial {
				t.Fatal("switch must roll back on failure")
			}
			cur, _ := h.store.Current()
			if cur.NotificationsEnabled != tc.initial {
				t.Fatal("session must keep the previous value")
			}
			if h.notices.Count(notify.LevelError, tc.notice) != 1 {
				t.Fatalf("expected %q, got %+v", tc.notice, h.notices.Notices())
			}
			if v.Loading() {
				t.Fatal("loading flag must be reset")
			}
		})
	}
}

func TestToggleNotificationsCommits(t *testing.T) {
	h := newHarness(t)
	rec := userData()
	rec.EmailVerified = true
	rec.NotificationsEnabled = true
	h.login(t, rec)
	h.mux.HandleFunc("PUT /user/toggle-notifications", reply(http.StatusOK, "Notifications successfully disabled."))

	v := NewProfile(h.deps)
	if err := v.ToggleNotifications(context.Background()); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	cur, _ := h.store.Current()
	if v.Notifications() || cur.NotificationsEnabled {
		t.Fatal("expected notifications off in view and session")
	}
	if h.notices.Count(notify.LevelSuccess, "Notificações desativadas com sucesso!") != 1 {
		t.Fatalf("unexpected notices %+v", h.notices.Notices())
	}
}

func TestToggleNotificationsNeedsVerifiedEmail(t *testing.T) {
	h := newHarness(t)
	h.login(t, userData())

	err := NewProfile(h.deps).ToggleNotifications(context.Background())
	if !errors.Is(err, ErrEmailNotVerified) {
		t.Fatalf("expected ErrEmailNotVerified, got %v", err)
	}
	if h.count(http.MethodPut, "/user/toggle-notifications") != 0 {
		t.Fatal("no request expected")
	}
}

func TestUpdateDetailsResetsVerificationOnEmailChange(t *testing.T) {
	cases := []struct {
		email        string
		wantVerified bool
	}{
		{"a@a.com", true},
		{"b@b.com", false},
	}
	for _, tc := range cases {
		h := newHarness(t)
		rec := userData()
		rec.EmailVerified = true
		h.login(t, rec)
		h.mux.HandleFunc("PUT /user", reply(http.StatusOK, "User successfully updated."))

		if err := NewProfile(h.deps).UpdateDetails(context.Background(), DetailsForm{Name: "B", Email: tc.email}); err != nil {
			t.Fatalf("update: %v", err)
		}
		cur, _ := h.store.Current()
		if cur.DisplayName != "B" || cur.Email != tc.email || cur.EmailVerified != tc.wantVerified {
			t.Fatalf("email %s: unexpected session %+v", tc.email, cur)
		}
	}
}

func TestChangePasswordMessages(t *testing.T) {
	cases := []struct {
		status int
		notice string
	}{
		{http.StatusUnauthorized, MsgWrongCurrentPass},
		{http.StatusBadRequest, MsgSamePassword},
		{http.StatusInternalServerError, MsgDetailsFailed},
	}
	for _, tc := range cases {
		h := newHarness(t)
		h.login(t, userData())
		h.mux.HandleFunc("PUT /user/change-password", reply(tc.status, ""))

		err := NewProfile(h.deps).ChangePassword(context.Background(), PasswordForm{CurrentPassword: "secret", NewPassword: "secret2"})
		if !Reported(err) || h.notices.Count(notify.LevelError, tc.notice) != 1 {
			t.Fatalf("status %d: expected %q, got %v %+v", tc.status, tc.notice, err, h.notices.Notices())
		}
	}
}

func TestChangePasswordSendsShortCurrentPassword(t *testing.T) {
	h := newHarness(t)
	h.login(t, userData())
	h.mux.HandleFunc("PUT /user/change-password", reply(http.StatusOK, "Password successfully changed."))

	form := PasswordForm{CurrentPassword: "admin", NewPassword: "secret2"}
	if err := NewProfile(h.deps).ChangePassword(context.Background(), form); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if h.count(http.MethodPut, "/user/change-password") != 1 {
		t.Fatal("a short current password must reach the API")
	}
}

func TestDeleteAccountLogsOut(t *testing.T) {
	h := newHarness(t)
	h.login(t, userData())
	h.mux.HandleFunc("DELETE /user", reply(http.StatusOK, "User successfully deleted."))

	if err := NewProfile(h.deps).DeleteAccount(context.Background()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if h.store.Authenticated() {
		t.Fatal("deleting the account must end the session")
	}
	if calls := h.nav.Calls(); len(calls) != 1 || calls[0] != "replace "+router.LoginPath {
		t.Fatalf("unexpected navigation %v", calls)
	}
}

func TestRequestVerificationMentionsEmail(t *testing.T) {
	h := newHarness(t)
	h.login(t, userData())
	h.mux.HandleFunc("POST /auth/request-verification", reply(http.StatusOK, "Verification email successfully sent."))

	if err := NewProfile(h.deps).RequestVerification(context.Background()); err != nil {
		t.Fatalf("request: %v", err)
	}
	if h.notices.Count(notify.LevelSuccess, "O email de verificação foi enviado para a@a.com.") != 1 {
		t.Fatalf("unexpected notices %+v", h.notices.Notices())
	}
}

func TestSearchHistoryFailure(t *testing.T) {
	h := newHarness(t)
	h.login(t, userData())
	h.mux.HandleFunc("GET /user/searches", reply(http.StatusInternalServerError, ""))

	searches, err := NewProfile(h.deps).SearchHistory(context.Background())
	if searches != nil || !Reported(err) {
		t.Fatalf("expected reported failure, got %v %v", searches, err)
	}
	if h.notices.Count(notify.LevelError, MsgSearchHistoryFailed) != 1 {
		t.Fatalf("unexpected notices %+v", h.notices.Notices())
	}
}

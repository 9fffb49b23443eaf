package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MrEthical07/gamewatch/api"
	"github.com/MrEthical07/gamewatch/router"
	"github.com/MrEthical07/gamewatch/session"
)

var (
	// ErrNoAccess is returned when a non super admin reaches the users page.
	ErrNoAccess = errors.New("super admin role required")
	// ErrImmutableUser is returned when toggling roles of a super admin.
	ErrImmutableUser = errors.New("super admin roles cannot change")
	// ErrUnknownUser is returned for an id that is not in the loaded table.
	ErrUnknownUser = errors.New("unknown user")
)

// Users backs the super admin user table.
type Users struct {
	base

	mu    sync.Mutex
	users []api.User
}

func NewUsers(d Deps) *Users {
	v := &Users{}
	v.init(d, "users")
	return v
}

// Enter turns away anyone who is not SUPER_ADMIN and loads the table otherwise.
func (v *Users) Enter(ctx context.Context, _ router.Location) error {
	rec, ok := v.Session.Current()
	if !ok || !rec.IsSuperAdmin() {
		err := fmt.Errorf("%w: %w", ErrNoAccess, v.reject(nil, MsgNoAccess))
		if _, navErr := v.Router.Navigate(ctx, router.HomePath); navErr != nil {
			return navErr
		}
		return err
	}
	_, err := v.Load(ctx)
	return err
}

func (v *Users) Load(ctx context.Context) ([]api.User, error) {
	token, err := v.token()
	if err != nil {
		return nil, err
	}

	done := v.busy.begin()
	defer done()

	users, err := v.API.Users(ctx, token)
	if err != nil {
		return nil, v.fail(err, MsgUsersFailed)
	}

	v.mu.Lock()
	v.users = users
	v.mu.Unlock()
	return users, nil
}

func (v *Users) List() []api.User {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]api.User(nil), v.users...)
}

// NextRoles is the role set a toggle moves u to: admins lose ADMIN, everyone else gains it.
func NextRoles(u api.User) []string {
	if u.HasRole(session.RoleAdmin) {
		return []string{session.RoleUser}
	}
	return []string{session.RoleAdmin, session.RoleUser}
}

// ToggleAdmin grants or revokes ADMIN for the loaded user id.
func (v *Users) ToggleAdmin(ctx context.Context, id string) error {
	token, err := v.token()
	if err != nil {
		return err
	}

	v.mu.Lock()
	var target *api.User
	for i := range v.users {
		if v.users[i].ID == id {
			u := v.users[i]
			target = &u
			break
		}
	}
	v.mu.Unlock()

	if target == nil {
		return fmt.Errorf("%w: %s", ErrUnknownUser, id)
	}
	if target.HasRole(session.RoleSuperAdmin) {
		return fmt.Errorf("%w: %w", ErrImmutableUser, v.reject(nil, MsgNoActionAvailable))
	}

	roles := NextRoles(*target)

	done := v.busy.begin()
	defer done()

	if err := v.API.SetRoles(ctx, token, id, roles); err != nil {
		return v.fail(err, MsgRolesChangeFailed)
	}

	v.mu.Lock()
	for i := range v.users {
		if v.users[i].ID == id {
			v.users[i].Roles = roles
		}
	}
	v.mu.Unlock()

	v.Notify.Success(MsgRolesChanged)
	return nil
}

package session

import (
	"slices"
	"strings"
)

// Role names issued by the API.
const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// Record is the authenticated identity of the current user. It is created from the API's
// login response and persisted as JSON.
type Record struct {
	DisplayName          string `json:"name"`
	Email                string `json:"email"`
	AuthToken            string `json:"token"`
	EmailVerified        bool   `json:"emailVerified"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	Roles                Roles  `json:"roles,omitempty"`
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	r.Roles = slices.Clone(r.Roles)
	return r
}

// Equal reports whether r and o hold the same identity, flags and role set.
func (r Record) Equal(o Record) bool {
	return r.DisplayName == o.DisplayName &&
		r.Email == o.Email &&
		r.AuthToken == o.AuthToken &&
		r.EmailVerified == o.EmailVerified &&
		r.NotificationsEnabled == o.NotificationsEnabled &&
		r.Roles.Equal(o.Roles)
}

// IsAdmin reports whether the record carries ADMIN or SUPER_ADMIN.
func (r Record) IsAdmin() bool {
	return r.Roles.HasAny(RoleAdmin, RoleSuperAdmin)
}

// IsSuperAdmin reports whether the record carries SUPER_ADMIN.
func (r Record) IsSuperAdmin() bool {
	return r.Roles.Has(RoleSuperAdmin)
}

// Roles is a set of role names. Order carries no meaning.
type Roles []string

// NewRoles builds a normalized role set (trimmed, upper-cased, deduplicated, sorted).
func NewRoles(names ...string) Roles {
	out := make(Roles, 0, len(names))
	for _, name := range names {
		name = strings.ToUpper(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func (r Roles) Has(role string) bool {
	return slices.Contains(r, role)
}

func (r Roles) HasAny(roles ...string) bool {
	for _, role := range roles {
		if r.Has(role) {
			return true
		}
	}
	return false
}

// Equal compares role sets ignoring order and duplicates.
func (r Roles) Equal(o Roles) bool {
	return slices.Equal(NewRoles(r...), NewRoles(o...))
}

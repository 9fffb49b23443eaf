package session

import "testing"

func TestNewRolesNormalizes(t *testing.T) {
	got := NewRoles(" admin", "USER", "", "ADMIN")
	want := Roles{RoleAdmin, RoleUser}
	if !got.Equal(want) || len(got) != 2 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRecordRolePredicates(t *testing.T) {
	cases := []struct {
		roles      Roles
		admin      bool
		superAdmin bool
	}{
		{nil, false, false},
		{Roles{RoleUser}, false, false},
		{Roles{RoleAdmin, RoleUser}, true, false},
		{Roles{RoleSuperAdmin}, true, true},
	}
	for _, tc := range cases {
		r := Record{Roles: tc.roles}
		if r.IsAdmin() != tc.admin || r.IsSuperAdmin() != tc.superAdmin {
			t.Fatalf("roles %v: admin=%v super=%v", tc.roles, r.IsAdmin(), r.IsSuperAdmin())
		}
	}
}

func TestDecodeAcceptsLoginBody(t *testing.T) {
	body := `{"name":"A","email":"a@a.com","token":"t1","emailVerified":true,"notificationsEnabled":false,"roles":["USER","ADMIN"]}`
	r, err := Decode([]byte(body))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.DisplayName != "A" || !r.EmailVerified || !r.IsAdmin() {
		t.Fatalf("unexpected record %+v", r)
	}
}

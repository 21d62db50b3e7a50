package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ADMIN", "ROLE_ADMIN"},
		{"admin", "ROLE_ADMIN"},
		{"ROLE_ADMIN", "ROLE_ADMIN"},
		{"role_admin", "ROLE_ADMIN"},
		{"  staff  ", "ROLE_STAFF"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeRole(tc.in), "input %q", tc.in)
	}
}

func TestPrincipalRoles(t *testing.T) {
	admin := NewPrincipal("alice", "admin")
	assert.Equal(t, RoleAdmin, admin.Role)
	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.HasRole("ADMIN"))

	staff := NewPrincipal("bob", "STAFF")
	assert.False(t, staff.IsAdmin())
	assert.True(t, staff.HasRole("staff"))
	assert.False(t, staff.HasRole("admin"))
}

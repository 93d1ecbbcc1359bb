package policy

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-api/pkg/role"
)

func TestDefaultTableMatching(t *testing.T) {
	table := Default()

	cases := []struct {
		path      string
		wantMatch bool
		wantRole  role.Role
		wantPerms []role.Permission
	}{
		{"/api/admin", true, role.Admin, nil},
		{"/api/admin/settings", true, role.Admin, nil},
		{"/api/users", true, role.Viewer, nil},
		{"/api/users/42", true, role.Viewer, nil},
		{"/api/users/42/role", true, "", []role.Permission{role.PermManageUsers}},
		{"/api/reports/monthly", true, "", []role.Permission{role.PermViewReports}},
		{"/admin", true, role.Admin, nil},
		{"/dashboard/stats", true, role.Viewer, nil},
		{"/users/7", true, role.Viewer, nil},
		{"/business", true, role.Viewer, nil},
		{"/", false, "", nil},
		{"/login", false, "", nil},
		{"/api/auth/login", false, "", nil},
		{"/administrator", false, "", nil}, // prefix must not over-match
		{"/businesses", false, "", nil},
	}

	for _, tc := range cases {
		pol, ok := table.Match(tc.path)
		require.Equal(t, tc.wantMatch, ok, "path %s", tc.path)
		if !ok {
			continue
		}
		assert.Equal(t, tc.wantRole, pol.RequiredRole, "path %s", tc.path)
		assert.Equal(t, tc.wantPerms, pol.Permissions, "path %s", tc.path)
	}
}

func TestFirstMatchWins(t *testing.T) {
	table := NewTable([]Policy{
		{Pattern: regexp.MustCompile(`^/x/special$`), RequiredRole: role.Admin},
		{Pattern: regexp.MustCompile(`^/x(/|$)`), RequiredRole: role.Viewer},
	})

	pol, ok := table.Match("/x/special")
	require.True(t, ok)
	assert.Equal(t, role.Admin, pol.RequiredRole)

	pol, ok = table.Match("/x/other")
	require.True(t, ok)
	assert.Equal(t, role.Viewer, pol.RequiredRole)
}

func TestIsAPIPath(t *testing.T) {
	assert.True(t, IsAPIPath("/api"))
	assert.True(t, IsAPIPath("/api/users"))
	assert.False(t, IsAPIPath("/apiary"))
	assert.False(t, IsAPIPath("/dashboard"))
	assert.False(t, IsAPIPath("/"))
}

package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionsTable(t *testing.T) {
	cases := []struct {
		role  Role
		perms []Permission
	}{
		{Admin, []Permission{PermCreate, PermRead, PermUpdate, PermDelete, PermManageUsers, PermViewReports}},
		{Editor, []Permission{PermCreate, PermRead, PermUpdate}},
		{Viewer, []Permission{PermRead}},
	}

	for _, tc := range cases {
		assert.ElementsMatch(t, tc.perms, PermissionsOf(tc.role), "permissions of %s", tc.role)
		for _, p := range tc.perms {
			assert.True(t, Has(tc.role, p), "%s should hold %s", tc.role, p)
		}
	}

	assert.False(t, Has(Viewer, PermDelete))
	assert.False(t, Has(Editor, PermManageUsers))
	assert.Empty(t, PermissionsOf(Role("superuser")))
}

// Higher-ranked roles must hold a superset of every lower-ranked role's
// permissions. The table is maintained by hand, so this guards edits.
func TestPermissionsMonotonicWithRank(t *testing.T) {
	for _, higher := range All() {
		for _, lower := range All() {
			if Rank(higher) <= Rank(lower) {
				continue
			}
			for _, p := range PermissionsOf(lower) {
				assert.True(t, Has(higher, p),
					"%s (rank %d) is missing %q held by %s (rank %d)",
					higher, Rank(higher), p, lower, Rank(lower))
			}
		}
	}
}

func TestRankOrder(t *testing.T) {
	assert.Greater(t, Rank(Admin), Rank(Editor))
	assert.Greater(t, Rank(Editor), Rank(Viewer))
	assert.Greater(t, Rank(Viewer), 0)
	assert.Zero(t, Rank(Role("superuser")))
}

func TestMeetsOrExceeds(t *testing.T) {
	cases := []struct {
		actual   Role
		required Role
		want     bool
	}{
		{Admin, Admin, true},
		{Admin, Editor, true},
		{Admin, Viewer, true},
		{Editor, Admin, false},
		{Editor, Editor, true},
		{Editor, Viewer, true},
		{Viewer, Admin, false},
		{Viewer, Editor, false},
		{Viewer, Viewer, true},
		{Role("superuser"), Viewer, false},
		{Role(""), Viewer, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MeetsOrExceeds(tc.actual, tc.required),
			"MeetsOrExceeds(%q, %q)", tc.actual, tc.required)
	}
}

func TestHasAnyHasAll(t *testing.T) {
	assert.True(t, HasAny(Viewer, PermDelete, PermRead))
	assert.False(t, HasAny(Viewer, PermDelete, PermManageUsers))
	assert.True(t, HasAll(Admin, PermCreate, PermRead, PermUpdate, PermDelete))
	assert.False(t, HasAll(Editor, PermCreate, PermDelete))

	// Vacuous truth for empty permission lists is fine: policies with
	// permission checks always name at least one permission.
	assert.True(t, HasAll(Viewer))
}

func TestParse(t *testing.T) {
	for _, r := range All() {
		parsed, err := Parse(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := Parse("superuser")
	require.ErrorIs(t, err, ErrUnknownRole)
	_, err = Parse("Admin") // case sensitive
	require.ErrorIs(t, err, ErrUnknownRole)
}

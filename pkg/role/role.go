package role

import "fmt"

// registry is the static role -> permission table. Each higher-ranked role
// holds a superset of every lower-ranked role's set; role_test.go asserts
// that stays true whenever the table is edited.
var registry = map[Role][]Permission{
	Admin:  {PermCreate, PermRead, PermUpdate, PermDelete, PermManageUsers, PermViewReports},
	Editor: {PermCreate, PermRead, PermUpdate},
	Viewer: {PermRead},
}

// ranks orders the roles: admin > editor > viewer.
var ranks = map[Role]int{
	Admin:  3,
	Editor: 2,
	Viewer: 1,
}

// Parse validates an untrusted role string against the closed set.
func Parse(s string) (Role, error) {
	r := Role(s)
	if _, ok := ranks[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// All returns every known role, highest rank first.
func All() []Role {
	return []Role{Admin, Editor, Viewer}
}

// PermissionsOf returns a copy of the permission set of r.
// Roles outside the set hold nothing.
func PermissionsOf(r Role) []Permission {
	perms, ok := registry[r]
	if !ok {
		return nil
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// Has reports whether r holds p.
func Has(r Role, p Permission) bool {
	for _, perm := range registry[r] {
		if perm == p {
			return true
		}
	}
	return false
}

// HasAny reports whether r holds at least one of the given permissions.
func HasAny(r Role, perms ...Permission) bool {
	for _, p := range perms {
		if Has(r, p) {
			return true
		}
	}
	return false
}

// HasAll reports whether r holds every one of the given permissions.
func HasAll(r Role, perms ...Permission) bool {
	for _, p := range perms {
		if !Has(r, p) {
			return false
		}
	}
	return true
}

// Rank returns the privilege level of r. Unknown roles rank 0.
func Rank(r Role) int {
	return ranks[r]
}

// MeetsOrExceeds reports whether actual ranks at least as high as required.
// An unknown actual role never meets anything.
func MeetsOrExceeds(actual, required Role) bool {
	return Rank(actual) != 0 && Rank(actual) >= Rank(required)
}

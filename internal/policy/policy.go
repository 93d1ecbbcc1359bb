package policy

import (
	"regexp"
	"strings"

	"digital-api/pkg/role"
)

// Policy maps a path pattern to the access it requires. When Permissions is
// non-empty the check is permission-based (any of them suffices), otherwise
// RequiredRole applies.
type Policy struct {
	Pattern      *regexp.Regexp
	RequiredRole role.Role
	Permissions  []role.Permission
}

// Table is an ordered list of policies consulted per request; the first
// matching pattern wins. It is built once at startup and never mutated.
type Table struct {
	policies []Policy
}

// NewTable builds a Table from an ordered policy list.
func NewTable(policies []Policy) Table {
	return Table{policies: policies}
}

// Match returns the first policy whose pattern matches path.
// No match means the path is unprotected.
func (t Table) Match(path string) (Policy, bool) {
	for _, p := range t.policies {
		if p.Pattern.MatchString(path) {
			return p, true
		}
	}
	return Policy{}, false
}

// Len returns the number of policies in the table.
func (t Table) Len() int {
	return len(t.policies)
}

// IsAPIPath reports whether path belongs to the JSON API surface.
// API rejections are 401/403 JSON; page rejections redirect to login.
func IsAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// Default returns the route policy table the service ships with.
// Order matters: the role-management route must precede the generic
// /api/users entry.
func Default() Table {
	return NewTable([]Policy{
		{Pattern: regexp.MustCompile(`^/api/admin(/|$)`), RequiredRole: role.Admin},
		{Pattern: regexp.MustCompile(`^/api/users/[^/]+/role$`), Permissions: []role.Permission{role.PermManageUsers}},
		{Pattern: regexp.MustCompile(`^/api/users(/|$)`), RequiredRole: role.Viewer},
		{Pattern: regexp.MustCompile(`^/api/reports(/|$)`), Permissions: []role.Permission{role.PermViewReports}},
		{Pattern: regexp.MustCompile(`^/admin(/|$)`), RequiredRole: role.Admin},
		{Pattern: regexp.MustCompile(`^/dashboard(/|$)`), RequiredRole: role.Viewer},
		{Pattern: regexp.MustCompile(`^/users(/|$)`), RequiredRole: role.Viewer},
		{Pattern: regexp.MustCompile(`^/business(/|$)`), RequiredRole: role.Viewer},
	})
}

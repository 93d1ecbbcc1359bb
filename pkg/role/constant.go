package role

// Role is a member of the closed role set. Anything outside the set carries
// no rank and no permissions.
type Role string

// Permission is a single capability a role may hold.
type Permission string

const (
	Admin  Role = "admin"
	Editor Role = "editor"
	Viewer Role = "viewer"
)

const (
	PermCreate      Permission = "create"
	PermRead        Permission = "read"
	PermUpdate      Permission = "update"
	PermDelete      Permission = "delete"
	PermManageUsers Permission = "manage_users"
	PermViewReports Permission = "view_reports"
)

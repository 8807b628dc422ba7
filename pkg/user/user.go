package user

import "time"

type User struct {
	ID        string
	Email     string
	Name      string
	Role      Role
	CreatedAt time.Time
	LastLogin time.Time
}

// Permissions returns the capability set derived from the user's role.
// Permissions are never stored; they are always a function of the role.
func (u User) Permissions() Permissions {
	return PermissionsFor(u.Role)
}

type Role string

const (
	RoleDirector      Role = "F&B Director"
	RoleManager       Role = "F&B Manager"
	RoleAdministrator Role = "Administrator"
	RoleStaff         Role = "Staff"
)

// Hierarchy returns the authority rank of the role, higher means more authority.
func (r Role) Hierarchy() int {
	switch r {
	case RoleDirector:
		return 4
	case RoleManager:
		return 3
	case RoleAdministrator:
		return 2
	case RoleStaff:
		return 1
	}
	return 0
}

// ParseRole validates a role string against the closed set of roles.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleDirector, RoleManager, RoleAdministrator, RoleStaff:
		return Role(s), true
	}
	return "", false
}

package user

// Permissions is the capability set attached to a role.
type Permissions struct {
	CanEditAllEvents   bool
	CanApproveChanges  bool
	CanManageUsers     bool
	CanViewReports     bool
	ApprovalThreshold  float64
	CanOverrideChanges bool
}

// PermissionsFor maps a role to its fixed permission record. Total and
// deterministic: every role yields exactly one record, unknown roles get the
// staff (most restrictive) record.
func PermissionsFor(role Role) Permissions {
	switch role {
	case RoleDirector:
		return Permissions{
			CanEditAllEvents:   true,
			CanApproveChanges:  true,
			CanManageUsers:     true,
			CanViewReports:     true,
			ApprovalThreshold:  0,
			CanOverrideChanges: true,
		}
	case RoleManager:
		return Permissions{
			CanEditAllEvents:   true,
			CanApproveChanges:  true,
			CanManageUsers:     false,
			CanViewReports:     true,
			ApprovalThreshold:  500,
			CanOverrideChanges: false,
		}
	case RoleAdministrator:
		return Permissions{
			CanEditAllEvents:   false,
			CanApproveChanges:  false,
			CanManageUsers:     false,
			CanViewReports:     true,
			ApprovalThreshold:  0,
			CanOverrideChanges: false,
		}
	default:
		return Permissions{
			CanEditAllEvents:   false,
			CanApproveChanges:  false,
			CanManageUsers:     false,
			CanViewReports:     false,
			ApprovalThreshold:  0,
			CanOverrideChanges: false,
		}
	}
}

// CanApproveChange reports whether the user may approve a change of the given
// monetary amount: the amount must be within the role's approval threshold, or
// the role must carry override authority.
func CanApproveChange(u User, amount float64) bool {
	perms := u.Permissions()
	return amount <= perms.ApprovalThreshold || perms.CanOverrideChanges
}

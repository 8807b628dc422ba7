package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionsFor(t *testing.T) {
	tests := []struct {
		role     Role
		expected Permissions
	}{
		{
			role: RoleDirector,
			expected: Permissions{
				CanEditAllEvents:   true,
				CanApproveChanges:  true,
				CanManageUsers:     true,
				CanViewReports:     true,
				ApprovalThreshold:  0,
				CanOverrideChanges: true,
			},
		},
		{
			role: RoleManager,
			expected: Permissions{
				CanEditAllEvents:   true,
				CanApproveChanges:  true,
				CanManageUsers:     false,
				CanViewReports:     true,
				ApprovalThreshold:  500,
				CanOverrideChanges: false,
			},
		},
		{
			role: RoleAdministrator,
			expected: Permissions{
				CanEditAllEvents:   false,
				CanApproveChanges:  false,
				CanManageUsers:     false,
				CanViewReports:     true,
				ApprovalThreshold:  0,
				CanOverrideChanges: false,
			},
		},
		{
			role: RoleStaff,
			expected: Permissions{
				CanEditAllEvents:   false,
				CanApproveChanges:  false,
				CanManageUsers:     false,
				CanViewReports:     false,
				ApprovalThreshold:  0,
				CanOverrideChanges: false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.expected, PermissionsFor(tt.role))
			// stable: a second call yields the identical record
			assert.Equal(t, PermissionsFor(tt.role), PermissionsFor(tt.role))
		})
	}
}

func TestPermissionsFor_UnknownRoleGetsMostRestrictive(t *testing.T) {
	assert.Equal(t, PermissionsFor(RoleStaff), PermissionsFor(Role("Intern")))
}

func TestCanApproveChange(t *testing.T) {
	director := User{Role: RoleDirector}
	manager := User{Role: RoleManager}
	administrator := User{Role: RoleAdministrator}
	staff := User{Role: RoleStaff}

	t.Run("Director approves any amount through override", func(t *testing.T) {
		assert.True(t, CanApproveChange(director, 0))
		assert.True(t, CanApproveChange(director, 100))
		assert.True(t, CanApproveChange(director, 1000000))
	})

	t.Run("Manager approves up to the threshold", func(t *testing.T) {
		assert.True(t, CanApproveChange(manager, 0))
		assert.True(t, CanApproveChange(manager, 500))
		assert.False(t, CanApproveChange(manager, 500.01))
	})

	t.Run("Administrator and staff only approve zero amounts", func(t *testing.T) {
		assert.True(t, CanApproveChange(administrator, 0))
		assert.False(t, CanApproveChange(administrator, 1))
		assert.True(t, CanApproveChange(staff, 0))
		assert.False(t, CanApproveChange(staff, 1))
	})
}

func TestRoleHierarchy(t *testing.T) {
	assert.Greater(t, RoleDirector.Hierarchy(), RoleManager.Hierarchy())
	assert.Greater(t, RoleManager.Hierarchy(), RoleAdministrator.Hierarchy())
	assert.Greater(t, RoleAdministrator.Hierarchy(), RoleStaff.Hierarchy())
	assert.Equal(t, 0, Role("Intern").Hierarchy())
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("F&B Manager")
	assert.True(t, ok)
	assert.Equal(t, RoleManager, role)

	_, ok = ParseRole("CEO")
	assert.False(t, ok)
}

package test_utils

import (
	"context"
	"time"

	"github.com/eventsync/eventsync/pkg/user"
)

// DirectorUser is a fully-privileged test user.
func DirectorUser() user.User {
	return user.User{
		ID:        "test-director",
		Email:     "director@example.com",
		Name:      "Test Director",
		Role:      user.RoleDirector,
		CreatedAt: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		LastLogin: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// StaffUser is a test user with the most restrictive role.
func StaffUser() user.User {
	u := DirectorUser()
	u.ID = "test-staff"
	u.Email = "staff@example.com"
	u.Name = "Test Staff"
	u.Role = user.RoleStaff
	return u
}

// ContextWithUser places the given user into a fresh context, the way the
// identity middleware does for real requests.
func ContextWithUser(u user.User) context.Context {
	return user.WithUser(context.Background(), u)
}

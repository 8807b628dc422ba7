package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventsync/eventsync/internal/utils"
	"github.com/google/uuid"
)

var ErrNotPermitted = errors.New("user is not permitted to manage users")

type Service interface {
	GetCurrentUser(ctx context.Context) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	CreateUser(ctx context.Context, user User) (User, error)
	DeleteUser(ctx context.Context, email string) error
	GetAllUsers(ctx context.Context) ([]User, error)
}

// Provider is the narrow read interface other packages depend on.
type Provider interface {
	GetCurrentUser(ctx context.Context) (User, error)
}

type UserServiceImpl struct {
	repo  Repo
	clock utils.Clock
}

func NewUserService(repo Repo) *UserServiceImpl {
	return &UserServiceImpl{repo: repo, clock: &utils.SystemClock{}}
}

func (u *UserServiceImpl) GetCurrentUser(ctx context.Context) (User, error) {
	return CurrentUser(ctx)
}

func (u *UserServiceImpl) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return u.repo.GetUserByEmail(ctx, email)
}

// CreateUser registers a new user. The caller must carry the manage-users
// capability. The id is assigned before the durable write so a retry after a
// backing store failure is safe.
func (u *UserServiceImpl) CreateUser(ctx context.Context, user User) (User, error) {
	if err := u.requireManageUsers(ctx); err != nil {
		return User{}, err
	}
	user.ID = uuid.NewString()
	now := u.clock.Now()
	user.CreatedAt = now
	user.LastLogin = now
	if err := u.repo.CreateUser(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (u *UserServiceImpl) DeleteUser(ctx context.Context, email string) error {
	if err := u.requireManageUsers(ctx); err != nil {
		return err
	}
	return u.repo.DeleteUser(ctx, email)
}

func (u *UserServiceImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	return u.repo.GetAllUsers(ctx)
}

func (u *UserServiceImpl) requireManageUsers(ctx context.Context) error {
	current, err := CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	if !current.Permissions().CanManageUsers {
		return ErrNotPermitted
	}
	return nil
}

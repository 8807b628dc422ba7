package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("user not found")

type Repo interface {
	CreateUser(ctx context.Context, user User) error
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetAllUsers(ctx context.Context) ([]User, error)
	DeleteUser(ctx context.Context, email string) error
}

type UserRepoImpl struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepoImpl {
	return &UserRepoImpl{db: db}
}

func (u *UserRepoImpl) CreateUser(ctx context.Context, user User) error {
	query := `INSERT INTO users (id, email, name, role, created_at, last_login) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := u.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		string(user.Role),
		user.CreatedAt,
		user.LastLogin,
	)
	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return fmt.Errorf("could not create user: %w", err)
	}
	return nil
}

func (u *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (User, error) {
	query := `SELECT id, email, name, role, created_at, last_login FROM users WHERE email = $1`

	var user User
	var role string
	err := u.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.Name, &role, &user.CreatedAt, &user.LastLogin)
	if errors.Is(err, pgx.ErrNoRows) {
		log.Infof("user with email %s not found", email)
		return User{}, ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user: %v", err)
		return User{}, fmt.Errorf("could not get user: %w", err)
	}
	user.Role = Role(role)
	return user, nil
}

func (u *UserRepoImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	query := `SELECT id, email, name, role, created_at, last_login FROM users ORDER BY created_at`

	rows, err := u.db.Query(ctx, query)
	if err != nil {
		log.Errorf("failed to list users: %v", err)
		return nil, fmt.Errorf("could not list users: %w", err)
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		var user User
		var role string
		if err := rows.Scan(&user.ID, &user.Email, &user.Name, &role, &user.CreatedAt, &user.LastLogin); err != nil {
			return nil, fmt.Errorf("could not scan user: %w", err)
		}
		user.Role = Role(role)
		users = append(users, user)
	}
	return users, rows.Err()
}

func (u *UserRepoImpl) DeleteUser(ctx context.Context, email string) error {
	query := `DELETE FROM users WHERE email = $1`
	_, err := u.db.Exec(ctx, query, email)
	if err != nil {
		log.Errorf("failed to delete user: %v", err)
		return fmt.Errorf("could not delete user: %w", err)
	}
	return nil
}

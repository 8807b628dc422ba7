package user

import (
	"context"
)

type StubUserRepo struct {
	Users []User
}

func (s *StubUserRepo) CreateUser(ctx context.Context, user User) error {
	s.Users = append(s.Users, user)
	return nil
}

func (s *StubUserRepo) GetUserByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range s.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *StubUserRepo) GetAllUsers(ctx context.Context) ([]User, error) {
	users := make([]User, len(s.Users))
	copy(users, s.Users)
	return users, nil
}

func (s *StubUserRepo) DeleteUser(ctx context.Context, email string) error {
	for i, u := range s.Users {
		if u.Email == email {
			s.Users = append(s.Users[:i], s.Users[i+1:]...)
			return nil
		}
	}
	return nil
}

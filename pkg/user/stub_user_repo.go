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

func (s *StubUserRepo) GetUserByUid(ctx context.Context, uid string) (User, error) {
	for _, u := range s.Users {
		if u.Uid == uid {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *StubUserRepo) GetAllUsers(ctx context.Context) ([]User, error) {
	return s.Users, nil
}

func (s *StubUserRepo) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	for _, u := range s.Users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

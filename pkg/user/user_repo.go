package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("user not found")

type Repo interface {
	CreateUser(ctx context.Context, user User) error
	GetUserByUid(ctx context.Context, uid string) (User, error)
	GetAllUsers(ctx context.Context) ([]User, error)
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) CreateUser(ctx context.Context, user User) error {
	query := "INSERT INTO users (uid, username, display_name) VALUES ($1, $2, $3)"
	_, err := r.db.ExecContext(ctx, query, user.Uid, user.Username, user.DisplayName)
	if err != nil {
		err := fmt.Errorf("could not create user: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	query := "SELECT uid, username, display_name FROM users WHERE uid = $1"
	row := r.db.QueryRowContext(ctx, query, uid)

	var user User
	if err := row.Scan(&user.Uid, &user.Username, &user.DisplayName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		err := fmt.Errorf("failed to get user %s: %w", uid, err)
		log.Error(err)
		return User{}, err
	}
	return user, nil
}

func (r *RepoImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	query := "SELECT uid, username, display_name FROM users ORDER BY username"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("failed to list users: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.Uid, &user.Username, &user.DisplayName); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *RepoImpl) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	query := "SELECT COUNT(1) FROM users WHERE username = $1"
	var count int
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&count); err != nil {
		err := fmt.Errorf("failed to check username %s: %w", username, err)
		log.Error(err)
		return false, err
	}
	return count > 0, nil
}

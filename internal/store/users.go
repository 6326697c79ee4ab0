package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/sam44cordeiro/backend-financeiro/internal/models"
	"github.com/sam44cordeiro/backend-financeiro/internal/utils"
)

// UserStore validates signup and login requests against persisted user
// records. It owns password hashing and verification.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Signup registers a new user. The raw password is hashed before the insert
// and never stored or returned.
func (s *UserStore) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	var existing int64
	err := s.db.QueryRowContext(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&existing)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("db error: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Name: name, Email: email}
	err = s.db.QueryRowContext(ctx,
		"INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id",
		name, email, hash).Scan(&user.ID)
	if err != nil {
		// the lookup above races with concurrent signups; the UNIQUE
		// constraint on email is the authority
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns the matching user. No token or
// session is issued; every privileged call resubmits credentials.
func (s *UserStore) Login(ctx context.Context, email, password string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password FROM users WHERE email = $1", email).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidPassword
	}

	user.Password = ""
	return user, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/smartseats/api/internal/model"
)

// UserRepo provides access to the `users` table.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and populates its generated ID.  Emails are
// normalized to lower case before insertion; a duplicate email is
// reported as ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (name, email) VALUES (?, ?)`,
		u.Name, u.Email)
	if err != nil {
		// MySQL error 1062 = duplicate entry for a unique key
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// GetByID fetches a user by id. Returns ErrUserNotFound when absent.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	const q = `SELECT id, name, email, created_at, updated_at FROM users WHERE id = ?`
	var u model.User
	err := r.DB.QueryRowContext(ctx, q, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	const q = `SELECT id, name, email, created_at, updated_at FROM users WHERE email = ? LIMIT 1`
	var u model.User
	err := r.DB.QueryRowContext(ctx, q, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

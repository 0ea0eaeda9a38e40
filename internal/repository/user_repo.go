package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"todolist/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

// ErrDuplicateEmail reports a violation of the unique email constraint. The
// service pre-checks for an existing email, but two concurrent signups can both
// pass that check; the constraint is the backstop.
var ErrDuplicateEmail = errors.New("email already exists")

const (
	insertUserSQL = `INSERT INTO users (email, first_name, last_name, password_hash) VALUES (?, ?, ?, ?)`

	selectUserByEmailSQL = `SELECT id, email, first_name, last_name, password_hash FROM users WHERE email = ?`
)

// Create inserts a new user and returns its ID. A unique-constraint violation
// on email maps to ErrDuplicateEmail.
func (r *UserSQLite) Create(ctx context.Context, u models.User) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, u.Email, u.FirstName, u.LastName, u.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Email, err)
	}
	return int(lastID), nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByEmailSQL, email).
		Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return &u, nil
}

// isUniqueViolation inspects the driver error text; modernc.org/sqlite does not
// export typed constraint errors.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/course-catalog/internal/model"
)

// UserRepo encapsulates all database queries related to users.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the provided DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new user.  The caller is responsible for hashing the
// password before calling; u.PasswordHash must already hold the bcrypt
// digest.  On success u.ID is populated with the auto-generated value.
// A unique-key collision on email_address is returned as ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.EmailAddress = strings.ToLower(strings.TrimSpace(u.EmailAddress))
	const q = "INSERT INTO users (first_name, last_name, email_address, password_hash) VALUES (?,?,?,?)"
	res, err := r.db.ExecContext(ctx, q, u.FirstName, u.LastName, u.EmailAddress, u.PasswordHash)
	if err != nil {
		if isDuplicateErr(err) {
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

// FindByEmail fetches a user by normalized email.  It returns
// ErrUserNotFound when no row matches.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	const q = `SELECT id, first_name, last_name, email_address, password_hash, created_at, updated_at
	           FROM users WHERE email_address = ? LIMIT 1`
	var u model.User
	err := r.db.QueryRowContext(ctx, q, email).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.EmailAddress, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

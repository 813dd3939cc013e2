package userreposqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jrsteele09/go-auth-api/users"
	"github.com/pkg/errors"
)

var _ users.UserRepo = (*SQLiteUserRepo)(nil)

// SQLiteUserRepo implements users.UserRepo on the SQLite credential store.
type SQLiteUserRepo struct {
	db *sql.DB
}

func NewSQLiteUserRepo(db *sql.DB) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: db}
}

func (ur *SQLiteUserRepo) Create(ctx context.Context, user *users.User) error {
	_, err := ur.db.ExecContext(ctx,
		"INSERT INTO users (id, name, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)",
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrDuplicateEmail
		}
		return errors.Wrap(err, "[SQLiteUserRepo.Create] exec")
	}
	return nil
}

func (ur *SQLiteUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return ur.getUser(ctx,
		"SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?", email)
}

func (ur *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	return ur.getUser(ctx,
		"SELECT id, name, email, password_hash, created_at FROM users WHERE id = ?", id)
}

func (ur *SQLiteUserRepo) getUser(ctx context.Context, query string, arg string) (*users.User, error) {
	row := ur.db.QueryRowContext(ctx, query, arg)

	user := &users.User{}
	var createdAt string
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrNotFound
		}
		return nil, errors.Wrap(err, "[SQLiteUserRepo.getUser] scan")
	}

	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, errors.Wrap(err, "[SQLiteUserRepo.getUser] parsing created_at")
	}
	user.CreatedAt = parsed

	return user, nil
}

// isUniqueViolation checks if a SQLite error is a UNIQUE constraint violation.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

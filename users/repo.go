package users

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned by Create when the email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepo is the credential store contract consumed by the auth service.
// Email is treated as an exact-match unique key.
type UserRepo interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

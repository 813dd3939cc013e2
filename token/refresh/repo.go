package refresh

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when no refresh token record exists for a user.
var ErrNotFound = errors.New("refresh token not found")

// StoredRefreshToken mirrors the current refresh token value for a user so a
// presented token can be compared against it. At most one record exists per
// user; every successful login or refresh replaces the previous value.
type StoredRefreshToken struct {
	UserID    string    // Key: the user the token was issued for
	Token     string    // The current refresh token string, as sent to the client
	CreatedAt time.Time // When the current value was stored
}

// Repo manages server-side storage of the single current refresh token per
// user. Upsert replaces any existing record for the same user, which is what
// rotates the previous token out of validity.
type Repo interface {
	Upsert(ctx context.Context, record *StoredRefreshToken) error
	GetByUserID(ctx context.Context, userID string) (*StoredRefreshToken, error)
}

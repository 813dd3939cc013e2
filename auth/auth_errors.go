package auth

import "github.com/pkg/errors"

var (
	// InvalidCredentialsErr is returned for both unknown emails and wrong
	// passwords so callers cannot probe which accounts exist.
	InvalidCredentialsErr = errors.New("invalid credentials")
	DuplicateUserErr      = errors.New("user already exists")
	UnauthenticatedErr    = errors.New("no token, authorization denied")
	InvalidTokenErr       = errors.New("token is not valid")
	// TokenRotatedErr means the presented refresh token is cryptographically
	// valid but no longer the user's current one: it has been rotated by a
	// later refresh or superseded by a newer login.
	TokenRotatedErr = errors.New("refresh token is no longer current")
	StorageErr      = errors.New("storage failure")
)

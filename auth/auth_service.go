// Package auth implements the authentication protocol: registration, login,
// refresh-token rotation, and access-token verification. At most one refresh
// token is live per user; each successful login or refresh replaces it, which
// permanently invalidates the previous value for future refresh attempts.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-auth-api/token"
	"github.com/jrsteele09/go-auth-api/token/refresh"
	"github.com/jrsteele09/go-auth-api/users"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Repos holds all repository dependencies for the Service.
type Repos struct {
	Users         users.UserRepo // Repository for user records
	RefreshTokens refresh.Repo   // Repository for the current refresh token per user
}

// Service orchestrates the credential store, password hasher, and token codec.
// It holds no mutable state between requests; every operation re-fetches
// current store state, which is what makes rotation detection correct under
// concurrent requests.
type Service struct {
	repos   Repos
	codec   *token.Codec
	logger  zerolog.Logger
	nowTime func() time.Time // nowTime function (injectable for testing)
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithNowTime sets the now time function (primarily for testing).
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

// WithLogger sets the logger used for best-effort failure reporting.
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService initializes a Service with required dependencies.
func NewService(repos Repos, codec *token.Codec, options ...ServiceOption) (*Service, error) {
	if repos.Users == nil {
		return nil, errors.New("[NewService] Users repo is required")
	}
	if repos.RefreshTokens == nil {
		return nil, errors.New("[NewService] RefreshTokens repo is required")
	}
	if codec == nil {
		return nil, errors.New("[NewService] codec is required")
	}

	service := &Service{
		repos:   repos,
		codec:   codec,
		logger:  zerolog.Nop(),
		nowTime: time.Now,
	}

	for _, opt := range options {
		opt(service)
	}

	return service, nil
}

// Register validates the request, creates the user, and issues the first
// token pair. Returns ValidationErrors for field-level failures and
// DuplicateUserErr when the email is already registered.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*token.Pair, error) {
	if verrs := ValidateRegistration(req); verrs != nil {
		return nil, verrs
	}

	if _, err := s.repos.Users.GetByEmail(ctx, req.Email); err == nil {
		return nil, DuplicateUserErr
	} else if !errors.Is(err, users.ErrNotFound) {
		return nil, errors.Wrap(err, "[Service.Register] GetByEmail")
	}

	passwordHash, err := users.HashPassword(req.Password)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Register] HashPassword")
	}

	user := &users.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    s.nowTime(),
	}
	if err := s.repos.Users.Create(ctx, user); err != nil {
		// The existence check above races with concurrent registrations;
		// the store's unique key is authoritative.
		if errors.Is(err, users.ErrDuplicateEmail) {
			return nil, DuplicateUserErr
		}
		return nil, errors.Wrap(err, "[Service.Register] Create")
	}

	return s.issueAndStorePair(ctx, user.ID, false)
}

// Login verifies the credentials and issues a fresh token pair, rotating the
// user's stored refresh token. Unknown emails and wrong passwords both fail
// with InvalidCredentialsErr.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*token.Pair, error) {
	if verrs := ValidateLogin(req); verrs != nil {
		return nil, verrs
	}

	user, err := s.repos.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, InvalidCredentialsErr
		}
		return nil, errors.Wrap(err, "[Service.Login] GetByEmail")
	}

	if !users.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, InvalidCredentialsErr
	}

	return s.issueAndStorePair(ctx, user.ID, false)
}

// Refresh exchanges a presented refresh token for a new pair. The presented
// token must verify cryptographically AND exactly match the user's stored
// current value; once a token has been rotated out, it stays invalid even
// while unexpired. The rotation write is fatal on failure: handing out a
// refresh token the store does not agree is current would desync rotation
// tracking permanently.
func (s *Service) Refresh(ctx context.Context, presented string) (*token.Pair, error) {
	if strings.TrimSpace(presented) == "" {
		return nil, UnauthenticatedErr
	}

	claims, err := s.codec.Verify(presented, token.KindRefresh)
	if err != nil {
		return nil, InvalidTokenErr
	}

	record, err := s.repos.RefreshTokens.GetByUserID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, refresh.ErrNotFound) {
			return nil, TokenRotatedErr
		}
		return nil, errors.Wrap(err, "[Service.Refresh] GetByUserID")
	}
	if record.Token != presented {
		return nil, TokenRotatedErr
	}

	return s.issueAndStorePair(ctx, claims.UserID, true)
}

// Authenticate verifies an access token and returns the user id it was issued
// for. No store lookup happens here; access tokens are trusted statelessly
// until they expire.
func (s *Service) Authenticate(presented string) (string, error) {
	if strings.TrimSpace(presented) == "" {
		return "", UnauthenticatedErr
	}

	claims, err := s.codec.Verify(presented, token.KindAccess)
	if err != nil {
		return "", InvalidTokenErr
	}
	return claims.UserID, nil
}

// Profile returns the user record for an authenticated user id.
func (s *Service) Profile(ctx context.Context, userID string) (*users.User, error) {
	user, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, InvalidTokenErr
		}
		return nil, errors.Wrap(err, "[Service.Profile] GetByID")
	}
	return user, nil
}

// issueAndStorePair issues a fresh pair and upserts the refresh token record.
// For Register and Login the upsert is best effort: a missing record only
// affects future refresh calls, not the issued tokens' validity, so the
// failure is logged and the tokens are still returned. For Refresh the write
// IS the rotation, so rotationWriteFatal makes the failure abort the call.
func (s *Service) issueAndStorePair(ctx context.Context, userID string, rotationWriteFatal bool) (*token.Pair, error) {
	pair, err := s.codec.IssuePair(userID)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.issueAndStorePair] IssuePair")
	}

	record := &refresh.StoredRefreshToken{
		UserID:    userID,
		Token:     pair.RefreshToken,
		CreatedAt: s.nowTime(),
	}
	if err := s.repos.RefreshTokens.Upsert(ctx, record); err != nil {
		if rotationWriteFatal {
			return nil, errors.Wrapf(StorageErr, "[Service.issueAndStorePair] rotation upsert: %v", err)
		}
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to store refresh token")
	}

	return &pair, nil
}

package token

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jrsteele09/go-auth-api/internal/config"
	"github.com/pkg/errors"
)

// Kind selects which secret and expiration a token is issued and verified
// with. The two kinds use distinct secrets, so a refresh token can never
// verify as an access token or vice versa.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Verification failures are discriminated so callers can branch without
// string matching. Exactly one of these is returned by Verify on failure.
var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenSignature = errors.New("token signature is invalid")
)

// Claims is the signed claim set carried by both token kinds.
type Claims struct {
	jwtlib.RegisteredClaims
	UserID string `json:"user_id"`
}

// Pair bundles a short-lived access token with a long-lived refresh token.
// Field names match the JSON bodies returned by the HTTP boundary.
type Pair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type kindSettings struct {
	secret []byte
	expiry time.Duration
}

// Codec signs and verifies compact, self-contained, expiring tokens. It is
// stateless; each Issue call embeds an independent expiration timestamp.
type Codec struct {
	kinds   map[Kind]kindSettings
	nowTime func() time.Time
}

// CodecOption defines a function type to modify the Codec instance.
type CodecOption func(*Codec)

// WithNowTime sets the now time function (primarily for testing).
func WithNowTime(nowFunc func() time.Time) CodecOption {
	return func(c *Codec) {
		c.nowTime = nowFunc
	}
}

// NewCodec initializes a Codec from the signing configuration.
func NewCodec(cfg *config.Config, options ...CodecOption) (*Codec, error) {
	if cfg == nil {
		return nil, errors.New("[NewCodec] config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewCodec] invalid signing configuration")
	}

	codec := &Codec{
		kinds: map[Kind]kindSettings{
			KindAccess:  {secret: []byte(cfg.AccessTokenSecret), expiry: cfg.AccessTokenExpiry},
			KindRefresh: {secret: []byte(cfg.RefreshTokenSecret), expiry: cfg.RefreshTokenExpiry},
		},
		nowTime: time.Now,
	}

	for _, opt := range options {
		opt(codec)
	}

	return codec, nil
}

// Issue signs a token of the given kind for the user. The expiration is
// computed from the kind's configured expiry at the moment of the call.
func (c *Codec) Issue(userID string, kind Kind) (string, error) {
	settings, ok := c.kinds[kind]
	if !ok {
		return "", errors.Errorf("[Codec.Issue] unknown token kind %q", kind)
	}

	now := c.nowTime()
	claims := Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(settings.expiry)),
		},
		UserID: userID,
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(settings.secret)
	if err != nil {
		return "", errors.Wrap(err, "[Codec.Issue] SignedString")
	}
	return signed, nil
}

// IssuePair issues an access and refresh token for the same user in one call.
func (c *Codec) IssuePair(userID string) (Pair, error) {
	accessToken, err := c.Issue(userID, KindAccess)
	if err != nil {
		return Pair{}, err
	}
	refreshToken, err := c.Issue(userID, KindRefresh)
	if err != nil {
		return Pair{}, err
	}
	return Pair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Verify parses and validates a token against the secret configured for the
// given kind. On failure it returns exactly one of ErrTokenMalformed,
// ErrTokenExpired, or ErrTokenSignature; it never panics and never returns a
// partially-decoded claim set.
func (c *Codec) Verify(tokenString string, kind Kind) (*Claims, error) {
	settings, ok := c.kinds[kind]
	if !ok {
		return nil, errors.Errorf("[Codec.Verify] unknown token kind %q", kind)
	}

	claims := &Claims{}
	parsed, err := jwtlib.ParseWithClaims(tokenString, claims,
		func(t *jwtlib.Token) (interface{}, error) { return settings.secret, nil },
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(c.nowTime),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwtlib.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

package token_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-auth-api/internal/config"
	"github.com/jrsteele09/go-auth-api/token"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-1"

func testConfig() *config.Config {
	return &config.Config{
		AccessTokenSecret:  "access-secret-1234",
		RefreshTokenSecret: "refresh-secret-1234",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	}
}

func newTestCodec(t *testing.T, options ...token.CodecOption) *token.Codec {
	t.Helper()
	codec, err := token.NewCodec(testConfig(), options...)
	require.NoError(t, err)
	return codec
}

func TestNewCodec_RejectsSharedSecret(t *testing.T) {
	cfg := testConfig()
	cfg.RefreshTokenSecret = cfg.AccessTokenSecret

	_, err := token.NewCodec(cfg)
	require.Error(t, err)
}

func TestVerify_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	for _, kind := range []token.Kind{token.KindAccess, token.KindRefresh} {
		signed, err := codec.Issue(testUserID, kind)
		require.NoError(t, err)
		require.NotEmpty(t, signed)

		claims, err := codec.Verify(signed, kind)
		require.NoError(t, err)
		require.Equal(t, testUserID, claims.UserID)
		require.NotEmpty(t, claims.ID, "each token should carry a unique jti")
	}
}

func TestVerify_RejectsCrossKind(t *testing.T) {
	codec := newTestCodec(t)

	accessToken, err := codec.Issue(testUserID, token.KindAccess)
	require.NoError(t, err)
	refreshToken, err := codec.Issue(testUserID, token.KindRefresh)
	require.NoError(t, err)

	_, err = codec.Verify(accessToken, token.KindRefresh)
	require.ErrorIs(t, err, token.ErrTokenSignature)

	_, err = codec.Verify(refreshToken, token.KindAccess)
	require.ErrorIs(t, err, token.ErrTokenSignature)
}

func TestVerify_Expired(t *testing.T) {
	issuedAt := time.Now().Add(-48 * time.Hour)
	issuer := newTestCodec(t, token.WithNowTime(func() time.Time { return issuedAt }))
	verifier := newTestCodec(t)

	signed, err := issuer.Issue(testUserID, token.KindAccess)
	require.NoError(t, err)

	_, err = verifier.Verify(signed, token.KindAccess)
	require.ErrorIs(t, err, token.ErrTokenExpired)
}

func TestVerify_Malformed(t *testing.T) {
	codec := newTestCodec(t)

	for _, garbage := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := codec.Verify(garbage, token.KindAccess)
		require.ErrorIs(t, err, token.ErrTokenMalformed, "input %q", garbage)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	codec := newTestCodec(t)

	otherCfg := testConfig()
	otherCfg.AccessTokenSecret = "a-completely-different-secret"
	other, err := token.NewCodec(otherCfg)
	require.NoError(t, err)

	signed, err := other.Issue(testUserID, token.KindAccess)
	require.NoError(t, err)

	_, err = codec.Verify(signed, token.KindAccess)
	require.ErrorIs(t, err, token.ErrTokenSignature)
}

func TestIssuePair(t *testing.T) {
	codec := newTestCodec(t)

	pair, err := codec.IssuePair(testUserID)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	accessClaims, err := codec.Verify(pair.AccessToken, token.KindAccess)
	require.NoError(t, err)
	refreshClaims, err := codec.Verify(pair.RefreshToken, token.KindRefresh)
	require.NoError(t, err)

	require.Equal(t, testUserID, accessClaims.UserID)
	require.Equal(t, testUserID, refreshClaims.UserID)
	require.True(t, accessClaims.ExpiresAt.Before(refreshClaims.ExpiresAt.Time),
		"access tokens should expire before refresh tokens")
}

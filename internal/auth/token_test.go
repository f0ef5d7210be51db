package auth

import (
	"testing"
	"time"

	"github.com/and161185/clubhouse/internal/errs"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("testsecret")
	token, err := tm.GenerateToken("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token.Value)
	require.NotEmpty(t, token.ID)

	parsed, err := tm.ParseToken(token.Value, PurposeSession)
	require.NoError(t, err)
	require.Equal(t, "user-42", parsed.Subject)
	require.Equal(t, token.ID, parsed.ID)
	require.WithinDuration(t, token.ExpiresAt, parsed.ExpiresAt, time.Second)
}

func TestParseTokenWrongPurpose(t *testing.T) {
	tm := NewTokenManager("testsecret")
	reset, err := tm.GenerateResetToken("user-1")
	require.NoError(t, err)

	_, err = tm.ParseToken(reset.Value, PurposeSession)
	require.ErrorIs(t, err, errs.ErrInvalidToken)

	parsed, err := tm.ParseToken(reset.Value, PurposeReset)
	require.NoError(t, err)
	require.Equal(t, "user-1", parsed.Subject)
}

func TestParseInvalidToken(t *testing.T) {
	tm := NewTokenManager("testsecret")

	_, err := tm.ParseToken("invalid.token.string", PurposeSession)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestParseTokenWithWrongSignature(t *testing.T) {
	tm := NewTokenManager("testsecret")

	claims := Claims{
		Purpose: PurposeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "id",
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	badTokenStr, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrongsecret"))

	_, err := tm.ParseToken(badTokenStr, PurposeSession)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestParseExpiredToken(t *testing.T) {
	tm := NewTokenManager("testsecret")
	tm.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	token, err := tm.GenerateToken("user-1")
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.ParseToken(token.Value, PurposeSession)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestRevocations(t *testing.T) {
	r := NewRevocations(16)
	require.False(t, r.IsRevoked("a"))
	r.Revoke("a")
	require.True(t, r.IsRevoked("a"))
	require.False(t, r.IsRevoked("b"))
}

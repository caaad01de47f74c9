package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := NewSessionToken(testSecret, 42, "alice", 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), tok.Exp, 5*time.Second)

	id, err := VerifyToken(testSecret, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id.UserID)
	assert.Equal(t, "alice", id.Username)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	tok, err := NewSessionToken(testSecret, 1, "bob", time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken("another-secret", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenExpired(t *testing.T) {
	tok, err := NewSessionToken(testSecret, 1, "bob", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsFractionalSubject(t *testing.T) {
	// A hand-rolled token with sub=1.5 must not verify as user 1.
	claims := jwt.MapClaims{
		"sub":      1.5,
		"username": "alice",
		"exp":      time.Now().UTC().Add(time.Hour).Unix(),
		"iat":      time.Now().UTC().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenMalformed(t *testing.T) {
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := VerifyToken(testSecret, raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "raw=%q", raw)
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("user123", 4)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "user123"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}

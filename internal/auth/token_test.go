package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-service/internal/auth"
)

var testSecret = []byte("test-signing-key")

func TestIssueAndVerify(t *testing.T) {
	tokens := auth.NewTokenService(testSecret, time.Hour)

	t.Run("roundtrip returns the user id", func(t *testing.T) {
		raw, err := tokens.Issue(42)
		require.NoError(t, err)

		userID, err := tokens.Verify(raw)
		require.NoError(t, err)
		assert.Equal(t, 42, userID)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := auth.NewTokenService(testSecret, -time.Minute)
		raw, err := expired.Issue(42)
		require.NoError(t, err)

		_, err = tokens.Verify(raw)
		assert.ErrorIs(t, err, auth.ErrTokenExpired)
	})

	t.Run("tampered token", func(t *testing.T) {
		raw, err := tokens.Issue(42)
		require.NoError(t, err)

		tampered := raw[:len(raw)-2] + "xx"
		_, err = tokens.Verify(tampered)
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		other := auth.NewTokenService([]byte("other-key"), time.Hour)
		raw, err := other.Issue(42)
		require.NoError(t, err)

		_, err = tokens.Verify(raw)
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := tokens.Verify("not.a.token")
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("missing subject claim", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(testSecret)
		require.NoError(t, err)

		_, err = tokens.Verify(raw)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("missing expiration claim", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject: "42",
		}).SignedString(testSecret)
		require.NoError(t, err)

		_, err = tokens.Verify(raw)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("non-numeric subject", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(testSecret)
		require.NoError(t, err)

		_, err = tokens.Verify(raw)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed)
	})

	t.Run("rejected signing method", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(testSecret)
		require.NoError(t, err)

		_, err = tokens.Verify(raw)
		assert.ErrorIs(t, err, auth.ErrTokenInvalid)
	})
}

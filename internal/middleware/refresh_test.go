package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "refresh-secret-for-tests"

func mintRefreshToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestParseRefreshTokenRoundTrip(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)

	raw := mintRefreshToken(t, jwt.MapClaims{
		"userId":   userID.String(),
		"deviceId": deviceID.String(),
		"iat":      now.Unix(),
		"exp":      now.Add(time.Hour).Unix(),
	}, testSecret)

	sess, err := ParseRefreshToken(raw, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, sess.UserID)
	assert.Equal(t, deviceID, sess.DeviceID)
	assert.True(t, now.Equal(sess.IssuedAt))
	assert.Equal(t, raw, sess.Token)
}

func TestParseRefreshTokenRejectsWrongSecret(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	raw := mintRefreshToken(t, jwt.MapClaims{
		"userId":   uuid.NewString(),
		"deviceId": uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(time.Hour).Unix(),
	}, "some-other-secret")

	_, err := ParseRefreshToken(raw, testSecret)
	assert.Error(t, err)
}

func TestParseRefreshTokenRejectsExpired(t *testing.T) {
	past := time.Now().UTC().Add(-2 * time.Hour)
	raw := mintRefreshToken(t, jwt.MapClaims{
		"userId":   uuid.NewString(),
		"deviceId": uuid.NewString(),
		"iat":      past.Unix(),
		"exp":      past.Add(time.Hour).Unix(),
	}, testSecret)

	_, err := ParseRefreshToken(raw, testSecret)
	assert.Error(t, err)
}

func TestParseRefreshTokenRejectsMissingClaims(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	// No deviceId: an access token must never pass as a refresh token.
	raw := mintRefreshToken(t, jwt.MapClaims{
		"userId": uuid.NewString(),
		"iat":    now.Unix(),
		"exp":    now.Add(time.Hour).Unix(),
	}, testSecret)
	_, err := ParseRefreshToken(raw, testSecret)
	assert.Error(t, err)

	// No iat: rotation matching would be impossible.
	raw = mintRefreshToken(t, jwt.MapClaims{
		"userId":   uuid.NewString(),
		"deviceId": uuid.NewString(),
		"exp":      now.Add(time.Hour).Unix(),
	}, testSecret)
	_, err = ParseRefreshToken(raw, testSecret)
	assert.Error(t, err)

	_, err = ParseRefreshToken("not-a-jwt", testSecret)
	assert.Error(t, err)
}

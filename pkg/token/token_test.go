package token

import (
	"testing"
	"time"

	"wheel_backend/internal/model"

	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &model.User{ID: 42, Login: "juan"}

	tokenStr, err := GenerateAccessToken(user, secret, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(tokenStr, secret)
	require.NoError(t, err)
	require.Equal(t, "42", claims.ID)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, []byte("right"), time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tokenStr, []byte("wrong"))
	require.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, []byte("secret"), -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tokenStr, []byte("secret"))
	require.Error(t, err)
}

func TestRefreshTokenHashVerification(t *testing.T) {
	raw, err := GenerateRefreshToken()
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	hash := HashRefreshToken(raw)
	require.NotEqual(t, raw, hash)
	require.True(t, VerifyRefreshToken(raw, hash))
	require.False(t, VerifyRefreshToken("tampered", hash))
}

func TestRefreshTokensAreUnique(t *testing.T) {
	a, err := GenerateRefreshToken()
	require.NoError(t, err)
	b, err := GenerateRefreshToken()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

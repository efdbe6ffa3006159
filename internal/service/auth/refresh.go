package auth

import (
	"context"

	"wheel_backend/internal/apperr"
	"wheel_backend/pkg/token"
)

// Refresh exchanges a valid session refresh token for a new access token.
func (s *serv) Refresh(ctx context.Context, sessionID, refreshToken string) (string, error) {
	refreshTokenHash, err := s.authRepo.GetRefreshTokenBySessionID(ctx, sessionID)
	if err != nil {
		return "", apperr.ErrUnauthenticated
	}

	if !token.VerifyRefreshToken(refreshToken, refreshTokenHash) {
		return "", apperr.ErrUnauthenticated
	}

	user, err := s.authRepo.GetUserBySessionID(ctx, sessionID)
	if err != nil {
		return "", apperr.ErrUnauthenticated
	}

	newAccessToken, err := token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return "", err
	}

	return newAccessToken, nil
}

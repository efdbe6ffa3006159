package auth

import (
	"context"
	"time"

	"wheel_backend/internal/apperr"
	"wheel_backend/internal/model"
	"wheel_backend/pkg/pass"
	"wheel_backend/pkg/token"
)

// Login verifies credentials, opens a fresh session and issues the token
// pair. Bad login and bad password both come back as ErrUnauthenticated so
// the response does not reveal which part was wrong.
func (s *serv) Login(ctx context.Context, login, password string) (*model.AuthData, error) {
	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		return nil, apperr.ErrUnauthenticated
	}

	if !pass.VerifyPassword(user.Password, password) {
		return nil, apperr.ErrUnauthenticated
	}

	sessionID := generateSessionID()

	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	err = s.authRepo.CreateSession(ctx,
		&model.Session{
			ID:           sessionID,
			UserID:       user.ID,
			RefreshToken: token.HashRefreshToken(refreshToken),
			ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
		})
	if err != nil {
		return nil, err
	}

	accessToken, err := token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}

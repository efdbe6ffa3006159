package auth

import (
	"context"
	"time"

	"wheel_backend/internal/model"
	"wheel_backend/pkg/pass"
	"wheel_backend/pkg/token"
)

// Register creates the user, opens a session and issues the token pair. The
// user row and session are created in one database transaction; the wallet
// is not touched here, it appears on the first wallet transaction.
func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash

	var (
		sessionID    string
		refreshToken string
		accessToken  string
	)

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		user.ID, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}

		sessionID = generateSessionID()

		refreshToken, err = token.GenerateRefreshToken()
		if err != nil {
			return err
		}

		err = s.authRepo.CreateSession(ctx,
			&model.Session{
				ID:           sessionID,
				UserID:       user.ID,
				RefreshToken: token.HashRefreshToken(refreshToken),
				ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
			})
		if err != nil {
			return err
		}

		accessToken, err = token.GenerateAccessToken(
			user,
			s.jwtConfig.AccessTokenSecretKey(),
			s.jwtConfig.AccessTokenDuration())
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", "user_id", user.ID)

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}

package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"wheel_backend/internal/apperr"
	"wheel_backend/internal/model"
	"wheel_backend/internal/repository/memory"
	"wheel_backend/pkg/token"

	"github.com/stretchr/testify/require"
)

type fakeJWTConfig struct{}

func (fakeJWTConfig) AccessTokenSecretKey() []byte        { return []byte("test-secret") }
func (fakeJWTConfig) AccessTokenDuration() time.Duration  { return time.Minute }
func (fakeJWTConfig) RefreshTokenDuration() time.Duration { return time.Hour }

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User), nextID: 1}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (int, error) {
	if _, exists := r.users[user.Login]; exists {
		return 0, errors.New("login already taken")
	}
	id := r.nextID
	r.nextID++
	stored := *user
	stored.ID = id
	r.users[user.Login] = &stored
	return id, nil
}

func (r *fakeUserRepo) GetUserByLogin(_ context.Context, login string) (*model.User, error) {
	user, ok := r.users[login]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

type fakeAuthRepo struct {
	sessions map[string]*model.Session
	users    *fakeUserRepo
}

func newFakeAuthRepo(users *fakeUserRepo) *fakeAuthRepo {
	return &fakeAuthRepo{sessions: make(map[string]*model.Session), users: users}
}

func (r *fakeAuthRepo) CreateSession(_ context.Context, session *model.Session) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeAuthRepo) GetRefreshTokenBySessionID(_ context.Context, sessionID string) (string, error) {
	session, ok := r.sessions[sessionID]
	if !ok {
		return "", errors.New("session not found")
	}
	return session.RefreshToken, nil
}

func (r *fakeAuthRepo) DeleteSession(_ context.Context, sessionID string) error {
	delete(r.sessions, sessionID)
	return nil
}

func (r *fakeAuthRepo) GetUserBySessionID(_ context.Context, sessionID string) (*model.User, error) {
	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, errors.New("session not found")
	}
	for _, user := range r.users.users {
		if user.ID == session.UserID {
			return user, nil
		}
	}
	return nil, errors.New("user not found")
}

func newTestService() (*serv, *fakeAuthRepo) {
	users := newFakeUserRepo()
	sessions := newFakeAuthRepo(users)
	s := NewAuthService(
		memory.NewTxManager(),
		users,
		sessions,
		fakeJWTConfig{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	).(*serv)
	return s, sessions
}

func TestRegisterIssuesTokensAndSession(t *testing.T) {
	s, sessions := newTestService()

	data, err := s.Register(context.Background(), &model.User{
		Name:     "Juan",
		Login:    "juan",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, data.AccessToken)
	require.NotEmpty(t, data.RefreshToken)
	require.NotEmpty(t, data.SessionID)

	claims, err := token.VerifyToken(data.AccessToken, []byte("test-secret"))
	require.NoError(t, err)
	require.Equal(t, "1", claims.ID)

	// Only the hash of the refresh token is kept server-side.
	session := sessions.sessions[data.SessionID]
	require.NotNil(t, session)
	require.NotEqual(t, data.RefreshToken, session.RefreshToken)
	require.True(t, token.VerifyRefreshToken(data.RefreshToken, session.RefreshToken))
}

func TestLoginVerifiesPassword(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Register(context.Background(), &model.User{Login: "juan", Password: "hunter22"})
	require.NoError(t, err)

	data, err := s.Login(context.Background(), "juan", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, data.AccessToken)

	_, err = s.Login(context.Background(), "juan", "wrong")
	require.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = s.Login(context.Background(), "nobody", "hunter22")
	require.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestRefreshRotatesAccessToken(t *testing.T) {
	s, _ := newTestService()

	data, err := s.Register(context.Background(), &model.User{Login: "juan", Password: "hunter22"})
	require.NoError(t, err)

	accessToken, err := s.Refresh(context.Background(), data.SessionID, data.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)

	_, err = s.Refresh(context.Background(), data.SessionID, "forged-token")
	require.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = s.Refresh(context.Background(), "unknown-session", data.RefreshToken)
	require.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	s, sessions := newTestService()

	data, err := s.Register(context.Background(), &model.User{Login: "juan", Password: "hunter22"})
	require.NoError(t, err)

	require.NoError(t, s.Logout(context.Background(), data.SessionID))
	require.NotContains(t, sessions.sessions, data.SessionID)

	_, err = s.Refresh(context.Background(), data.SessionID, data.RefreshToken)
	require.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

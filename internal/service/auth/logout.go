package auth

import "context"

// Logout drops the session so its refresh token can no longer be used.
func (s *serv) Logout(ctx context.Context, sessionID string) error {
	return s.authRepo.DeleteSession(ctx, sessionID)
}

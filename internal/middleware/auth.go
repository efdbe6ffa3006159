package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"wheel_backend/internal/config"
	"wheel_backend/internal/lib/logger/sl"
	"wheel_backend/pkg/resp"
	"wheel_backend/pkg/token"
)

type ctxKey int

const userIDKey ctxKey = iota

// WithUserID attaches a verified user ID to the context. Only the auth
// middleware (and tests) should call it.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the verified user ID placed by the auth
// middleware.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDKey).(int)
	return userID, ok
}

// Auth verifies the bearer access token and injects the user ID into the
// request context. Requests without a valid token never reach the wallet
// engine.
func Auth(jwtCfg config.JWTConfig, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenStr == "" {
				resp.WriteJSONError(w, http.StatusUnauthorized, "unauthenticated", "login required")
				return
			}

			claims, err := token.VerifyToken(tokenStr, jwtCfg.AccessTokenSecretKey())
			if err != nil {
				log.Debug("access token rejected", sl.Err(err))
				resp.WriteJSONError(w, http.StatusUnauthorized, "unauthenticated", "login required")
				return
			}

			userID, err := strconv.Atoi(claims.ID)
			if err != nil {
				resp.WriteJSONError(w, http.StatusUnauthorized, "unauthenticated", "login required")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

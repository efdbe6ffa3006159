package auth

import (
	"log/slog"
	"net/http"

	"wheel_backend/internal/api/apierr"
	dto "wheel_backend/internal/api/dto/auth"
	"wheel_backend/internal/apperr"
	"wheel_backend/internal/converter"
	"wheel_backend/internal/service"
	"wheel_backend/pkg/req"
	"wheel_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AuthService
	Log  *slog.Logger
}

type Handler struct {
	serv service.AuthService
	log  *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Register creates the user, opens a session and returns the access token in
// the body with session_id and refresh_token set as cookies.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid_argument", "invalid request body")
		return
	}

	if requestBody.Login == "" || requestBody.Password == "" {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid_argument", "login and password are required")
		return
	}

	data, err := h.serv.Register(
		r.Context(),
		converter.RegisterRequestToUserModel(&requestBody),
	)
	if err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	setSessionIDCookie(w, data.SessionID)
	setRefreshTokenCookie(w, data.RefreshToken)

	resp.WriteJSONResponse(w, http.StatusCreated, dto.AuthResponse{
		AccessToken: data.AccessToken,
	})
}

// Login opens a session and returns the access token in the body with
// session_id and refresh_token set as cookies.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid_argument", "invalid request body")
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Login, requestBody.Password)
	if err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	setSessionIDCookie(w, data.SessionID)
	setRefreshTokenCookie(w, data.RefreshToken)

	resp.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		AccessToken: data.AccessToken,
	})
}

// Refresh issues a new access token for the session identified by the
// session_id cookie, verified against the refresh_token cookie.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionID, err := r.Cookie("session_id")
	if err != nil {
		apierr.Write(w, h.log, apperr.ErrUnauthenticated)
		return
	}

	refreshToken, err := r.Cookie("refresh_token")
	if err != nil {
		apierr.Write(w, h.log, apperr.ErrUnauthenticated)
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), sessionID.Value, refreshToken.Value)
	if err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		AccessToken: accessToken,
	})
}

// Logout closes the session from the session_id cookie and clears both
// cookies.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, err := r.Cookie("session_id")
	if err != nil {
		apierr.Write(w, h.log, apperr.ErrUnauthenticated)
		return
	}

	if err := h.serv.Logout(r.Context(), sessionID.Value); err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	deleteSessionIDCookie(w)
	deleteRefreshTokenCookie(w)

	w.WriteHeader(http.StatusNoContent)
}

func setRefreshTokenCookie(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/auth/refresh",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60 * 60 * 24 * 30,
	})
}

func deleteRefreshTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/auth/refresh",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func setSessionIDCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   60 * 60 * 24 * 30,
	})
}

func deleteSessionIDCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

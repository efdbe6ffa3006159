// Package apierr maps the service error taxonomy onto HTTP responses so
// every handler reports failures the same way.
package apierr

import (
	"errors"
	"log/slog"
	"net/http"

	"wheel_backend/internal/apperr"
	"wheel_backend/internal/lib/logger/sl"
	"wheel_backend/pkg/resp"
)

// classify picks the HTTP status and the sentinel whose message is safe to
// show clients. Wrapped context stays in the logs only.
func classify(err error) (int, error) {
	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized, apperr.ErrUnauthenticated
	case errors.Is(err, apperr.ErrInvalidArgument):
		return http.StatusBadRequest, apperr.ErrInvalidArgument
	case errors.Is(err, apperr.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, apperr.ErrInsufficientFunds
	case errors.Is(err, apperr.ErrBelowMinimum):
		return http.StatusUnprocessableEntity, apperr.ErrBelowMinimum
	case errors.Is(err, apperr.ErrPayoutFailed):
		return http.StatusBadGateway, apperr.ErrPayoutFailed
	case errors.Is(err, apperr.ErrContention):
		return http.StatusConflict, apperr.ErrContention
	case errors.Is(err, apperr.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, apperr.ErrStorageUnavailable
	}
	return http.StatusInternalServerError, nil
}

// Write logs err and sends the matching JSON error response. Errors outside
// the taxonomy become an opaque 500 so internals never leak to clients.
func Write(w http.ResponseWriter, log *slog.Logger, err error) {
	st, sentinel := classify(err)
	if sentinel == nil {
		log.Error("unexpected handler error", sl.Err(err))
		resp.WriteJSONError(w, st, "internal", "internal error")
		return
	}

	kind := apperr.Kind(sentinel)
	log.Info("request rejected", slog.String("kind", kind), sl.Err(err))
	resp.WriteJSONError(w, st, kind, sentinel.Error())
}

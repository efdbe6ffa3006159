package wheel

import (
	"log/slog"
	"net/http"

	"wheel_backend/internal/api/apierr"
	"wheel_backend/internal/converter"
	"wheel_backend/internal/service"
	"wheel_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.WheelService
	Log  *slog.Logger
}

type Handler struct {
	serv service.WheelService
	log  *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Spin runs one paid wheel spin for the authenticated user. The request has
// no body: the cost and the prize table are server-side configuration.
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.serv.Spin(r.Context())
	if err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(outcome))
}

// Config returns the wheel labels and thresholds the client needs to render
// the wheel. Prize amounts and weights never leave the server.
func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToConfigResponse(h.serv.WheelData()))
}

package payment

import (
	"log/slog"
	"net/http"

	"wheel_backend/internal/api/apierr"
	dto "wheel_backend/internal/api/dto/payment"
	"wheel_backend/internal/service"
	"wheel_backend/pkg/req"
	"wheel_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.WalletService
	Log  *slog.Logger
}

type Handler struct {
	serv service.WalletService
	log  *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// Webhook credits a wallet from a payment provider top-up notification.
// TODO: verify the provider's X-Signature header once the provider publishes
// its webhook signing key.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.WebhookRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid_argument", "invalid request body")
		return
	}

	err = h.serv.Credit(r.Context(), payload.UserID, payload.Amount, payload.Provider, payload.Reference)
	if err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	h.log.Info("top-up credited",
		slog.Int("user_id", payload.UserID),
		slog.Int64("amount", payload.Amount),
		slog.String("provider", payload.Provider))

	w.WriteHeader(http.StatusOK)
}

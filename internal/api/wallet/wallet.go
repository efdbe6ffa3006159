package wallet

import (
	"log/slog"
	"net/http"
	"strconv"

	"wheel_backend/internal/api/apierr"
	dto "wheel_backend/internal/api/dto/wallet"
	"wheel_backend/internal/converter"
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

// Balance returns the wallet balance plus the rolling recent-spin history.
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.serv.Wallet(r.Context())
	if err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWalletResponse(wallet))
}

// Ledger returns the newest ledger entries, most recent first. The limit
// query parameter is optional and clamped server-side.
func (h *Handler) Ledger(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			resp.WriteJSONError(w, http.StatusBadRequest, "invalid_argument", "limit must be an integer")
			return
		}
		limit = n
	}

	entries, err := h.serv.Ledger(r.Context(), limit)
	if err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLedgerResponse(entries))
}

// Withdraw debits the wallet and pays out through the payout gateway.
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.WithdrawRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid_argument", "invalid request body")
		return
	}

	result, err := h.serv.Withdraw(r.Context(), converter.ToWithdrawModel(payload))
	if err != nil {
		apierr.Write(w, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWithdrawResponse(result))
}

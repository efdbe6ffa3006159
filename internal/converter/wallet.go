package converter

import (
	"wheel_backend/internal/api/dto/wallet"
	"wheel_backend/internal/model"
)

func ToWalletResponse(w *model.Wallet) wallet.WalletResponse {
	spins := make([]wallet.SpinSummary, len(w.RecentSpins))
	for i, s := range w.RecentSpins {
		spins[i] = wallet.SpinSummary{
			At:     s.At,
			Prize:  s.Prize,
			Amount: s.Amount,
			Cost:   s.Cost,
		}
	}
	return wallet.WalletResponse{
		Balance:     w.Balance,
		RecentSpins: spins,
	}
}

func ToLedgerResponse(entries []model.LedgerEntry) wallet.LedgerResponse {
	out := make([]wallet.LedgerEntry, len(entries))
	for i, e := range entries {
		out[i] = wallet.LedgerEntry{
			ID:          e.ID,
			Kind:        string(e.Kind),
			Amount:      e.Amount,
			Cost:        e.Cost,
			Provider:    e.Provider,
			ExternalRef: e.ExternalRef,
			At:          e.At,
		}
	}
	return wallet.LedgerResponse{Entries: out}
}

func ToWithdrawModel(req wallet.WithdrawRequest) model.WithdrawRequest {
	return model.WithdrawRequest{
		Amount:     req.Amount,
		Provider:   req.Provider,
		PayeeName:  req.PayeeName,
		PayeePhone: req.PayeePhone,
	}
}

func ToWithdrawResponse(res *model.WithdrawResult) wallet.WithdrawResponse {
	return wallet.WithdrawResponse{
		ExternalRef: res.ExternalRef,
		Balance:     res.Balance,
	}
}

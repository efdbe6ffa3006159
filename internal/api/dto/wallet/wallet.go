package wallet

import "time"

type WalletResponse struct {
	Balance     int64         `json:"balance"`
	RecentSpins []SpinSummary `json:"recent_spins"`
}

type SpinSummary struct {
	At     time.Time `json:"at"`
	Prize  string    `json:"prize"`
	Amount int64     `json:"amount"`
	Cost   int64     `json:"cost"`
}

type LedgerEntry struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	Amount      int64     `json:"amount"`
	Cost        int64     `json:"cost,omitempty"`
	Provider    string    `json:"provider,omitempty"`
	ExternalRef string    `json:"external_ref,omitempty"`
	At          time.Time `json:"at"`
}

type LedgerResponse struct {
	Entries []LedgerEntry `json:"entries"`
}

type WithdrawRequest struct {
	Amount     int64  `json:"amount"`
	Provider   string `json:"provider"`
	PayeeName  string `json:"payee_name"`
	PayeePhone string `json:"payee_phone"`
}

type WithdrawResponse struct {
	ExternalRef string `json:"external_ref"`
	Balance     int64  `json:"balance"`
}

package model

import "time"

// MaxRecentSpins bounds the rolling spin history kept on the wallet row.
// The ledger stays authoritative; recent spins are display data only.
const MaxRecentSpins = 20

type Wallet struct {
	UserID      int
	Balance     int64
	RecentSpins []SpinSummary
	// Version is the optimistic concurrency token. Zero means the wallet
	// row does not exist yet and the first commit will create it.
	Version int64
}

type SpinSummary struct {
	At     time.Time `json:"at"`
	Prize  string    `json:"prize"`
	Amount int64     `json:"amount"`
	Cost   int64     `json:"cost"`
}

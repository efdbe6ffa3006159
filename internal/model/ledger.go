package model

import "time"

type LedgerKind string

const (
	LedgerTopup    LedgerKind = "topup"
	LedgerSpin     LedgerKind = "spin"
	LedgerWithdraw LedgerKind = "withdraw"
)

// LedgerEntry is one immutable record in the append-only wallet ledger.
type LedgerEntry struct {
	ID          int64
	UserID      int
	Kind        LedgerKind
	Amount      int64
	Cost        int64
	Provider    string
	ExternalRef string
	PayeeName   string
	PayeePhone  string
	At          time.Time
}

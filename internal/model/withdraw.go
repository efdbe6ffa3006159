package model

type WithdrawRequest struct {
	Amount     int64
	Provider   string
	PayeeName  string
	PayeePhone string
}

type WithdrawResult struct {
	ExternalRef string
	Balance     int64
}

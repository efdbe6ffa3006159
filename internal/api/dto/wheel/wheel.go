package wheel

type SpinResponse struct {
	Prize   string `json:"prize_label"`
	Amount  int64  `json:"prize_amount"`
	Index   int    `json:"prize_index"`
	Balance int64  `json:"balance"`
}

type ConfigResponse struct {
	Labels      []string `json:"labels"`
	SpinCost    int64    `json:"spin_cost"`
	MinWithdraw int64    `json:"min_withdraw"`
}

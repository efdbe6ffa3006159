package model

// Prize is one wheel segment. Table order is significant: the index of the
// selected prize is returned to the client so it can animate to the segment.
type Prize struct {
	Label  string
	Amount int64
	Weight int
}

type SpinOutcome struct {
	Prize   Prize
	Index   int
	Balance int64
}

// WheelData is the client-visible wheel configuration. Amounts and weights
// stay server-side; clients only ever see labels and the two thresholds.
type WheelData struct {
	Labels      []string
	SpinCost    int64
	MinWithdraw int64
}

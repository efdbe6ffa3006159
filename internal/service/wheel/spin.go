package wheel

import (
	"context"
	"fmt"
	"time"

	"wheel_backend/internal/apperr"
	"wheel_backend/internal/metrics"
	"wheel_backend/internal/middleware"
	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"
)

// Spin charges the fixed fee, draws a weighted prize and credits it, all in
// one atomic wallet transaction. The draw happens inside the transaction
// body: if the commit loses an optimistic race the aborted draw is discarded
// and a fresh one is made on retry, which is fine because nothing from the
// aborted attempt was ever observable.
func (s *serv) Spin(ctx context.Context) (*model.SpinOutcome, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, apperr.ErrUnauthenticated
	}

	spinCost := s.cfg.SpinCost()

	var outcome model.SpinOutcome
	err := s.store.Update(ctx, userID, func(tx repository.WalletTx) error {
		balance := tx.Wallet().Balance
		if balance < spinCost {
			return fmt.Errorf("%w: balance %d, spin costs %d", apperr.ErrInsufficientFunds, balance, spinCost)
		}

		prize, index := s.selector.Select()

		newBalance := balance - spinCost
		if prize.Amount > 0 {
			newBalance += prize.Amount
		}
		tx.SetBalance(newBalance)

		now := time.Now()
		tx.AppendLedger(model.LedgerEntry{
			Kind:   model.LedgerSpin,
			Amount: prize.Amount,
			Cost:   spinCost,
			At:     now,
		})
		tx.AppendSpin(model.SpinSummary{
			At:     now,
			Prize:  prize.Label,
			Amount: prize.Amount,
			Cost:   spinCost,
		})

		outcome = model.SpinOutcome{Prize: prize, Index: index, Balance: newBalance}
		return nil
	})

	metrics.Spins.WithLabelValues(metrics.ResultLabel(err)).Inc()
	if err != nil {
		return nil, err
	}

	s.log.Info("spin committed",
		"user_id", userID,
		"prize", outcome.Prize.Label,
		"amount", outcome.Prize.Amount,
	)

	return &outcome, nil
}

// WheelData exposes what a front end may see: segment labels in wheel order
// plus both thresholds. Amounts and weights stay server-side.
func (s *serv) WheelData() *model.WheelData {
	prizes := s.cfg.Prizes()
	labels := make([]string, len(prizes))
	for i, p := range prizes {
		labels[i] = p.Label
	}

	return &model.WheelData{
		Labels:      labels,
		SpinCost:    s.cfg.SpinCost(),
		MinWithdraw: s.cfg.MinWithdraw(),
	}
}

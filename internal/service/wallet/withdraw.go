package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wheel_backend/internal/apperr"
	"wheel_backend/internal/client/payout"
	"wheel_backend/internal/lib/logger/sl"
	"wheel_backend/internal/metrics"
	"wheel_backend/internal/middleware"
	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"

	"github.com/google/uuid"
)

// Withdraw debits the wallet and disburses the amount through the payout
// gateway. The gateway call runs inside the optimistic transaction body, so
// the balance it is conditioned on is the one that commits. To keep retries
// from paying twice, one idempotency key is minted per request and reused on
// every attempt: the provider deduplicates, so a conflict retry after a
// successful disbursement gets the same external reference back instead of a
// second payment.
func (s *serv) Withdraw(ctx context.Context, req model.WithdrawRequest) (*model.WithdrawResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, apperr.ErrUnauthenticated
	}

	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperr.ErrInvalidArgument)
	}
	payeeName := strings.TrimSpace(req.PayeeName)
	payeePhone := strings.TrimSpace(req.PayeePhone)
	if payeeName == "" || payeePhone == "" {
		return nil, fmt.Errorf("%w: payee name and phone are required", apperr.ErrInvalidArgument)
	}

	minWithdraw := s.cfg.MinWithdraw()
	if req.Amount < minWithdraw {
		return nil, fmt.Errorf("%w: minimum withdrawal is %d", apperr.ErrBelowMinimum, minWithdraw)
	}

	idempotencyKey := uuid.NewString()

	var result model.WithdrawResult
	err := s.store.Update(ctx, userID, func(tx repository.WalletTx) error {
		// Authoritative funds check against the snapshot that will commit;
		// any earlier check was advisory only.
		balance := tx.Wallet().Balance
		if balance < req.Amount {
			return fmt.Errorf("%w: balance %d, requested %d", apperr.ErrInsufficientFunds, balance, req.Amount)
		}

		disbursed, err := s.gateway.Disburse(ctx, payout.DisburseRequest{
			Amount:         req.Amount,
			Provider:       req.Provider,
			PayeeName:      payeeName,
			PayeePhone:     payeePhone,
			IdempotencyKey: idempotencyKey,
		})
		if err != nil {
			metrics.PayoutFailures.Inc()
			if errors.Is(err, payout.ErrOutcomeUnknown) {
				// No positive confirmation: abort without debiting and leave
				// the reference for operator reconciliation.
				s.log.Error("payout unconfirmed, withdrawal aborted",
					"user_id", userID,
					"idempotency_key", idempotencyKey,
					sl.Err(err),
				)
			}
			return fmt.Errorf("%w: %v", apperr.ErrPayoutFailed, err)
		}

		newBalance := balance - req.Amount
		tx.SetBalance(newBalance)
		tx.AppendLedger(model.LedgerEntry{
			Kind:        model.LedgerWithdraw,
			Amount:      req.Amount,
			Provider:    req.Provider,
			ExternalRef: disbursed.ExternalRef,
			PayeeName:   payeeName,
			PayeePhone:  payeePhone,
			At:          time.Now(),
		})

		result = model.WithdrawResult{ExternalRef: disbursed.ExternalRef, Balance: newBalance}
		return nil
	})

	metrics.Withdrawals.WithLabelValues(metrics.ResultLabel(err)).Inc()
	if err != nil {
		return nil, err
	}

	s.log.Info("withdrawal committed",
		"user_id", userID,
		"amount", req.Amount,
		"external_ref", result.ExternalRef,
	)

	return &result, nil
}

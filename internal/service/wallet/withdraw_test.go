package wallet

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"wheel_backend/internal/apperr"
	"wheel_backend/internal/client/payout"
	"wheel_backend/internal/middleware"
	"wheel_backend/internal/model"
	"wheel_backend/internal/repository/memory"
	"wheel_backend/internal/repository/wallet_store"
	"wheel_backend/internal/service"

	"github.com/stretchr/testify/require"
)

type fakeWheelConfig struct {
	prizes      []model.Prize
	spinCost    int64
	minWithdraw int64
}

func (c fakeWheelConfig) Prizes() []model.Prize { return c.prizes }
func (c fakeWheelConfig) SpinCost() int64       { return c.spinCost }
func (c fakeWheelConfig) MinWithdraw() int64    { return c.minWithdraw }

type fakeGateway struct {
	calls []payout.DisburseRequest
	err   error
	ref   string
}

func (g *fakeGateway) Disburse(_ context.Context, req payout.DisburseRequest) (*payout.DisburseResult, error) {
	g.calls = append(g.calls, req)
	if g.err != nil {
		return nil, g.err
	}
	return &payout.DisburseResult{ExternalRef: g.ref}, nil
}

func newTestService(t *testing.T, gw *fakeGateway) (service.WalletService, *memory.Storage) {
	t.Helper()
	storage := memory.NewStorage()
	store := wallet_store.NewWalletStore(memory.NewTxManager(), storage, storage)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := fakeWheelConfig{spinCost: 10, minWithdraw: 500}
	return NewWalletService(cfg, store, gw, log), storage
}

func seedWallet(t *testing.T, storage *memory.Storage, userID int, balance int64) {
	t.Helper()
	err := storage.SaveWallet(context.Background(), &model.Wallet{UserID: userID, Balance: balance})
	require.NoError(t, err)
}

func authedCtx(userID int) context.Context {
	return middleware.WithUserID(context.Background(), userID)
}

func validRequest(amount int64) model.WithdrawRequest {
	return model.WithdrawRequest{
		Amount:     amount,
		Provider:   "gcash",
		PayeeName:  "Juan dela Cruz",
		PayeePhone: "+639171234567",
	}
}

func TestWithdrawRequiresAuthentication(t *testing.T) {
	s, _ := newTestService(t, &fakeGateway{ref: "dsb-1"})

	_, err := s.Withdraw(context.Background(), validRequest(500))
	require.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestWithdrawValidation(t *testing.T) {
	gw := &fakeGateway{ref: "dsb-1"}
	s, storage := newTestService(t, gw)
	seedWallet(t, storage, 1, 1000)

	cases := []struct {
		name string
		req  model.WithdrawRequest
		want error
	}{
		{name: "zero amount", req: validRequest(0), want: apperr.ErrInvalidArgument},
		{name: "negative amount", req: validRequest(-100), want: apperr.ErrInvalidArgument},
		{
			name: "missing payee name",
			req:  model.WithdrawRequest{Amount: 500, Provider: "gcash", PayeeName: "  ", PayeePhone: "+639171234567"},
			want: apperr.ErrInvalidArgument,
		},
		{name: "below minimum", req: validRequest(499), want: apperr.ErrBelowMinimum},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Withdraw(authedCtx(1), tc.req)
			require.ErrorIs(t, err, tc.want)
		})
	}

	// Rejected requests never reach the gateway.
	require.Empty(t, gw.calls)

	wallet, err := storage.GetWallet(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(1000), wallet.Balance)
}

func TestWithdrawInsufficientFundsSkipsGateway(t *testing.T) {
	gw := &fakeGateway{ref: "dsb-1"}
	s, storage := newTestService(t, gw)
	seedWallet(t, storage, 1, 400)

	_, err := s.Withdraw(authedCtx(1), validRequest(500))
	require.ErrorIs(t, err, apperr.ErrInsufficientFunds)
	require.Empty(t, gw.calls)

	wallet, err := storage.GetWallet(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(400), wallet.Balance)
}

func TestWithdrawSuccessDebitsAndRecords(t *testing.T) {
	gw := &fakeGateway{ref: "dsb-42"}
	s, storage := newTestService(t, gw)
	seedWallet(t, storage, 1, 1000)

	result, err := s.Withdraw(authedCtx(1), model.WithdrawRequest{
		Amount:     500,
		Provider:   "gcash",
		PayeeName:  "  Juan dela Cruz  ",
		PayeePhone: " +639171234567 ",
	})
	require.NoError(t, err)
	require.Equal(t, "dsb-42", result.ExternalRef)
	require.Equal(t, int64(500), result.Balance)

	require.Len(t, gw.calls, 1)
	call := gw.calls[0]
	require.Equal(t, int64(500), call.Amount)
	require.Equal(t, "Juan dela Cruz", call.PayeeName)
	require.Equal(t, "+639171234567", call.PayeePhone)
	require.NotEmpty(t, call.IdempotencyKey)

	wallet, err := storage.GetWallet(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(500), wallet.Balance)

	entries, err := storage.EntriesByUser(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, model.LedgerWithdraw, entries[0].Kind)
	require.Equal(t, int64(500), entries[0].Amount)
	require.Equal(t, "dsb-42", entries[0].ExternalRef)
	require.Equal(t, "gcash", entries[0].Provider)
}

func TestWithdrawDeclinedLeavesBalanceUntouched(t *testing.T) {
	gw := &fakeGateway{err: payout.ErrDeclined}
	s, storage := newTestService(t, gw)
	seedWallet(t, storage, 1, 1000)

	_, err := s.Withdraw(authedCtx(1), validRequest(500))
	require.ErrorIs(t, err, apperr.ErrPayoutFailed)

	wallet, err := storage.GetWallet(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(1000), wallet.Balance)

	entries, err := storage.EntriesByUser(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestWithdrawUnknownOutcomeAborts(t *testing.T) {
	gw := &fakeGateway{err: payout.ErrOutcomeUnknown}
	s, storage := newTestService(t, gw)
	seedWallet(t, storage, 1, 1000)

	_, err := s.Withdraw(authedCtx(1), validRequest(500))
	require.ErrorIs(t, err, apperr.ErrPayoutFailed)

	wallet, err := storage.GetWallet(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(1000), wallet.Balance)
}

func TestCreditCreatesWalletOnFirstTopUp(t *testing.T) {
	s, storage := newTestService(t, &fakeGateway{})

	err := s.Credit(context.Background(), 7, 250, "gcash", "pay-1")
	require.NoError(t, err)

	wallet, err := storage.GetWallet(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, int64(250), wallet.Balance)

	entries, err := storage.EntriesByUser(context.Background(), 7, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, model.LedgerTopup, entries[0].Kind)
	require.Equal(t, "pay-1", entries[0].ExternalRef)
}

func TestCreditRejectsNonPositiveAmount(t *testing.T) {
	s, _ := newTestService(t, &fakeGateway{})

	err := s.Credit(context.Background(), 7, 0, "gcash", "pay-1")
	require.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestLedgerClampsLimit(t *testing.T) {
	s, _ := newTestService(t, &fakeGateway{})

	for i := 0; i < 60; i++ {
		require.NoError(t, s.Credit(context.Background(), 1, 10, "gcash", "pay"))
	}

	entries, err := s.Ledger(authedCtx(1), 0)
	require.NoError(t, err)
	require.Len(t, entries, defaultLedgerLimit)

	entries, err = s.Ledger(authedCtx(1), 10_000)
	require.NoError(t, err)
	require.Len(t, entries, 60)
}

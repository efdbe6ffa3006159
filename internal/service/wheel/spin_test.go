package wheel

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"wheel_backend/internal/apperr"
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

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, cfg fakeWheelConfig) (service.WheelService, *memory.Storage) {
	t.Helper()
	storage := memory.NewStorage()
	store := wallet_store.NewWalletStore(memory.NewTxManager(), storage, storage)
	return NewWheelService(cfg, store, discardLogger()), storage
}

func seedWallet(t *testing.T, storage *memory.Storage, userID int, balance int64) {
	t.Helper()
	err := storage.SaveWallet(context.Background(), &model.Wallet{UserID: userID, Balance: balance})
	require.NoError(t, err)
}

func authedCtx(userID int) context.Context {
	return middleware.WithUserID(context.Background(), userID)
}

func TestSpinRequiresAuthentication(t *testing.T) {
	s, _ := newTestService(t, fakeWheelConfig{
		prizes:   []model.Prize{{Label: "Try Again", Weight: 1}},
		spinCost: 10,
	})

	_, err := s.Spin(context.Background())
	require.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestSpinInsufficientFundsLeavesWalletUntouched(t *testing.T) {
	s, storage := newTestService(t, fakeWheelConfig{
		prizes:   []model.Prize{{Label: "Try Again", Weight: 1}},
		spinCost: 10,
	})
	seedWallet(t, storage, 1, 5)

	_, err := s.Spin(authedCtx(1))
	require.ErrorIs(t, err, apperr.ErrInsufficientFunds)

	wallet, err := storage.GetWallet(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(5), wallet.Balance)
	require.Empty(t, wallet.RecentSpins)

	entries, err := storage.EntriesByUser(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestSpinExactBalanceSucceeds(t *testing.T) {
	s, storage := newTestService(t, fakeWheelConfig{
		prizes:   []model.Prize{{Label: "Try Again", Weight: 1}},
		spinCost: 10,
	})
	seedWallet(t, storage, 1, 10)

	outcome, err := s.Spin(authedCtx(1))
	require.NoError(t, err)
	require.Equal(t, "Try Again", outcome.Prize.Label)
	require.Equal(t, int64(0), outcome.Balance)

	wallet, err := storage.GetWallet(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(0), wallet.Balance)
	require.Len(t, wallet.RecentSpins, 1)
	require.Equal(t, int64(10), wallet.RecentSpins[0].Cost)

	entries, err := storage.EntriesByUser(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, model.LedgerSpin, entries[0].Kind)
	require.Equal(t, int64(0), entries[0].Amount)
	require.Equal(t, int64(10), entries[0].Cost)
}

func TestSpinCreditsWinningPrize(t *testing.T) {
	s, storage := newTestService(t, fakeWheelConfig{
		prizes:   []model.Prize{{Label: "₱100", Amount: 100, Weight: 1}},
		spinCost: 10,
	})
	seedWallet(t, storage, 1, 10)

	outcome, err := s.Spin(authedCtx(1))
	require.NoError(t, err)
	require.Equal(t, int64(100), outcome.Balance)

	wallet, err := storage.GetWallet(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(100), wallet.Balance)
}

func TestSpinHistoryKeepsNewestTwenty(t *testing.T) {
	s, storage := newTestService(t, fakeWheelConfig{
		prizes:   []model.Prize{{Label: "Try Again", Weight: 1}},
		spinCost: 10,
	})
	seedWallet(t, storage, 1, 1000)

	const spins = 25
	for i := 0; i < spins; i++ {
		_, err := s.Spin(authedCtx(1))
		require.NoError(t, err)
	}

	wallet, err := storage.GetWallet(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(1000-spins*10), wallet.Balance)
	require.Len(t, wallet.RecentSpins, model.MaxRecentSpins)

	// The display cache is bounded; the ledger keeps the full record.
	entries, err := storage.EntriesByUser(context.Background(), 1, 100)
	require.NoError(t, err)
	require.Len(t, entries, spins)
}

func TestConcurrentSpinsNeverDoubleSpend(t *testing.T) {
	s, storage := newTestService(t, fakeWheelConfig{
		prizes:   []model.Prize{{Label: "Try Again", Weight: 1}},
		spinCost: 10,
	})
	seedWallet(t, storage, 1, 1000)

	const (
		workers        = 4
		spinsPerWorker = 5
	)

	var (
		wg        sync.WaitGroup
		mtx       sync.Mutex
		committed int
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < spinsPerWorker; i++ {
				_, err := s.Spin(authedCtx(1))
				if err != nil {
					// Bounded retries may give up under contention; a lost
					// spin must not move money.
					if errors.Is(err, apperr.ErrContention) {
						continue
					}
					t.Errorf("spin failed: %v", err)
					continue
				}
				mtx.Lock()
				committed++
				mtx.Unlock()
			}
		}()
	}
	wg.Wait()

	wallet, err := storage.GetWallet(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(1000-committed*10), wallet.Balance)

	entries, err := storage.EntriesByUser(context.Background(), 1, 100)
	require.NoError(t, err)
	require.Len(t, entries, committed)
}

func TestWheelDataHidesAmountsAndWeights(t *testing.T) {
	s, _ := newTestService(t, fakeWheelConfig{
		prizes: []model.Prize{
			{Label: "₱10", Amount: 10, Weight: 10},
			{Label: "Try Again", Amount: 0, Weight: 60},
		},
		spinCost:    10,
		minWithdraw: 500,
	})

	data := s.WheelData()
	require.Equal(t, []string{"₱10", "Try Again"}, data.Labels)
	require.Equal(t, int64(10), data.SpinCost)
	require.Equal(t, int64(500), data.MinWithdraw)
}

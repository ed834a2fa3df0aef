package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/libranet/library/internal/errs"
	"github.com/Astemirdum/libranet/library/internal/item"
	"github.com/Astemirdum/libranet/library/internal/ledger"
	"github.com/Astemirdum/libranet/library/internal/model"
	"github.com/Astemirdum/libranet/library/internal/repository"
	"github.com/Astemirdum/libranet/library/internal/service"

	service_mocks "github.com/Astemirdum/libranet/library/internal/service/mocks"
)

var start = time.Date(2025, time.September, 1, 10, 0, 0, 0, time.UTC)

type fakeClock interface {
	clockwork.Clock
	Advance(d time.Duration)
}

type env struct {
	svc   *service.Service
	clock fakeClock
	reg   *prometheus.Registry
}

func newEnv(t *testing.T, fines service.FineLedger) env {
	t.Helper()
	clock := clockwork.NewFakeClockAt(start)
	log := zap.NewExample().Named("test")
	reg := prometheus.NewRegistry()
	svc := service.NewService(repository.NewRepository(log), fines, service.NewMetrics(reg), log)

	b, err := item.NewBook(1, "Effective Java", "Joshua Bloch", 416, item.WithClock(clock))
	require.NoError(t, err)
	require.NoError(t, svc.AddItem(context.Background(), b))
	return env{svc: svc, clock: clock, reg: reg}
}

func TestService_Return(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockFineLedger)

	tests := []struct {
		name         string
		borrow       string
		elapsed      time.Duration
		mockBehavior mockBehavior
		want         model.ReturnReceipt
	}{
		{
			name:    "on time",
			borrow:  "14 days",
			elapsed: 10 * 24 * time.Hour,
			mockBehavior: func(r *service_mocks.MockFineLedger) {
				r.EXPECT().AddFine(1001, int64(0))
				r.EXPECT().GetFine(1001).Return(decimal.Zero)
			},
			want: model.ReturnReceipt{ItemID: 1, UserID: 1001, Balance: decimal.Zero},
		},
		{
			name:    "one day and a minute late",
			borrow:  "14 days",
			elapsed: 15*24*time.Hour + time.Minute,
			mockBehavior: func(r *service_mocks.MockFineLedger) {
				r.EXPECT().AddFine(1001, int64(2))
				r.EXPECT().GetFine(1001).Return(decimal.NewFromInt(20))
			},
			want: model.ReturnReceipt{ItemID: 1, UserID: 1001, OverdueDays: 2, Balance: decimal.NewFromInt(20)},
		},
		{
			name:         "not borrowed",
			mockBehavior: func(r *service_mocks.MockFineLedger) {},
			want:         model.ReturnReceipt{ItemID: 1, Balance: decimal.Zero},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			fines := service_mocks.NewMockFineLedger(c)
			e := newEnv(t, fines)
			ctx := context.Background()

			if tt.borrow != "" {
				_, err := e.svc.Borrow(ctx, 1, 1001, tt.borrow)
				require.NoError(t, err)
			}
			e.clock.Advance(tt.elapsed)
			tt.mockBehavior(fines)

			got, err := e.svc.Return(ctx, 1)
			require.NoError(t, err)
			require.Equal(t, tt.want.ItemID, got.ItemID)
			require.Equal(t, tt.want.UserID, got.UserID)
			require.Equal(t, tt.want.OverdueDays, got.OverdueDays)
			require.True(t, tt.want.Balance.Equal(got.Balance), got.Balance.String())
		})
	}
}

func TestService_Borrow_Errors(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	e := newEnv(t, service_mocks.NewMockFineLedger(c))
	ctx := context.Background()

	_, err := e.svc.Borrow(ctx, 42, 1001, "1 day")
	require.True(t, errors.Is(err, errs.ErrNotFound))

	_, err = e.svc.Borrow(ctx, 1, 1001, "two weeks")
	require.True(t, errors.Is(err, errs.ErrInvalidDuration))

	loan, err := e.svc.Borrow(ctx, 1, 1001, "14 days")
	require.NoError(t, err)
	require.Equal(t, start.Add(14*24*time.Hour), loan.DueAt)

	_, err = e.svc.Borrow(ctx, 1, 1002, "7 days")
	require.True(t, errors.Is(err, errs.ErrItemNotAvailable))

	const want = `
# HELP libranet_borrows_total Borrow attempts by result.
# TYPE libranet_borrows_total counter
libranet_borrows_total{result="invalid_duration"} 1
libranet_borrows_total{result="not_available"} 1
libranet_borrows_total{result="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(e.reg, strings.NewReader(want), "libranet_borrows_total"))
}

func TestService_CanceledContext(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	e := newEnv(t, service_mocks.NewMockFineLedger(c))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.svc.Borrow(ctx, 1, 1001, "1 day")
	require.ErrorIs(t, err, context.Canceled)
	_, err = e.svc.Return(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)
	_, err = e.svc.PayFine(ctx, 1001, decimal.NewFromInt(1))
	require.ErrorIs(t, err, context.Canceled)

	it, err := e.svc.GetItem(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, it.IsAvailable())
}

func TestService_PayFine_Negative(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	e := newEnv(t, service_mocks.NewMockFineLedger(c))

	_, err := e.svc.PayFine(context.Background(), 1001, decimal.NewFromInt(-1))
	require.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestService_WithLedger(t *testing.T) {
	t.Parallel()
	e := newEnv(t, ledger.New(decimal.NewFromInt(10)))
	ctx := context.Background()

	_, err := e.svc.Borrow(ctx, 1, 1001, "14 days")
	require.NoError(t, err)
	e.clock.Advance(17 * 24 * time.Hour)

	receipt, err := e.svc.Return(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), receipt.OverdueDays)
	assert.True(t, decimal.NewFromInt(30).Equal(receipt.Balance))

	fine, err := e.svc.GetFine(ctx, 1001)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(30).Equal(fine))

	left, err := e.svc.PayFine(ctx, 1001, decimal.NewFromInt(12))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(18).Equal(left))

	left, err = e.svc.PayFine(ctx, 1001, decimal.NewFromInt(18))
	require.NoError(t, err)
	assert.True(t, left.IsZero())

	const want = `
# HELP libranet_overdue_days_total Overdue days charged on return.
# TYPE libranet_overdue_days_total counter
libranet_overdue_days_total 3
# HELP libranet_returns_total Returns of borrowed items by outcome.
# TYPE libranet_returns_total counter
libranet_returns_total{outcome="overdue"} 1
# HELP libranet_fines_paid_total Sum of fine payments submitted.
# TYPE libranet_fines_paid_total counter
libranet_fines_paid_total 30
`
	require.NoError(t, testutil.GatherAndCompare(e.reg, strings.NewReader(want),
		"libranet_overdue_days_total", "libranet_returns_total", "libranet_fines_paid_total"))
}

func TestService_Search(t *testing.T) {
	t.Parallel()
	e := newEnv(t, ledger.New(decimal.NewFromInt(10)))
	ctx := context.Background()

	a, err := item.NewAudiobook(2, "Clean Code (Audio)", "Robert C. Martin", 12*time.Hour)
	require.NoError(t, err)
	require.NoError(t, e.svc.AddItem(ctx, a))

	found, err := e.svc.SearchByTitle(ctx, "clean")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, 2, found[0].ID())

	books, err := e.svc.SearchByKind(ctx, model.KindBook)
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, 1, books[0].ID())
}
